// SPDX-License-Identifier: MIT

// Package series produces and loads the one-dimensional float64 sequences
// that the dtw, pairwise and cluster packages consume.
//
// Generators (deterministic per options):
//
//	Pulse — rectangular or triangular pulse train
//	Chirp — linear frequency sweep
//	Sine  — plain sinusoid
//	OHLC  — price bars from a geometric Brownian motion (Closes: close prices only)
//
// All generators accept WithAmplitude/WithFrequency/WithTrend/WithNoise and a
// seed (WithSeed/WithRand) for the noise stream. Stretch resamples a series to
// a new length, which is the simplest way to fabricate a time-warped copy.
//
// Loaders:
//
//	ReadText / LoadText — numbers separated by blanks, commas or semicolons;
//	                      '#' starts a comment; UTF-8 or BOM-marked UTF-16 input
//	LoadBinary          — little-endian float64 samples, memory-mapped
//	WriteBinary         — the inverse of LoadBinary
package series
