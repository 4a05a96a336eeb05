// Package warp is your toolkit for aligning and comparing time series with
// Dynamic Time Warping — from the core cost matrix to batch comparison,
// clustering and plots.
//
// 🚀 What is warp?
//
//	A pure-Go DTW engine plus the plumbing around it:
//		• Core: accumulated-cost matrix, distance and optimal warping path
//		• Bands: Sakoe–Chiba radius, scaled to the length ratio or raw
//		• Batch: pairwise distance matrices on a worker pool, Redis cache
//		• Clustering: k-means of equal-length series under DTW
//		• I/O: text (UTF-8/UTF-16) and memory-mapped binary series
//		• Plots: alignment and warping-path charts (PNG/SVG)
//
// ✨ Why choose warp?
//
//   - Generic – any element type with a caller-supplied distance
//   - Deterministic – documented tie-breaking, reproducible generators
//   - Explicit errors – sentinels per package, no panics in algorithms
//
// Subpackages:
//
//	dtw/      — Align, Between, Cost, DTW; Options, Result, CostMatrix
//	matrix/   — row-major Dense storage with aligned text output
//	series/   — Pulse/Chirp/Sine generators, Stretch, text & binary loaders
//	pairwise/ — Compute, Nearest, Key; MemoryCache and RedisCache
//	cluster/  — Partition into DTW k-means groups
//	render/   — Alignment and WarpPath plots
//
// The warp command (cmd/warp) exposes all of the above:
//
//	warp align a.txt b.txt --path
//	warp pairwise *.txt --redis localhost:6379
//	warp plot a.txt b.txt -o alignment.svg
//
//	go install github.com/katalvlaran/warp/cmd/warp@latest
package warp
