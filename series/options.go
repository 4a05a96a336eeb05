// SPDX-License-Identifier: MIT
// Package: warp/series
//
// options.go — functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: noise is drawn from WithRand, else from a
//     source seeded by WithSeed (default seed 1).

package series

import "math/rand"

// Option customizes a generator by mutating a config before sampling begins.
type Option func(*config)

// config aggregates all generator knobs. It is passed by value.
type config struct {
	amplitude  float64    // >0
	frequency  float64    // >0, cycles/sample (start frequency for Chirp)
	frequency2 float64    // >0, end frequency for Chirp
	freqSet    bool       // frequency chosen explicitly (Chirp keeps its own start otherwise)
	duty       float64    // [0,1], rectangular pulse duty cycle
	triangular bool       // Pulse shape
	trend      float64    // added trend*i per sample
	noiseSigma float64    // >=0
	seed       int64      // used when rng is nil
	rng        *rand.Rand // shared noise stream, optional
	start      float64    // >0, OHLC initial price
	drift      float64    // OHLC daily drift
	volatility float64    // >=0, OHLC daily volatility
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultAmplitude  = 1.0
	defaultFrequency  = 0.125 // period of 8 samples
	defaultChirpStart = 0.02
	defaultChirpEnd   = 0.25
	defaultDuty       = 0.5
	defaultTrend      = 0.0
	defaultNoiseSigma = 0.0
	defaultSeed       = int64(1)
)

func newConfig(opts ...Option) config {
	cfg := config{
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		frequency2: defaultChirpEnd,
		duty:       defaultDuty,
		trend:      defaultTrend,
		noiseSigma: defaultNoiseSigma,
		seed:       defaultSeed,
		start:      defaultPriceStart,
		drift:      defaultDailyDrift,
		volatility: defaultDailyVol,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// noise returns the RNG for additive noise: cfg.rng if set, else a fresh
// source seeded with cfg.seed.
func (c config) noise() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(c.seed))
}

// WithAmplitude sets the amplitude A (>0). Panics if A <= 0.
func WithAmplitude(a float64) Option {
	if a <= 0 {
		panic("series: WithAmplitude(A<=0)")
	}
	return func(c *config) { c.amplitude = a }
}

// WithFrequency sets the base frequency f0 (>0) in cycles per sample.
// For Chirp it is the start of the sweep. Panics if f0 <= 0.
func WithFrequency(f0 float64) Option {
	if f0 <= 0 {
		panic("series: WithFrequency(f0<=0)")
	}
	return func(c *config) { c.frequency, c.freqSet = f0, true }
}

// WithSweep sets both ends of a Chirp sweep. Panics unless f0, f1 > 0.
func WithSweep(f0, f1 float64) Option {
	if f0 <= 0 || f1 <= 0 {
		panic("series: WithSweep(f<=0)")
	}
	return func(c *config) { c.frequency, c.frequency2, c.freqSet = f0, f1, true }
}

// WithDuty sets the rectangular duty cycle in [0,1]. Panics outside that range.
func WithDuty(d float64) Option {
	if d < 0 || d > 1 {
		panic("series: WithDuty(d not in [0,1])")
	}
	return func(c *config) { c.duty = d }
}

// WithTriangular switches Pulse to a triangular envelope.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// WithTrend adds k*i to sample i. Any real value is accepted.
func WithTrend(k float64) Option {
	return func(c *config) { c.trend = k }
}

// WithNoise sets the Gaussian noise sigma (>=0). Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("series: WithNoise(sigma<0)")
	}
	return func(c *config) { c.noiseSigma = sigma }
}

// WithSeed seeds the noise stream.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithRand shares an explicit RNG across generator calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("series: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithStart sets the OHLC initial price (>0). Panics if s0 <= 0.
func WithStart(s0 float64) Option {
	if s0 <= 0 {
		panic("series: WithStart(s0<=0)")
	}
	return func(c *config) { c.start = s0 }
}

// WithDrift sets the OHLC daily drift μ. Any real value is accepted.
func WithDrift(mu float64) Option {
	return func(c *config) { c.drift = mu }
}

// WithVolatility sets the OHLC daily volatility σ (>=0). Panics if σ < 0.
func WithVolatility(sigma float64) Option {
	if sigma < 0 {
		panic("series: WithVolatility(sigma<0)")
	}
	return func(c *config) { c.volatility = sigma }
}
