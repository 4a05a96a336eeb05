// SPDX-License-Identifier: MIT
// Package: warp/series
//
// ohlc.go — deterministic OHLC price bars via discrete-time GBM with
// intraday steps.
//
// Contract:
//   • OHLC(n, opts...) → (open, high, low, close), each of length n; nil when n < 1.
//   • Noise comes from the same stream as the other generators (WithSeed/WithRand).
//   • O(n·steps) time; O(n) memory; steps is a small constant.
//
// Invariants (per bar):
//   • low ≤ min(open, close) ≤ max(open, close) ≤ high.
//   • open[d+1] == close[d].

package series

import "math"

const (
	defaultPriceStart = 100.0  // S0
	defaultDailyDrift = 0.0005 // μ
	defaultDailyVol   = 0.02   // σ
	intradaySteps     = 8
)

// OHLC returns n bars of a geometric Brownian motion price path:
//
//	S_{t+1} = S_t * exp((μ − σ²/2)Δt + σ√Δt * Z),  Z ~ N(0,1),  Δt = 1/steps.
//
// S0, μ and σ are set with WithStart, WithDrift and WithVolatility. Amplitude,
// frequency, trend and noise options do not apply.
func OHLC(n int, opts ...Option) (open, high, low, close []float64) {
	if n < 1 {
		return nil, nil, nil, nil
	}
	cfg := newConfig(opts...)
	rng := cfg.noise()

	open = make([]float64, n)
	high = make([]float64, n)
	low = make([]float64, n)
	close = make([]float64, n)

	dt := 1.0 / intradaySteps
	drift := (cfg.drift - 0.5*cfg.volatility*cfg.volatility) * dt
	scale := cfg.volatility * math.Sqrt(dt)

	s := cfg.start
	for d := 0; d < n; d++ {
		open[d], high[d], low[d] = s, s, s
		for k := 0; k < intradaySteps; k++ {
			s *= math.Exp(drift + scale*rng.NormFloat64())
			high[d] = max(high[d], s)
			low[d] = min(low[d], s)
		}
		close[d] = s
	}

	return open, high, low, close
}

// Closes returns the close prices of OHLC(n, opts...).
func Closes(n int, opts ...Option) []float64 {
	_, _, _, c := OHLC(n, opts...)
	return c
}
