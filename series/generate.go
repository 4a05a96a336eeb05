// SPDX-License-Identifier: MIT
// Package: warp/series
//
// generate.go — deterministic pulse, chirp and sine generators.
//
// Contract:
//   • Each generator returns a slice of length n, or nil when n < 1.
//   • Strict determinism per (n, options); no global state.
//   • O(n) time and O(n) memory.
//
// Sample model shared by all shapes:
//   yᵢ = base(i) + trend*i + sigma*N(0,1)

package series

import "math"

const tau = 2.0 * math.Pi // τ = 2π

// Pulse returns a length-n pulse train.
// Shape:
//   - Rectangular: y ∈ {0, A} chosen by phase fraction < duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2*frac − 1| (no trig).
func Pulse(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)

	return sample(n, cfg, func(i int) float64 {
		// phase fraction in [0,1): frac = (i*f0) mod 1
		frac := math.Mod(float64(i)*cfg.frequency, 1)
		if cfg.triangular {
			return cfg.amplitude * (1 - math.Abs(2*frac-1))
		}
		if frac < cfg.duty {
			return cfg.amplitude
		}

		return 0
	})
}

// Chirp returns a length-n linear chirp: the frequency sweeps from f0 to f1
// (defaults 0.02 → 0.25 cycles/sample, see WithSweep).
// Model:
//   - fi   = f0 + (f1 − f0) * i/(n−1)
//   - θᵢ₊₁ = θᵢ + τ * fi   (phase accumulator, θ₀ = 0)
//   - yᵢ   = A * sin(θᵢ₊₁)
func Chirp(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	f0, f1 := defaultChirpStart, cfg.frequency2
	if cfg.freqSet {
		f0 = cfg.frequency
	}

	theta := 0.0
	return sample(n, cfg, func(i int) float64 {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * (f0 + (f1-f0)*t)

		return cfg.amplitude * math.Sin(theta)
	})
}

// Sine returns yᵢ = A * sin(τ * f0 * i).
func Sine(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)

	return sample(n, cfg, func(i int) float64 {
		return cfg.amplitude * math.Sin(tau*cfg.frequency*float64(i))
	})
}

// sample evaluates base in index order and adds trend and noise.
// base is called exactly once per index, from 0 to n-1.
func sample(n int, cfg config, base func(i int) float64) []float64 {
	out := make([]float64, n)
	rng := cfg.noise()
	for i := range out {
		v := base(i) + cfg.trend*float64(i)
		if cfg.noiseSigma > 0 {
			v += cfg.noiseSigma * rng.NormFloat64()
		}
		out[i] = v
	}

	return out
}

// Stretch resamples s to round(len(s)*factor) samples (at least one) by
// linear interpolation, keeping the first and last sample in place.
// It returns nil for an empty s or a non-positive factor.
func Stretch(s []float64, factor float64) []float64 {
	if len(s) == 0 || factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil
	}
	n := int(math.Round(float64(len(s)) * factor))
	if n < 1 {
		n = 1
	}
	out := make([]float64, n)
	if n == 1 || len(s) == 1 {
		for i := range out {
			out[i] = s[0]
		}
		return out
	}

	scale := float64(len(s)-1) / float64(n-1)
	for k := range out {
		pos := float64(k) * scale
		lo := int(pos)
		if lo >= len(s)-1 {
			out[k] = s[len(s)-1]
			continue
		}
		frac := pos - float64(lo)
		out[k] = s[lo] + (s[lo+1]-s[lo])*frac
	}

	return out
}
