package dtw_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/warp/dtw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidPath checks endpoints, unit steps and that every cell is reachable.
func assertValidPath(t *testing.T, res *dtw.Result, n, m int) {
	t.Helper()
	path := res.Path()
	require.NotEmpty(t, path)
	assert.Equal(t, dtw.Coord{I: 0, J: 0}, path[0])
	assert.Equal(t, dtw.Coord{I: n - 1, J: m - 1}, path[len(path)-1])
	for k := 1; k < len(path); k++ {
		di, dj := path[k].I-path[k-1].I, path[k].J-path[k-1].J
		ok := (di == 0 && dj == 1) || (di == 1 && dj == 0) || (di == 1 && dj == 1)
		assert.True(t, ok, "bad step %v -> %v", path[k-1], path[k])
	}
	for _, c := range path {
		assert.True(t, res.Matrix().Reachable(c.I, c.J), "path cell %v outside band", c)
	}
}

// TestProperty_Identity: DTW(A, A) is zero and follows the diagonal.
func TestProperty_Identity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 1; n <= 12; n++ {
		a := randomSeries(rng, n)
		res, err := dtw.Between(a, a, nil)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Distance())

		want := make([]dtw.Coord, n)
		for i := range want {
			want[i] = dtw.Coord{I: i, J: i}
		}
		// repeated values create zero-cost detours; diagonal wins ties
		assert.Equal(t, want, res.Path(), "n=%d a=%v", n, a)
	}
}

// TestProperty_Symmetry: a symmetric metric gives DTW(A,B) = DTW(B,A).
func TestProperty_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 40; trial++ {
		a := randomSeries(rng, 1+rng.Intn(10))
		b := randomSeries(rng, 1+rng.Intn(10))
		opts := dtw.DefaultOptions()
		if trial%2 == 0 {
			opts.Window = len(a) + len(b)
			opts.Band = dtw.RawBand
		}

		ab, err := dtw.Between(a, b, &opts)
		require.NoError(t, err)
		ba, err := dtw.Between(b, a, &opts)
		require.NoError(t, err)
		assert.InDelta(t, ab.Distance(), ba.Distance(), 1e-9, "a=%v b=%v", a, b)
	}
}

// TestProperty_MonotonicBand: widening the band never increases the distance,
// and a band covering the table equals the unbanded result.
func TestProperty_MonotonicBand(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, policy := range []dtw.BandPolicy{dtw.ScaledBand, dtw.RawBand} {
		for trial := 0; trial < 25; trial++ {
			a := randomSeries(rng, 2+rng.Intn(10))
			b := randomSeries(rng, 2+rng.Intn(10))
			full, err := dtw.Between(a, b, nil)
			require.NoError(t, err)

			prev := math.Inf(1)
			maxR := len(a) + len(b)
			for r := 0; r <= maxR; r++ {
				opts := dtw.DefaultOptions()
				opts.Window = r
				opts.Band = policy

				got := math.Inf(1)
				res, err := dtw.Between(a, b, &opts)
				if err != nil {
					require.ErrorIs(t, err, dtw.ErrUnreachable)
				} else {
					got = res.Distance()
					assertValidPath(t, res, len(a), len(b))
				}
				assert.LessOrEqual(t, got, prev, "r=%d policy=%d", r, policy)
				prev = got
			}
			assert.Equal(t, full.Distance(), prev, "widest band must match unbanded")
		}
	}
}

// TestProperty_PathValidity runs random inputs through every option combination.
func TestProperty_PathValidity(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < 100; trial++ {
		a := randomSeries(rng, 1+rng.Intn(15))
		b := randomSeries(rng, 1+rng.Intn(15))
		opts := dtw.DefaultOptions()
		opts.Window = rng.Intn(6) - 1
		opts.Band = dtw.BandPolicy(rng.Intn(2))
		opts.SlopePenalty = float64(rng.Intn(4)) / 4

		res, err := dtw.Between(a, b, &opts)
		if err != nil {
			require.ErrorIs(t, err, dtw.ErrUnreachable)
			continue
		}
		assertValidPath(t, res, len(a), len(b))
	}
}

// TestProperty_PathCostMatchesDistance: summing local costs (plus the slope
// penalty on non-diagonal steps) along the recovered path gives the distance.
func TestProperty_PathCostMatchesDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 60; trial++ {
		a := randomSeries(rng, 1+rng.Intn(10))
		b := randomSeries(rng, 1+rng.Intn(10))
		opts := dtw.DefaultOptions()
		opts.SlopePenalty = float64(rng.Intn(3))

		res, err := dtw.Between(a, b, &opts)
		require.NoError(t, err)

		path := res.Path()
		sum := dtw.AbsDiff(a[0], b[0])
		for k := 1; k < len(path); k++ {
			c := path[k]
			sum += dtw.AbsDiff(a[c.I], b[c.J])
			if c.I == path[k-1].I || c.J == path[k-1].J {
				sum += opts.SlopePenalty
			}
		}
		assert.InDelta(t, res.Distance(), sum, 1e-9, "a=%v b=%v", a, b)
	}
}
