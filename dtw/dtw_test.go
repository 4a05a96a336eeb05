package dtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/warp/dtw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDTW_EmptyInput verifies that DTW returns ErrEmptyInput
// when either input sequence is empty.
func TestDTW_EmptyInput(t *testing.T) {
	opts := dtw.DefaultOptions()

	// Empty first sequence
	_, _, err := dtw.DTW([]float64{}, []float64{1, 2, 3}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first sequence should error")

	// Empty second sequence
	_, _, err = dtw.DTW([]float64{1, 2, 3}, []float64{}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second sequence should error")

	_, err = dtw.Between([]int{}, []int{1}, nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)

	_, err = dtw.Cost([]int{1}, nil, dtw.AbsDiff[int], nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)
}

// TestDTW_BadWindowOption ensures that Window < -1 triggers ErrBadInput.
func TestDTW_BadWindowOption(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = -2

	_, _, err := dtw.DTW([]float64{1}, []float64{1}, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput, "Window < -1 must error ErrBadInput")
}

// TestDTW_BadOptions covers the remaining option validation rules.
func TestDTW_BadOptions(t *testing.T) {
	cases := map[string]func(o *dtw.Options){
		"negative penalty": func(o *dtw.Options) { o.SlopePenalty = -1 },
		"NaN penalty":      func(o *dtw.Options) { o.SlopePenalty = math.NaN() },
		"Inf penalty":      func(o *dtw.Options) { o.SlopePenalty = math.Inf(1) },
		"unknown band":     func(o *dtw.Options) { o.Band = dtw.BandPolicy(7) },
		"unknown memory":   func(o *dtw.Options) { o.MemoryMode = dtw.MemoryMode(7) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			opts := dtw.DefaultOptions()
			mutate(&opts)
			_, err := dtw.Between([]float64{1, 2}, []float64{1, 2}, &opts)
			assert.ErrorIs(t, err, dtw.ErrBadInput)
		})
	}
}

// TestDTW_PathNeedsMatrix ensures ReturnPath=true with non-FullMatrix mode errors.
func TestDTW_PathNeedsMatrix(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.TwoRows

	_, _, err := dtw.DTW([]float64{1, 2}, []float64{1, 2}, &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix, "ReturnPath without FullMatrix must error ErrPathNeedsMatrix")
}

// TestDTW_BasicDistance verifies that identical sequences have zero distance
// and no path is returned by default.
func TestDTW_BasicDistance(t *testing.T) {
	a := []float64{0, 1, 2}
	b := []float64{0, 1, 2}
	opts := dtw.DefaultOptions()

	dist, path, err := dtw.DTW(a, b, &opts)
	assert.NoError(t, err, "identical sequences should not error")
	assert.Equal(t, 0.0, dist, "identical sequences must have zero distance")
	assert.Nil(t, path, "default ReturnPath=false should yield nil path")
}

// TestDTW_SyntheticDistanceAndPath checks a perfect subsequence match
// and that the path length equals n + (m-n).
func TestDTW_SyntheticDistanceAndPath(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix

	dist, path, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err, "should not error on perfect match")
	assert.Equal(t, 0.0, dist, "perfect subsequence match yields zero cost")
	assert.Equal(t, []dtw.Coord{{0, 0}, {1, 1}, {1, 2}, {2, 3}}, path)
}

// TestDTW_WindowConstraint verifies that a strict window = 0 with a length
// mismatch is unreachable on raw indices but still feasible on the scaled band.
func TestDTW_WindowConstraint(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 3, 4}
	opts := dtw.DefaultOptions()
	opts.Window = 0

	opts.Band = dtw.RawBand
	_, _, err := dtw.DTW(a, b, &opts)
	assert.ErrorIs(t, err, dtw.ErrUnreachable, "raw window=0 with length mismatch has no end cell")

	opts.Band = dtw.ScaledBand
	opts.ReturnPath = true
	dist, path, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist)
	assert.Equal(t, []dtw.Coord{{0, 0}, {1, 1}, {1, 2}, {2, 3}}, path)
}

// TestDTW_SlopePenaltyAffectsDistance ensures that a positive slope penalty
// increases the computed distance by exactly that penalty.
func TestDTW_SlopePenaltyAffectsDistance(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 1, 2, 3}

	// No penalty
	opts := dtw.DefaultOptions()
	dist0, _, err := dtw.DTW(a, b, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, dist0, "zero penalty allows perfect cost")

	// Penalty = 1.0
	opts.SlopePenalty = 1.0
	opts.ReturnPath = true
	dist1, path, err := dtw.DTW(a, b, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, dist1, "penalty=1.0 adds exactly one unit to distance")
	assert.Equal(t, []dtw.Coord{{0, 0}, {0, 1}, {1, 2}, {2, 3}}, path)
}

// TestDTW_TwoRowsDistanceOnly confirms TwoRows mode matches FullMatrix distance
// and does not return a path.
func TestDTW_TwoRowsDistanceOnly(t *testing.T) {
	a := []float64{0, 1, 2, 3}
	b := []float64{0, 1, 1, 2, 3}

	// Reference with FullMatrix
	refOpts := dtw.DefaultOptions()
	refDist, _, err := dtw.DTW(a, b, &refOpts)
	require.NoError(t, err)

	// TwoRows mode
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows
	dist, path, err := dtw.DTW(a, b, &opts)
	assert.NoError(t, err)
	assert.Equal(t, refDist, dist, "TwoRows must match FullMatrix distance")
	assert.Nil(t, path, "TwoRows should not return a path")
}

// TestDTW_TwoRowsUnreachable checks that the rolling mode reports the same
// band failures as the full table.
func TestDTW_TwoRowsUnreachable(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows
	opts.Window = 0

	_, _, err := dtw.DTW([]float64{0, 0}, make([]float64, 10), &opts)
	assert.ErrorIs(t, err, dtw.ErrUnreachable)

	opts.Band = dtw.RawBand
	_, _, err = dtw.DTW([]float64{0, 0}, []float64{0, 0, 0}, &opts)
	assert.ErrorIs(t, err, dtw.ErrUnreachable)
}

// TestDTW_NegativeWindowUnlimited verifies Window=-1 disables constraint.
func TestDTW_NegativeWindowUnlimited(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{1, 2, 3}
	opts := dtw.DefaultOptions()
	opts.Window = -1
	opts.Band = dtw.RawBand

	dist, _, err := dtw.DTW(a, b, &opts)
	assert.NoError(t, err)
	assert.False(t, math.IsInf(dist, 1), "Window=-1 must allow alignment")
}

// TestDTW_BadInputCombination checks that contradictory options error out.
func TestDTW_BadInputCombination(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = 0
	opts.MemoryMode = dtw.TwoRows
	opts.ReturnPath = true

	_, _, err := dtw.DTW([]float64{1}, []float64{1}, &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix, "invalid options must return ErrPathNeedsMatrix")
}

// TestDTW_ZeroValueOptions documents that a zero Options means Window=0.
func TestDTW_ZeroValueOptions(t *testing.T) {
	var opts dtw.Options // Window 0, ScaledBand
	res, err := dtw.Between([]float64{1, 2, 3}, []float64{3, 2, 1}, &opts)
	require.NoError(t, err)
	assert.Equal(t, []dtw.Coord{{0, 0}, {1, 1}, {2, 2}}, res.Path())
	assert.Equal(t, 4.0, res.Distance())
}
