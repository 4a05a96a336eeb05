package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/warp/matrix"
)

var inf = math.Inf(1)

// buildMatrix fills the full n×m accumulated-cost table.
//
// Algorithm Outline:
//  1. Reject tables whose corner cells lie outside the band.
//  2. Allocate D filled with +Inf.
//  3. For i = 0..n-1, for j in the admissible span of row i:
//     best = 0 at (0,0), else min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p)
//     if best is finite: D[i][j] = best + dist(a[i], b[j])
//  4. D[n-1][m-1] must be finite.
//
// Complexity: O(n·m) time and memory; dist is called once per reachable admissible cell.
func buildMatrix[T any](a, b []T, dist DistanceFunc[T], opts Options) (*CostMatrix, error) {
	n, m := len(a), len(b)
	bd := newBand(n, m, opts)
	if !bd.contains(0, 0) || !bd.contains(n-1, m-1) {
		return nil, fmt.Errorf("%w: corner cell outside band (n=%d m=%d window=%d)",
			ErrUnreachable, n, m, opts.Window)
	}

	d, err := matrix.NewFilled(n, m, inf)
	if err != nil {
		return nil, err
	}

	var prev []float64 // row i-1; nil while filling row 0
	for i := 0; i < n; i++ {
		row := d.Row(i)
		lo, hi := bd.span(i)
		if err = relaxRow(row, prev, i, lo, hi, a[i], b, dist, opts.SlopePenalty); err != nil {
			return nil, err
		}
		prev = row
	}

	if math.IsInf(prev[m-1], 1) {
		return nil, fmt.Errorf("%w: no path to (%d,%d)", ErrUnreachable, n-1, m-1)
	}

	return &CostMatrix{d: d}, nil
}

// relaxRow computes cells lo..hi of row i in place.
// row must hold +Inf outside [lo, hi]; prev is row i-1 or nil for i == 0.
// Cells whose three neighbours are all +Inf stay +Inf and dist is not called.
// Complexity: O(hi-lo+1).
func relaxRow[T any](row, prev []float64, i, lo, hi int, ai T, b []T, dist DistanceFunc[T], penalty float64) error {
	var best, v, c float64
	for j := lo; j <= hi; j++ {
		best = inf
		if i == 0 && j == 0 {
			best = 0
		}
		if prev != nil {
			if j > 0 {
				best = prev[j-1] // diagonal
			}
			if v = prev[j] + penalty; v < best { // vertical
				best = v
			}
		}
		if j > 0 {
			if v = row[j-1] + penalty; v < best { // horizontal
				best = v
			}
		}
		if math.IsInf(best, 1) {
			continue
		}

		c = dist(ai, b[j])
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: d(a[%d], b[%d]) = %v", ErrBadCost, i, j, c)
		}
		row[j] = best + c
	}

	return nil
}

// rollingDistance computes D[n-1][m-1] keeping only two rows.
// Same recurrence, band and errors as buildMatrix.
// Complexity: O(n·m) time, O(m) memory.
func rollingDistance[T any](a, b []T, dist DistanceFunc[T], opts Options) (float64, error) {
	n, m := len(a), len(b)
	bd := newBand(n, m, opts)
	if !bd.contains(0, 0) || !bd.contains(n-1, m-1) {
		return 0, fmt.Errorf("%w: corner cell outside band (n=%d m=%d window=%d)",
			ErrUnreachable, n, m, opts.Window)
	}

	curr := make([]float64, m)
	var prev []float64
	for i := 0; i < n; i++ {
		for j := range curr {
			curr[j] = inf
		}
		lo, hi := bd.span(i)
		if err := relaxRow(curr, prev, i, lo, hi, a[i], b, dist, opts.SlopePenalty); err != nil {
			return 0, err
		}
		if prev == nil {
			prev = make([]float64, m)
		}
		prev, curr = curr, prev
	}

	if math.IsInf(prev[m-1], 1) {
		return 0, fmt.Errorf("%w: no path to (%d,%d)", ErrUnreachable, n-1, m-1)
	}

	return prev[m-1], nil
}
