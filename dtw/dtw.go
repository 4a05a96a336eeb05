package dtw

import (
	"fmt"
	"math"
)

// Result is the outcome of one alignment: the total distance, the warping
// path and the accumulated-cost table they were derived from.
// A Result is never returned together with an error and is immutable.
type Result struct {
	matrix   *CostMatrix
	path     []Coord
	distance float64
	penalty  float64
}

// Distance returns D[n-1][m-1], the minimal total alignment cost.
func (r *Result) Distance() float64 { return r.distance }

// Path returns the warping path from (0,0) to (n-1,m-1).
// The slice is a copy; callers may modify it.
func (r *Result) Path() []Coord {
	out := make([]Coord, len(r.path))
	copy(out, r.path)

	return out
}

// Normalized returns the distance divided by the number of path cells.
func (r *Result) Normalized() float64 {
	return r.distance / float64(len(r.path))
}

// Matrix returns the accumulated-cost table.
func (r *Result) Matrix() *CostMatrix { return r.matrix }

// PathFrom recovers the optimal path from (0,0) to an arbitrary cell (i, j),
// i.e. the alignment of the prefixes a[0..i] and b[0..j].
// Returns ErrOutOfRange for indices outside the table and ErrUnreachable
// for cells outside the band.
func (r *Result) PathFrom(i, j int) ([]Coord, error) {
	if i < 0 || i >= r.matrix.Rows() || j < 0 || j >= r.matrix.Cols() {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, r.matrix.Rows(), r.matrix.Cols())
	}

	return recoverPath(r.matrix, i, j, r.penalty)
}

// Align computes the DTW alignment of a and b under the pointwise cost dist.
// A nil opts means DefaultOptions(). ReturnPath and MemoryMode are ignored:
// Align always keeps the full table and recovers the path.
//
// Errors:
//   - ErrEmptyInput  — either sequence is empty.
//   - ErrNilDistance — dist is nil.
//   - ErrBadInput    — invalid options.
//   - ErrUnreachable — the band leaves no path from (0,0) to (n-1,m-1).
//   - ErrBadCost     — dist returned NaN or ±Inf.
//
// Complexity: O(n·m) time and memory.
func Align[T any](a, b []T, dist DistanceFunc[T], opts *Options) (*Result, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if dist == nil {
		return nil, ErrNilDistance
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	cm, err := buildMatrix(a, b, dist, o)
	if err != nil {
		return nil, err
	}
	n, m := len(a), len(b)
	path, err := recoverPath(cm, n-1, m-1, o.SlopePenalty)
	if err != nil {
		return nil, err
	}

	return &Result{
		matrix:   cm,
		path:     path,
		distance: cm.at(n-1, m-1),
		penalty:  o.SlopePenalty,
	}, nil
}

// Between aligns two numeric sequences with the default distance |x−y|.
func Between[T Number](a, b []T, opts *Options) (*Result, error) {
	return Align(a, b, AbsDiff[T], opts)
}

// Cost returns only the DTW distance, keeping two rows of the table.
// Options and errors are the same as Align.
// Complexity: O(n·m) time, O(m) memory.
func Cost[T any](a, b []T, dist DistanceFunc[T], opts *Options) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyInput
	}
	if dist == nil {
		return 0, ErrNilDistance
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, err
	}

	return rollingDistance(a, b, dist, o)
}

// DTW computes the Dynamic Time Warping distance between two float64 series
// under |x−y|. Returns (distance, path, error); path is nil unless
// opts.ReturnPath is set.
//
// If opts.ReturnPath is true, opts.MemoryMode must be FullMatrix.
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := dtw.DTW(seqA, seqB, &opts)
func DTW(a, b []float64, opts *Options) (distance float64, path []Coord, err error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrEmptyInput
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, nil, err
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	if o.MemoryMode == TwoRows {
		distance, err = rollingDistance(a, b, AbsDiff[float64], o)
		if err != nil {
			return 0, nil, err
		}

		return distance, nil, nil
	}

	res, err := Align(a, b, AbsDiff[float64], &o)
	if err != nil {
		return 0, nil, err
	}
	if o.ReturnPath {
		path = res.path
	}

	return res.distance, path, nil
}

// resolveOptions applies defaults for nil and validates the fields.
func resolveOptions(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	o := *opts
	switch {
	case o.Window < NoWindow:
		return o, fmt.Errorf("%w: Window=%d", ErrBadInput, o.Window)
	case o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) || math.IsInf(o.SlopePenalty, 0):
		return o, fmt.Errorf("%w: SlopePenalty=%v", ErrBadInput, o.SlopePenalty)
	case o.Band != ScaledBand && o.Band != RawBand:
		return o, fmt.Errorf("%w: Band=%d", ErrBadInput, o.Band)
	case o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows:
		return o, fmt.Errorf("%w: MemoryMode=%d", ErrBadInput, o.MemoryMode)
	}

	return o, nil
}
