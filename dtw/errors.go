package dtw

import "errors"

// Sentinel errors. Every message carries the "dtw:" prefix; match with errors.Is.
//
// Error priority (checked in this order):
// empty input -> nil distance -> bad options -> band excludes an endpoint
// -> bad cost value -> unreachable end cell.
var (
	// ErrEmptyInput indicates one or both sequences are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrNilDistance indicates Align was called without a distance function.
	ErrNilDistance = errors.New("dtw: distance function is nil")

	// ErrBadInput indicates invalid options (Window < -1, negative or
	// non-finite SlopePenalty, unknown Band or MemoryMode).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrUnreachable indicates that no warping path connects (0,0) with the
	// end cell under the configured band.
	ErrUnreachable = errors.New("dtw: end cell is unreachable under the band constraint")

	// ErrBadCost indicates the distance function returned NaN or ±Inf.
	ErrBadCost = errors.New("dtw: distance function returned a non-finite value")

	// ErrPathNeedsMatrix indicates ReturnPath was requested with TwoRows memory mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrOutOfRange indicates a cell index outside the cost matrix.
	ErrOutOfRange = errors.New("dtw: index out of range")
)
