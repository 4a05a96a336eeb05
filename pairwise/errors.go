package pairwise

import "errors"

var (
	// ErrEmpty indicates a batch (or candidate list) with no series.
	ErrEmpty = errors.New("pairwise: no series")

	// ErrNoCandidate indicates that no candidate is reachable from the query.
	ErrNoCandidate = errors.New("pairwise: no reachable candidate")
)
