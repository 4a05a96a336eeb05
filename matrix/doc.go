// Package matrix provides the dense, row-major float64 storage shared by the
// warp packages.
//
// The matrix package provides:
//
//   - Dense, a rows×cols grid held in one contiguous slice. DTW uses it for the
//     accumulated-cost table, pairwise uses it for N×N distance matrices.
//   - Bounds-checked At/Set for callers, and Row views for hot loops that
//     already know their indices are valid.
//   - A text rendering that aligns columns and prints +Inf as "∞".
//
// Dense values are not safe for concurrent mutation; concurrent readers are fine
// once writing has finished.
package matrix
