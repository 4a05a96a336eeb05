// Package dtw computes Dynamic Time Warping (DTW) alignments between two
// ordered sequences: the accumulated-cost matrix, the minimal total distance
// and the optimal warping path.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance.  It’s widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Signature & handwriting verification
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - generic element type T with a caller-supplied DistanceFunc[T]
//   - default |a−b| distance for numeric element types (Between)
//   - optional Sakoe–Chiba band, scaled to the length ratio (ScaledBand)
//     or on raw indices |i−j| ≤ w (RawBand)
//   - slope penalty to discourage excessive stretching
//   - distance-only mode keeping two rows of the table (TwoRows)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/warp/dtw"
//
//	a := []float64{1, 3, 9, 2, 1}
//	b := []float64{2, 0, 0, 8, 7, 2}
//
//	res, err := dtw.Between(a, b, nil)
//	if err != nil {
//	  // ErrEmptyInput, ErrUnreachable, ErrBadInput ...
//	}
//	fmt.Println(res.Distance(), res.Path())
//
// Table layout:
//
//	D is n×m, 0-indexed, D[i][j] = cost of aligning a[0..i] with b[0..j].
//	D[0][0] = d(a0,b0); every other admissible cell adds d(ai,bj) to the
//	cheapest of its up, left and up-left neighbours. Cells outside the band,
//	or with no reachable neighbour, stay +Inf and d is never evaluated there.
//
// Path recovery walks back from (n−1,m−1) to (0,0). On equal costs the
// diagonal step wins over the vertical one, which wins over the horizontal one.
//
// Performance:
//
//   - Time:   O(N·M) (O(N·w) cells evaluated with a band)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
//
// The computation is synchronous; a Result is immutable and safe to share.
package dtw
