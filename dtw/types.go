package dtw

// MemoryMode controls how DTW stores its DP table.
//
//   - FullMatrix — keep the entire n×m table in memory.
//     Allows distance + full backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows — only keep two rows (current and previous).
//     Reduces memory to O(m), but cannot recover the path.
//     Use when you only need the distance.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery, uses O(M) memory.
	TwoRows
)

// BandPolicy selects how the Sakoe–Chiba radius is measured.
type BandPolicy int

const (
	// ScaledBand follows the diagonal of the n×m rectangle: with
	// c(i) = i·(m−1)/(n−1), cell (i,j) is admissible iff
	// floor(c(i))−w ≤ j ≤ ceil(c(i))+w. This inclusive floor/ceil rule admits
	// one more cell on a side than |c(i)−j| ≤ w whenever c(i) is fractional.
	// Sequences of length 1 admit every cell.
	// Both corner cells are always admissible.
	ScaledBand BandPolicy = iota

	// RawBand admits cell (i,j) iff |i−j| ≤ w. The end cell is excluded
	// when |n−m| > w.
	RawBand
)

// NoWindow disables the band constraint.
const NoWindow = -1

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       — Sakoe–Chiba radius w ≥ 0; NoWindow (-1) means unconstrained.
//     Values below -1 are rejected with ErrBadInput.
//   - Band         — how the radius is measured (ScaledBand or RawBand).
//   - SlopePenalty — non-negative cost added to vertical/horizontal steps.
//     Zero gives the classic recurrence.
//   - ReturnPath   — DTW only: also return the warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode   — DTW only: FullMatrix or TwoRows storage.
//
// Align and Between always build the full matrix and recover the path; they
// ignore ReturnPath and MemoryMode.
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10           // only compare elements within ±10 steps of the diagonal
//	opts.SlopePenalty = 0.5    // small penalty for non-diagonal moves
//	res, err := dtw.Between(seqA, seqB, &opts)
type Options struct {
	Window       int
	Band         BandPolicy
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns unconstrained options: no band, no slope penalty,
// FullMatrix storage, no path for DTW.
func DefaultOptions() Options {
	return Options{
		Window:       NoWindow,
		Band:         ScaledBand,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}

// Coord is a cell of the warping path: I indexes the first sequence, J the second.
type Coord struct {
	I int
	J int
}

// DistanceFunc is the pointwise cost between two elements.
// It must be deterministic and return finite values; the engine calls it at
// most once per admissible cell and never for cells outside the band.
type DistanceFunc[T any] func(x, y T) float64

// Number is the set of element types with a built-in absolute-difference distance.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
