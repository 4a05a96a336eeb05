package dtw

// band answers admissibility queries for an n×m table.
// All arithmetic is integer so row spans are exact for any n, m.
type band struct {
	n, m   int
	radius int // < 0 means unconstrained
	policy BandPolicy
}

// newBand clamps the radius to max(n, m); any wider band admits the same cells.
func newBand(n, m int, opts Options) band {
	radius := opts.Window
	if radius > max(n, m) {
		radius = max(n, m)
	}

	return band{n: n, m: m, radius: radius, policy: opts.Band}
}

// span returns the inclusive admissible column range [lo, hi] of row i,
// clipped to [0, m-1]. lo > hi means the row has no admissible cell.
// Complexity: O(1).
func (b band) span(i int) (lo, hi int) {
	if b.radius < 0 {
		return 0, b.m - 1
	}

	switch b.policy {
	case RawBand:
		lo, hi = i-b.radius, i+b.radius
	default:
		if b.n == 1 || b.m == 1 {
			return 0, b.m - 1
		}
		// c(i) = i·(m−1)/(n−1); floor and ceil without floating point.
		num, den := i*(b.m-1), b.n-1
		lo = num/den - b.radius
		hi = (num+den-1)/den + b.radius
	}

	if lo < 0 {
		lo = 0
	}
	if hi > b.m-1 {
		hi = b.m - 1
	}

	return lo, hi
}

// contains reports whether (i, j) is inside the table and admissible.
func (b band) contains(i, j int) bool {
	if i < 0 || i >= b.n || j < 0 || j >= b.m {
		return false
	}
	lo, hi := b.span(i)

	return lo <= j && j <= hi
}
