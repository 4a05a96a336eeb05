package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/warp/matrix"
)

// CostMatrix is the accumulated-cost table of one alignment.
// Cell (i, j) holds the minimal cost of aligning a[0..i] with b[0..j], or
// +Inf when the cell is outside the band or cannot be reached.
// A CostMatrix is fully built before it is handed out and is read-only afterwards.
type CostMatrix struct {
	d *matrix.Dense
}

// Rows returns n, the length of the first sequence.
func (c *CostMatrix) Rows() int { return c.d.Rows() }

// Cols returns m, the length of the second sequence.
func (c *CostMatrix) Cols() int { return c.d.Cols() }

// At returns the accumulated cost of cell (i, j).
// Returns ErrOutOfRange for indices outside the table.
// Complexity: O(1).
func (c *CostMatrix) At(i, j int) (float64, error) {
	v, err := c.d.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, c.Rows(), c.Cols())
	}

	return v, nil
}

// Reachable reports whether cell (i, j) exists and holds a finite cost.
func (c *CostMatrix) Reachable(i, j int) bool {
	v, err := c.d.At(i, j)

	return err == nil && !math.IsInf(v, 1)
}

// Dense returns a copy of the table; mutating it does not affect c.
// Complexity: O(n·m).
func (c *CostMatrix) Dense() *matrix.Dense {
	return c.d.Clone()
}

// String renders the table with aligned columns and "∞" for unreachable cells.
func (c *CostMatrix) String() string {
	return c.d.String()
}

// at reads a cell the caller knows to be in range.
func (c *CostMatrix) at(i, j int) float64 {
	return c.d.Row(i)[j]
}
