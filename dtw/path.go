package dtw

import "fmt"

// recoverPath walks the completed table back from (i, j) to (0, 0).
//
// At every step the predecessor with the smallest score wins, where the score
// is D for the diagonal step and D+penalty for the vertical and horizontal
// steps. Ties keep the first candidate in the order
// diagonal (i-1,j-1) → vertical (i-1,j) → horizontal (i,j-1).
// Out-of-range and +Inf predecessors are never selected.
//
// The result runs from (0,0) to (i,j) inclusive.
// Complexity: O(i+j) time and memory.
func recoverPath(c *CostMatrix, i, j int, penalty float64) ([]Coord, error) {
	if !c.Reachable(i, j) {
		return nil, fmt.Errorf("%w: start cell (%d,%d)", ErrUnreachable, i, j)
	}

	path := make([]Coord, 0, i+j+1)
	for {
		path = append(path, Coord{I: i, J: j})
		if i == 0 && j == 0 {
			break
		}
		next, ok := c.predecessor(i, j, penalty)
		if !ok {
			return nil, fmt.Errorf("%w: no finite predecessor of (%d,%d)", ErrUnreachable, i, j)
		}
		i, j = next.I, next.J
	}

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}

// predecessor picks the cheapest finite neighbour of (i, j) with the fixed
// diagonal > vertical > horizontal preference on ties.
func (c *CostMatrix) predecessor(i, j int, penalty float64) (Coord, bool) {
	best := inf
	var at Coord
	if i > 0 && j > 0 {
		if v := c.at(i-1, j-1); v < best {
			best, at = v, Coord{I: i - 1, J: j - 1}
		}
	}
	if i > 0 {
		if v := c.at(i-1, j) + penalty; v < best {
			best, at = v, Coord{I: i - 1, J: j}
		}
	}
	if j > 0 {
		if v := c.at(i, j-1) + penalty; v < best {
			best, at = v, Coord{I: i, J: j - 1}
		}
	}

	return at, best < inf
}
