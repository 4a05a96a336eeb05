// SPDX-License-Identifier: MIT
// Text rendering for Dense: right-aligned columns, infinities as "∞".

package matrix

import (
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	infGlyph    = "∞"  // printed for +Inf cells (unreachable DTW cells)
	negInfGlyph = "-∞" // printed for -Inf cells
	cellSep     = " "  // separator between columns
)

// widthCond measures cells independently of the terminal locale, so "∞"
// (East Asian ambiguous) always counts as one cell.
var widthCond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// FormatValue renders a single value the way String does.
// Finite values use the shortest 'g' representation.
func FormatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return infGlyph
	case math.IsInf(v, -1):
		return negInfGlyph
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// String implements fmt.Stringer.
// Every column is padded to its widest cell, measured in terminal cells
// (the ∞ glyph is one cell wide but three bytes long).
// Stage 1 (Prepare): format all cells and compute column widths.
// Stage 2 (Execute): emit rows joined by newlines.
// Complexity: O(r*c).
func (m *Dense) String() string {
	cells := make([]string, len(m.data))
	widths := make([]int, m.c)
	for i, v := range m.data {
		cells[i] = FormatValue(v)
		if w := widthCond.StringWidth(cells[i]); w > widths[i%m.c] {
			widths[i%m.c] = w
		}
	}

	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(cellSep)
			}
			sb.WriteString(widthCond.FillLeft(cells[i*m.c+j], widths[j]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
