// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/warp/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFilled(-1, 2, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestRowView checks that Row exposes the backing storage in row-major order.
func TestRowView(t *testing.T) {
	m, err := matrix.NewFromData(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	require.Equal(t, []float64{4, 5, 6}, m.Row(1))

	m.Row(0)[2] = 9
	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)

	// a row view must not be able to grow into the next row
	require.Equal(t, 3, cap(m.Row(0)))
}

// TestNewFromDataShape rejects slices whose length does not match the shape.
func TestNewFromDataShape(t *testing.T) {
	_, err := matrix.NewFromData(2, 3, []float64{1, 2, 3, 4, 5})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewFilled(2, 2, 1)
	require.NoError(t, err)

	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 3.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)
	require.False(t, m.Equal(clone))
}

// TestEqualShapes covers shape mismatch, nil handling and infinities.
func TestEqualShapes(t *testing.T) {
	a, _ := matrix.NewFilled(2, 2, math.Inf(1))
	b, _ := matrix.NewFilled(2, 2, math.Inf(1))
	c, _ := matrix.NewFilled(1, 4, math.Inf(1))

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))

	var n *matrix.Dense
	require.True(t, n.Equal(nil))
}

// TestStringAlignsInfinity checks column alignment with the ∞ glyph.
func TestStringAlignsInfinity(t *testing.T) {
	m, err := matrix.NewFromData(2, 2, []float64{1, math.Inf(1), 12.5, 3})
	require.NoError(t, err)

	want := "   1 ∞\n12.5 3\n"
	require.Equal(t, want, m.String())
}

// TestFormatValue covers the special values.
func TestFormatValue(t *testing.T) {
	require.Equal(t, "∞", matrix.FormatValue(math.Inf(1)))
	require.Equal(t, "-∞", matrix.FormatValue(math.Inf(-1)))
	require.Equal(t, "0.25", matrix.FormatValue(0.25))
	require.Equal(t, "17", matrix.FormatValue(17))
}
