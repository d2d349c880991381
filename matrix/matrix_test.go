// Package matrix_test contains unit tests for construction, cloning, and
// formatting of the constrained Matrix container.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/constrix/constraint"
	"github.com/katalvlaran/constrix/matrix"
	"github.com/stretchr/testify/require"
)

// digits returns the constraint set used across tests: values in [0, 9].
func digits() []constraint.Constraint {
	return []constraint.Constraint{constraint.AtLeast(0), constraint.AtMost(9)}
}

//----------------------------------------------------------------------------//
// New (size-based construction)
//----------------------------------------------------------------------------//

// TestNewFillsEveryCell verifies that New yields a grid where every cell
// equals the fill value.
func TestNewFillsEveryCell(t *testing.T) {
	m, err := matrix.New(3, 4, matrix.WithFill(7))
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, 7, v) // every cell must equal the fill value
		}
	}
}

// TestNewDefaultFill ensures the default fill value is zero.
func TestNewDefaultFill(t *testing.T) {
	m, err := matrix.New(2, 2)
	require.NoError(t, err)

	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, row)
}

// TestNewValidatesFillBeforeAllocation ensures a constraint-violating fill
// value fails with ErrConstraintViolation and nothing observable is built.
func TestNewValidatesFillBeforeAllocation(t *testing.T) {
	m, err := matrix.New(2, 2,
		matrix.WithFill(42), // violates AtMost(9)
		matrix.WithConstraints(digits()...))

	require.ErrorIs(t, err, matrix.ErrConstraintViolation)
	require.Nil(t, m) // no partial allocation is observable
}

// TestNewShapeErrors covers negative dimensions and legal zero shapes.
func TestNewShapeErrors(t *testing.T) {
	_, err := matrix.New(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidSize)

	_, err = matrix.New(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidSize)

	// Zero-sized shapes are legal, just empty.
	m, err := matrix.New(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
}

//----------------------------------------------------------------------------//
// FromRows (grid-based construction)
//----------------------------------------------------------------------------//

// TestFromRowsRoundTrip verifies that a rectangular grid is stored exactly
// as supplied: Row(i) and Column(j) reproduce the input.
func TestFromRowsRoundTrip(t *testing.T) {
	grid := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	m, err := matrix.FromRows(grid)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	for i, want := range grid {
		row, err := m.Row(i)
		require.NoError(t, err)
		require.Equal(t, want, row) // each row round-trips unchanged
	}
	for j := 0; j < 3; j++ {
		col, err := m.Column(j)
		require.NoError(t, err)
		require.Equal(t, []int{grid[0][j], grid[1][j]}, col) // columns too
	}
}

// TestFromRowsRagged ensures non-rectangular input fails with ErrInvalidSize
// (concrete scenario: [[1,2],[3]]).
func TestFromRowsRagged(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
	}{
		{"ShortSecondRow", [][]int{{1, 2}, {3}}},
		{"LongSecondRow", [][]int{{1}, {2, 3}}},
		{"EmptyMiddleRow", [][]int{{1, 2}, {}, {3, 4}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromRows(tc.grid)
			if !errors.Is(err, matrix.ErrInvalidSize) {
				t.Errorf("FromRows(%v) error = %v; want %v", tc.grid, err, matrix.ErrInvalidSize)
			}
		})
	}
}

// TestFromRowsValidatesElements ensures supplied elements are checked
// against the constraint set at construction time, like New's fill value.
func TestFromRowsValidatesElements(t *testing.T) {
	_, err := matrix.FromRows(
		[][]int{{1, 2}, {3, 10}}, // 10 violates AtMost(9)
		matrix.WithConstraints(digits()...))

	require.ErrorIs(t, err, matrix.ErrConstraintViolation)
}

// TestFromRowsEmpty ensures an empty grid yields a legal 0×0 matrix.
func TestFromRowsEmpty(t *testing.T) {
	m, err := matrix.FromRows(nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
}

// TestFromRowsDeepCopies ensures the matrix owns its storage: mutating the
// input grid after construction does not leak into the matrix.
func TestFromRowsDeepCopies(t *testing.T) {
	grid := [][]int{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(grid)
	require.NoError(t, err)

	grid[0][0] = 99 // mutate caller memory after construction

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v) // matrix storage is unaffected
}

//----------------------------------------------------------------------------//
// Clone, Constraints, String
//----------------------------------------------------------------------------//

// TestCloneIndependence ensures Clone returns a deep copy sharing no storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}}, matrix.WithConstraints(digits()...))
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 9)) // mutate the clone only

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, orig) // original remains unchanged

	// The clone enforces the same constraint set.
	require.ErrorIs(t, clone.Set(0, 0, 10), matrix.ErrConstraintViolation)
}

// TestConstraintsAccessor verifies the accessor returns the registered set
// in order, as an independent copy.
func TestConstraintsAccessor(t *testing.T) {
	cs := digits()
	m, err := matrix.New(1, 1, matrix.WithConstraints(cs...))
	require.NoError(t, err)

	got := m.Constraints()
	require.Equal(t, cs, got)

	// Mutating the returned slice must not affect enforcement.
	got[1] = constraint.AtMost(1000)
	require.ErrorIs(t, m.Set(0, 0, 10), matrix.ErrConstraintViolation)
}

// TestStringOutput checks that String formats the matrix row by row.
func TestStringOutput(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

//----------------------------------------------------------------------------//
// Sentinel messages (public error-reporting contract)
//----------------------------------------------------------------------------//

// TestErrorMessages pins the fixed, human-readable sentinel descriptions.
func TestErrorMessages(t *testing.T) {
	require.EqualError(t, matrix.ErrConstraintViolation,
		"One or more elements of matrix violate constraints.")
	require.EqualError(t, matrix.ErrInvalidSize,
		"All rows in matrix must have the same size.")
	require.EqualError(t, matrix.ErrOutOfRange,
		"Index is out of range when requested row/column data.")
}
