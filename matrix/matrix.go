// SPDX-License-Identifier: MIT

// Package matrix — storage layout and constructors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j (one allocation per matrix).
//   - Guarantee safety at the public surface: constructors and accessors
//     return sentinel errors instead of panicking.
//   - Validate BEFORE allocating or committing, so no observable state ever
//     exists in violation of the constraint set.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/constrix/constraint"
)

// Formatting literals for String (no magic strings inline).
const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// Matrix is a fixed-shape, constraint-validated integer grid.
//   - rows, cols hold the shape (each >= 0; both fixed after construction).
//   - data is a flat buffer of length rows*cols in row-major order.
//   - constraints is the conjunctive predicate set, fixed for the lifetime
//     of the matrix and owned exclusively by it.
type Matrix struct {
	rows, cols  int                     // shape; zero-sized shapes are legal
	data        []int                   // contiguous row-major storage (len == rows*cols)
	constraints []constraint.Constraint // immutable after construction
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols matrix with every cell set to the fill value
// (DefaultFill unless WithFill is supplied).
// Stage 1 (Validate): reject negative shape; check the fill value against
// every constraint BEFORE allocating — no partial allocation on failure.
// Stage 2 (Prepare): allocate the flat buffer and fill it.
// Stage 3 (Finalize): return the fully-formed matrix.
//
// Errors:
//   - ErrInvalidSize: rows < 0 or cols < 0.
//   - ErrConstraintViolation: the fill value fails any constraint.
//
// Complexity: O(rows×cols) time and memory, plus O(k) fill validation.
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	// Validate shape; zero is a legal dimension (0×0, 0×N, N×0).
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidSize
	}
	// Resolve options against defaults.
	o := gatherOptions(opts...)
	// Validate the fill value before any storage exists.
	if err := checkValue(o.fill, o.constraints); err != nil {
		return nil, err
	}
	// Allocate the flat buffer and fill deterministically.
	data := make([]int, rows*cols)
	if o.fill != 0 { // make() already zero-fills; skip the loop for the default
		for i := range data {
			data[i] = o.fill
		}
	}

	return &Matrix{rows: rows, cols: cols, data: data, constraints: o.constraints}, nil
}

// FromRows creates a matrix from an externally supplied grid. The column
// count is inferred from the first row (an empty grid yields a 0×0 matrix).
// Stage 1 (Validate): every row must match the first row's length; every
// element must satisfy every constraint. Both checks complete BEFORE any
// storage is allocated.
// Stage 2 (Prepare): deep-copy the grid into a fresh flat buffer — the
// matrix never aliases caller memory.
// Stage 3 (Finalize): return the fully-formed matrix.
//
// Errors:
//   - ErrInvalidSize: any row's length differs from the first row's.
//   - ErrConstraintViolation: any element fails any constraint (rows are
//     scanned in order, elements within a row in order, first failure wins).
//
// Complexity: O(rows×cols·k) time, O(rows×cols) memory.
func FromRows(data [][]int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	// Infer shape from the input; an empty grid is a legal 0×0 matrix.
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	// Enforce rectangularity before anything else.
	for _, row := range data {
		if len(row) != cols {
			return nil, ErrInvalidSize
		}
	}
	// Validate every supplied element against the constraint set, exactly as
	// New validates its fill value. Short-circuits on the first violation.
	if err := checkGrid(data, o.constraints); err != nil {
		return nil, err
	}
	// Deep copy into row-major storage to guarantee exclusive ownership.
	flat := make([]int, rows*cols)
	for i, row := range data {
		copy(flat[i*cols:(i+1)*cols], row)
	}

	return &Matrix{rows: rows, cols: cols, data: flat, constraints: o.constraints}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.rows // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.cols // return stored column count
}

// Constraints returns a copy of the registered constraint set, in
// registration order. Mutating the returned slice does not affect the
// matrix (the set is fixed for the matrix lifetime).
// Complexity: O(k) copy.
func (m *Matrix) Constraints() []constraint.Constraint {
	out := make([]constraint.Constraint, len(m.constraints))
	copy(out, m.constraints)

	return out
}

// Clone returns a deep copy of the matrix. The copy shares no storage with
// the original and enforces the same constraint set.
// Complexity: O(rows×cols) time and memory.
func (m *Matrix) Clone() *Matrix {
	// Copy the backing buffer.
	data := make([]int, len(m.data))
	copy(data, m.data)

	// The constraint set is immutable, but copy it anyway so the two
	// matrices share no slice headers at all.
	cs := make([]constraint.Constraint, len(m.constraints))
	copy(cs, m.constraints)

	return &Matrix{rows: m.rows, cols: m.cols, data: data, constraints: cs}
}

// String implements fmt.Stringer for easy debugging: one bracketed line per
// row, values separated by commas.
// Complexity: O(rows×cols) for string construction.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ { // iterate over rows
		b.WriteString(fmtRowOpen)
		for j := 0; j < m.cols; j++ { // iterate over columns
			if j > 0 {
				b.WriteString(fmtSep)
			}
			// Compute the flat index directly; String is read-only.
			fmt.Fprintf(&b, "%d", m.data[i*m.cols+j])
		}
		b.WriteString(fmtRowClose)
	}

	return b.String()
}
