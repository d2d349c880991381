// SPDX-License-Identifier: MIT

// Package matrix — safe accessors and whole-row/whole-column replacement.
//
// Purpose:
//   - Enforce half-open index bounds [0, rows) / [0, cols) on every access.
//   - Hand out only independently owned copies; no returned slice ever
//     aliases the backing storage.
//   - Validate replacements in full before the first write, so a failing
//     call leaves the matrix exactly as it was (no partial overwrite).
//
// Error priority (fixed, covered by tests):
//   - index bounds (ErrOutOfRange) -> length (ErrInvalidSize) ->
//     constraints (ErrConstraintViolation).
package matrix

// rowInBounds reports whether i lies in the half-open range [0, rows).
// Complexity: O(1).
func (m *Matrix) rowInBounds(i int) bool {
	return i >= 0 && i < m.rows
}

// colInBounds reports whether j lies in the half-open range [0, cols).
// Complexity: O(1).
func (m *Matrix) colInBounds(j int) bool {
	return j >= 0 && j < m.cols
}

// At retrieves the element at (i, j).
// Stage 1 (Validate): bounds check both indices.
// Stage 2 (Execute): read from the flat buffer.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (int, error) {
	if !m.rowInBounds(i) || !m.colInBounds(j) {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.cols+j], nil
}

// Set assigns value v at (i, j) after validating it against every
// registered constraint. On failure nothing is written.
//
// Errors: ErrOutOfRange, ErrConstraintViolation (in that order).
// Complexity: O(k) constraint checks, k = constraint count.
func (m *Matrix) Set(i, j, v int) error {
	if !m.rowInBounds(i) || !m.colInBounds(j) {
		return ErrOutOfRange
	}
	if err := checkValue(v, m.constraints); err != nil {
		return err
	}
	m.data[i*m.cols+j] = v

	return nil
}

// Row returns an independently owned copy of row i, in column order.
// Mutating the returned slice does not affect the matrix.
//
// Errors: ErrOutOfRange.
// Complexity: O(cols) time and memory.
func (m *Matrix) Row(i int) ([]int, error) {
	if !m.rowInBounds(i) {
		return nil, ErrOutOfRange
	}
	// Copy the row span out of the flat buffer.
	out := make([]int, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])

	return out, nil
}

// SetRow replaces row i with the supplied values.
// Stage 1 (Validate): index bounds, then exact length, then every element
// against every constraint — all BEFORE the first write.
// Stage 2 (Commit): copy the values into the row span atomically; the old
// row is discarded only after validation passed.
//
// Errors: ErrOutOfRange, ErrInvalidSize, ErrConstraintViolation
// (checked in that priority order).
// Complexity: O(cols·k) time.
func (m *Matrix) SetRow(i int, row []int) error {
	if !m.rowInBounds(i) {
		return ErrOutOfRange
	}
	if len(row) != m.cols {
		return ErrInvalidSize
	}
	if err := checkValues(row, m.constraints); err != nil {
		return err
	}
	// All checks passed: commit. copy() takes values, not the caller's
	// slice header, so later caller-side mutation cannot reach the matrix.
	copy(m.data[i*m.cols:(i+1)*m.cols], row)

	return nil
}

// Column returns an independently owned copy of column j, one element per
// row, in row order. Never a reference into transient storage.
//
// Errors: ErrOutOfRange.
// Complexity: O(rows) time and memory.
func (m *Matrix) Column(j int) ([]int, error) {
	if !m.colInBounds(j) {
		return nil, ErrOutOfRange
	}
	// Gather the column with a strided scan over the flat buffer.
	out := make([]int, m.rows)
	for i := 0; i < m.rows; i++ { // fixed row order
		out[i] = m.data[i*m.cols+j]
	}

	return out, nil
}

// SetColumn replaces column j with the supplied values, one per row.
// Stage 1 (Validate): index bounds, then exact length, then every element
// against every constraint — all BEFORE the first write.
// Stage 2 (Commit): write element [i][j] for each row in order.
//
// Errors: ErrOutOfRange, ErrInvalidSize, ErrConstraintViolation
// (checked in that priority order).
// Complexity: O(rows·k) time.
func (m *Matrix) SetColumn(j int, col []int) error {
	if !m.colInBounds(j) {
		return ErrOutOfRange
	}
	if len(col) != m.rows {
		return ErrInvalidSize
	}
	if err := checkValues(col, m.constraints); err != nil {
		return err
	}
	// All checks passed: commit with a strided write, row by row.
	for i, v := range col { // fixed row order
		m.data[i*m.cols+j] = v
	}

	return nil
}
