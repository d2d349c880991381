// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for constraint validation.
//  - Keep constructors and mutators minimal by delegating checks here.
//  - Return plain sentinel errors (no wrapping) so errors.Is matches directly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Validation short-circuits: the first failing element/constraint pair
//    stops the scan. Constraints run in registration order, elements in
//    index order, rows in row order.

package matrix

import "github.com/katalvlaran/constrix/constraint"

// checkValue validates a single candidate against every constraint in
// registration order; the first failing constraint returns
// ErrConstraintViolation immediately.
// Complexity: O(k), k = len(cs). Space: O(1).
func checkValue(v int, cs []constraint.Constraint) error {
	for _, c := range cs { // fixed registration order
		if !c.Check(v) {
			return ErrConstraintViolation // short-circuit on first failure
		}
	}

	return nil
}

// checkValues validates a sequence element by element in index order.
// Used by SetRow/SetColumn before any write is committed.
// Complexity: O(n·k). Space: O(1).
func checkValues(vs []int, cs []constraint.Constraint) error {
	if len(cs) == 0 {
		return nil // unconstrained matrix: nothing to scan
	}
	for _, v := range vs { // fixed index order
		if err := checkValue(v, cs); err != nil {
			return err
		}
	}

	return nil
}

// checkGrid validates a whole grid: rows in order, elements within each row
// in order, same short-circuit rule. Used by FromRows before allocation.
// Complexity: O(rows×cols·k). Space: O(1).
func checkGrid(grid [][]int, cs []constraint.Constraint) error {
	if len(cs) == 0 {
		return nil
	}
	for _, row := range grid { // fixed row order
		if err := checkValues(row, cs); err != nil {
			return err
		}
	}

	return nil
}
