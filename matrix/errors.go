// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors (forged constraint kinds).

package matrix

import "errors"

// NOTE ON MESSAGES
// ----------------
// Each sentinel carries a fixed, human-readable description. The texts are
// part of the public error-reporting contract and must remain stable.
//
// ERROR PRIORITY (enforced in SetRow/SetColumn, covered by tests):
// index bounds -> length mismatch -> constraint violations.

var (
	// ErrConstraintViolation is returned when a value fails at least one of
	// the registered constraints: on construction fill, on grid ingestion,
	// and on row/column replacement. Validation short-circuits on the first
	// failing element/constraint pair.
	ErrConstraintViolation = errors.New("One or more elements of matrix violate constraints.")

	// ErrInvalidSize is returned when a supplied row, column, or grid has the
	// wrong length: ragged construction input, a replacement row whose length
	// differs from Cols(), or a replacement column whose length differs from
	// Rows(). Negative requested dimensions fall in the same family.
	ErrInvalidSize = errors.New("All rows in matrix must have the same size.")

	// ErrOutOfRange is returned when a row index falls outside [0, Rows())
	// or a column index falls outside [0, Cols()).
	ErrOutOfRange = errors.New("Index is out of range when requested row/column data.")
)
