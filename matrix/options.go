// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, options applied in order.
//   - Safe by construction: options fields are unexported; public entry
//     points consume ...Option and resolve them via gatherOptions.
package matrix

import "github.com/katalvlaran/constrix/constraint"

// DefaultFill is the cell value used by New when WithFill is not supplied.
const DefaultFill = 0

// Option mutates internal construction options. Safe to apply repeatedly;
// last-writer-wins semantics.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation.
type options struct {
	fill        int                     // initial cell value for New; DefaultFill
	constraints []constraint.Constraint // conjunctive constraint set; nil = unconstrained
}

// WithFill sets the initial value every cell receives in New.
// The fill value is validated against the constraint set before allocation.
// Complexity: O(1).
func WithFill(v int) Option {
	return func(o *options) { o.fill = v }
}

// WithConstraints registers the constraint set the matrix enforces for its
// whole lifetime. All constraints must hold conjunctively for every stored
// element; registration order does not change semantics (it only fixes the
// short-circuit order of validation). The slice is copied, so the caller may
// reuse or mutate its argument afterwards.
// Complexity: O(k) copy, k = len(cs).
func WithConstraints(cs ...constraint.Constraint) Option {
	// Copy defensively: the matrix must own its constraint set (immutability
	// of the set is a container invariant).
	owned := make([]constraint.Constraint, len(cs))
	copy(owned, cs)

	return func(o *options) { o.constraints = owned }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Stage 1: start from documented defaults.
// Stage 2: apply setters in order; last-writer-wins.
// Complexity: O(n) for n = len(user).
func gatherOptions(user ...Option) options {
	o := options{
		fill:        DefaultFill,
		constraints: nil,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
