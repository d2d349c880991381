// SPDX-License-Identifier: MIT

// Package constraint — comparison kinds and the Constraint value type.
//
// Purpose:
//   - Keep the kind set closed and the dispatch exhaustive (switch, not map).
//   - Guarantee immutability: both fields are unexported; there are no setters.
//   - Panic only on programmer error (an out-of-range Kind forged by a cast);
//     user input can never make Check fail.
package constraint

import "fmt"

// Kind identifies one of the six supported comparison kinds.
// The set is closed: values outside [Equal, LessOrEqual] are invalid and
// cause Check to panic. Use the package constructors to stay in range.
type Kind int

const (
	// Equal accepts candidates equal to the reference value.
	Equal Kind = iota
	// NotEqual accepts candidates different from the reference value.
	NotEqual
	// Greater accepts candidates strictly greater than the reference value.
	Greater
	// GreaterOrEqual accepts candidates greater than or equal to the reference value.
	GreaterOrEqual
	// Less accepts candidates strictly less than the reference value.
	Less
	// LessOrEqual accepts candidates less than or equal to the reference value.
	LessOrEqual
)

// kindSymbols maps each Kind to its conventional operator spelling.
// Used only for diagnostics (String); evaluation never touches it.
var kindSymbols = [...]string{"==", "!=", ">", ">=", "<", "<="}

// panicUnknownKind is the stable message used when an invalid Kind reaches
// evaluation or formatting. Kept in a constant to avoid magic strings.
const panicUnknownKind = "constraint: unknown comparison kind"

// String returns the operator spelling of k (e.g. ">=").
// Panics on an out-of-range Kind (programmer error).
// Complexity: O(1).
func (k Kind) String() string {
	if k < Equal || k > LessOrEqual {
		panic(panicUnknownKind)
	}

	return kindSymbols[k]
}

// Constraint is an immutable predicate: a comparison kind plus a fixed
// reference value. A candidate integer v satisfies the constraint iff
// "v <kind> ref" holds under standard integer comparison semantics.
type Constraint struct {
	kind Kind // one of the six closed comparison kinds
	ref  int  // reference value on the right-hand side of the comparison
}

// New builds a Constraint from an explicit kind and reference value.
// Stage 1 (Validate): reject out-of-range kinds by panicking (programmer error).
// Stage 2 (Finalize): return the immutable value.
// Complexity: O(1).
func New(kind Kind, ref int) Constraint {
	// Validate the kind eagerly so a forged Kind fails at construction,
	// not later inside a container's validation loop.
	if kind < Equal || kind > LessOrEqual {
		panic(panicUnknownKind)
	}

	return Constraint{kind: kind, ref: ref}
}

// EqualTo returns the constraint "candidate == ref".
func EqualTo(ref int) Constraint { return Constraint{kind: Equal, ref: ref} }

// NotEqualTo returns the constraint "candidate != ref".
func NotEqualTo(ref int) Constraint { return Constraint{kind: NotEqual, ref: ref} }

// GreaterThan returns the constraint "candidate > ref".
func GreaterThan(ref int) Constraint { return Constraint{kind: Greater, ref: ref} }

// AtLeast returns the constraint "candidate >= ref".
func AtLeast(ref int) Constraint { return Constraint{kind: GreaterOrEqual, ref: ref} }

// LessThan returns the constraint "candidate < ref".
func LessThan(ref int) Constraint { return Constraint{kind: Less, ref: ref} }

// AtMost returns the constraint "candidate <= ref".
func AtMost(ref int) Constraint { return Constraint{kind: LessOrEqual, ref: ref} }

// Kind returns the comparison kind of c.
// Complexity: O(1).
func (c Constraint) Kind() Kind { return c.kind }

// Ref returns the reference value of c.
// Complexity: O(1).
func (c Constraint) Ref() int { return c.ref }

// Check reports whether candidate satisfies the constraint.
// Stage 1 (Dispatch): exhaustive switch over the closed Kind set.
// Stage 2 (Finalize): return the comparison result.
// Pure function; cannot fail. Panics only on an out-of-range Kind, which is
// unreachable through the package constructors.
// Complexity: O(1).
func (c Constraint) Check(candidate int) bool {
	switch c.kind {
	case Equal:
		return candidate == c.ref
	case NotEqual:
		return candidate != c.ref
	case Greater:
		return candidate > c.ref
	case GreaterOrEqual:
		return candidate >= c.ref
	case Less:
		return candidate < c.ref
	case LessOrEqual:
		return candidate <= c.ref
	default:
		panic(panicUnknownKind)
	}
}

// String returns a human-readable form such as ">= 0".
// Implements fmt.Stringer for easy debugging.
// Complexity: O(1).
func (c Constraint) String() string {
	return fmt.Sprintf("%s %d", c.kind, c.ref)
}
