// Package constraint provides immutable comparison predicates for integer
// values: a closed set of six comparison kinds evaluated against a fixed
// reference value.
//
// What:
//
//   - Kind enumerates the comparison kinds: Equal, NotEqual, Greater,
//     GreaterOrEqual, Less, LessOrEqual. The set is closed; dispatch is an
//     exhaustive switch, never a runtime lookup table.
//   - Constraint pairs a Kind with a reference value and answers one
//     question: does a candidate integer satisfy "candidate <kind> ref"?
//
// Why:
//
//   - Validation rules for containers (see constrix/matrix): every stored
//     element must satisfy every registered Constraint.
//   - Range guards: combine AtLeast(0) with AtMost(9) for digits, etc.
//
// Semantics:
//
//   - Check is a pure function of (kind, ref, candidate); no state, no
//     side effects, standard integer comparison semantics.
//   - Constraints are immutable values: construct once, copy freely.
//   - Check cannot fail. An unrecognized Kind is a programmer error and
//     panics; it is unreachable through the package constructors.
//
// Complexity:
//
//   - Check: O(1) time, O(1) memory.
package constraint
