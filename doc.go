// Package constrix is a small, self-validating integer matrix library:
// a fixed-shape 2D container whose elements are continuously checked
// against caller-supplied comparison constraints.
//
// 🚀 What is constrix?
//
//	A pure-Go value-type container that keeps two invariants correct and
//	cheap to check at all times:
//		• Rectangular shape — every row has exactly Cols() elements
//		• Constraint satisfaction — every stored element passes every
//		  registered constraint, on construction and on every mutation
//
// ✨ Why choose constrix?
//
//   - Fail-fast guarantees — every mutation is validated before commit;
//     a failing operation leaves the matrix exactly as it was
//   - Minimal API — construct, read/replace whole rows and columns, done
//   - Pure Go — no cgo, no hidden deps
//   - Deterministic — fixed loop orders, sentinel errors, no global state
//
// Everything is organized under two subpackages, strictly layered:
//
//	constraint/ — comparison predicates (Equal, NotEqual, Greater, …)
//	matrix/     — the constrained container (depends only on constraint/)
//
// Quick ASCII example:
//
//	constraints: ≥0 and ≤9
//
//	    [5, 5]        SetRow(0, [1,10]) → ErrConstraintViolation (10 > 9)
//	    [5, 5]        Row(0) still returns [5, 5]
//
// The container is not safe for concurrent mutation; callers sharing a
// Matrix across goroutines must serialize access externally.
//
//	go get github.com/katalvlaran/constrix/matrix
package constrix
