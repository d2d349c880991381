// Package matrix provides a fixed-shape, constraint-validated container of
// integers: a rectangular grid whose every element is guaranteed to satisfy
// every registered constraint after every successful operation.
//
// What:
//
//   - Matrix wraps a rows×cols integer grid (row-major flat storage) plus an
//     immutable set of constraint.Constraint predicates.
//   - Construction: New (shape + fill value) or FromRows (an existing grid).
//     Both validate against the constraint set before any state is committed.
//   - Mutation: whole-row and whole-column replacement (SetRow/SetColumn)
//     plus single-cell Set. Every mutation is validated in full BEFORE the
//     first write — a failing call leaves the matrix byte-for-byte intact.
//   - Reads (Row/Column/At) hand out independently owned copies; no view
//     ever aliases the backing storage.
//
// Invariants (hold after every public operation returns successfully):
//
//  1. The grid has exactly Rows() rows of exactly Cols() elements each.
//  2. Every stored element satisfies every registered constraint.
//  3. The constraint set is fixed for the lifetime of a Matrix.
//
// Options:
//
//   - WithFill(v): initial cell value for New (default 0).
//   - WithConstraints(cs...): the constraint set, conjunctive, order-neutral.
//
// Errors (sentinels, match via errors.Is; checked in this priority order):
//
//   - ErrOutOfRange: row/column index outside [0, Rows()) / [0, Cols()).
//   - ErrInvalidSize: ragged grid, wrong replacement length, negative shape.
//   - ErrConstraintViolation: an element fails at least one constraint.
//
// Complexity:
//
//   - At/Set: O(1) plus O(k) constraint checks on Set (k = constraint count).
//   - Row/SetRow: O(cols·k); Column/SetColumn: O(rows·k).
//   - New: O(rows×cols); FromRows: O(rows×cols·k).
//
// The container performs no locking; callers mutating a Matrix from several
// goroutines must serialize access externally.
package matrix
