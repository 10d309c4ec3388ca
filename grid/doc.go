// Package grid models the bounded 2D search area of an interactive
// pathfinding session: a fixed rows×cols board of cells, each holding a
// semantic role (Empty, Start, End or Barrier).
//
// What:
//
//   - Grid owns the role array and enforces role invariants:
//     at most one Start, at most one End, Start ≠ End, and neither
//     Start nor End may be overwritten by a Barrier.
//   - Point addresses a cell by (Row, Col); Contains performs the bounds check.
//   - Neighbors8 and NeighborsRaster enumerate the up-to-8 in-bounds
//     neighbors of a cell in two distinct, fixed orders (see below).
//   - ClearRoles bulk-resets matching cells back to Empty.
//
// Why:
//
//   - Search algorithms need a stable obstacle snapshot plus deterministic
//     neighbor ordering for reproducible visit sequences.
//   - Interactive selection needs cheap, invariant-preserving role edits.
//
// Neighbor orders:
//
//   - Neighbors8: up, down, left, right, up-left, down-left, up-right,
//     down-right. This is the breadth-first expansion order and therefore
//     the tie-break order when several frontiers reach a cell in the same
//     wave.
//   - NeighborsRaster: up-left, up, up-right, left, right, down-left, down,
//     down-right. This is the relaxation order used by the heuristic search.
//
// Complexity:
//
//   - New:            O(rows×cols) time and memory.
//   - Role, SetRole:  O(1).
//   - Neighbors8, NeighborsRaster: O(1) (at most 8 candidates).
//   - ClearRoles:     O(rows×cols).
//
// Errors:
//
//   - ErrInvalidDimensions: construction with non-positive rows or cols.
//   - ErrOutOfBounds:       a Point outside the grid.
//   - ErrInvalidAssignment: a role assignment that would break an invariant
//     (Barrier onto Start/End, Start onto End, End onto Start).
package grid
