// Package session drives the staged interactive workflow of gridpath:
// pick a start cell, pick an end cell, edit barriers, choose how to
// search, run, done — with a forgiving reset available from anywhere.
//
// What:
//
//   - Session wraps a grid.Grid and a Stage cursor, validating every
//     transition of the workflow:
//
//     PickingStart ─advance→ PickingEnd ─advance→ EditingBarriers
//     ─advance→ ChoosingOptions ─run→ Running → Done
//     (any stage) ─reset→ PickingStart
//
//   - Pick is stage-sensitive: it replaces the pending endpoint while
//     picking, toggles Barrier cells while editing, and is a no-op
//     elsewhere.
//   - Run hands the grid and endpoints to the configured algorithm
//     (search.KindBFS by default) and relays progress to a caller-supplied
//     sink; when Visible is off, visited events are suppressed but the
//     final path events still flow (a silent full-speed search).
//
// Why:
//
//   - Interactive front-ends want a forgiving state machine: advancing
//     without a precondition, picking at the wrong moment, or re-picking
//     the other endpoint's cell are quiet no-ops, never errors — the same
//     tolerance a user expects from clicking around a UI.
//
// Defaults (overridable via functional options):
//
//   - Dimensions: DefaultRows×DefaultCols (50×50).
//   - Kind:       search.KindBFS.
//   - Visible:    false.
//
// Errors:
//
//   - ErrNotRunnable: Run invoked outside the ChoosingOptions stage.
//   - grid.ErrInvalidDimensions / grid.ErrOutOfBounds propagate from the
//     underlying grid where a coordinate is genuinely malformed.
package session
