// Package search implements the two grid search algorithms of gridpath —
// breadth-first search and A* — over a grid.Grid snapshot, together with
// shared path reconstruction and a replayable progress-event stream.
//
// What:
//
//   - BFS explores the 8-connected grid in waves, excluding Barrier cells,
//     and stops the moment the end cell is dequeued.
//   - AStar runs a priority relaxation search (Dijkstra-with-heuristic,
//     unit step cost, octile distance heuristic, no closed set) and stops
//     the moment the end cell is popped.
//   - Both return a Result: the visited cells in expansion order, the
//     reconstructed path (exclusive of both endpoints), and a Found flag.
//   - ProgressSink receives visited/path notifications during the run;
//     a nil sink runs silently at full speed. Result.Events and
//     Result.Replay expose the same notifications as a precomputed ordered
//     stream, so a collaborator can pace animated consumption after the
//     synchronous search has already completed.
//
// Why:
//
//   - Interactive visualizers need the exact expansion order, not just the
//     answer; both algorithms are therefore fully deterministic, down to
//     fixed neighbor orders and a documented priority tie-break.
//
// Determinism:
//
//   - BFS expands neighbors in grid.Neighbors8 order (up, down, left,
//     right, then diagonals).
//   - AStar relaxes neighbors in grid.NeighborsRaster order and breaks
//     equal-f ties by Point lexicographic order (row, then col).
//   - Identical Grid/start/end inputs produce identical visited sequences
//     and identical paths on every run.
//
// Complexity (V = rows×cols cells, 8 edges per cell):
//
//   - BFS:   O(V) time, O(V) memory.
//   - AStar: O(V log V) time, O(V) memory (lazy decrease-key heap).
//
// Errors:
//
//   - ErrNilGrid:          a nil *grid.Grid was supplied.
//   - ErrMissingEndpoint:  start or end is out of bounds, or start == end.
//   - ErrUnknownKind:      Run was given an unrecognized Kind.
//
// An unreachable end is a normal outcome, not an error: the Result carries
// Found == false and the sink receives OnPathNotFound.
package search
