// Package gridpath is the engine of an interactive grid pathfinding
// visualizer: place a start, an end, and barriers on a bounded board,
// then run a breadth-first or A* search and replay its progress.
//
// 🚀 What is gridpath?
//
//	A small, deterministic library that brings together:
//		• Board primitives: a fixed rows×cols grid of cell roles with
//		  invariant-preserving edits (one Start, one End, no overlap)
//		• Two searches: BFS wave expansion and A* priority relaxation
//		  with the octile distance heuristic
//		• A staged selection workflow: pick start → pick end → edit
//		  barriers → choose options → run → done, reset from anywhere
//		• A replayable event stream so any front-end can animate the
//		  explored area and the final path at its own pace
//
// ✨ Why choose gridpath?
//
//   - Deterministic to the cell — fixed neighbor orders, documented
//     priority tie-breaks, identical output on identical input
//   - Presentation-free — no widget toolkit, no colors; roles in,
//     events out, and the collaborator decides what they look like
//   - Pure Go runtime — no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	grid/    — the board: cell roles, bounds, neighbor orders, bulk clears
//	search/  — BFS, A*, path reconstruction, sinks and event replay
//	session/ — the staged selection state machine over a grid
//
// Quick ASCII example:
//
//	S . . .        S * . .
//	. # . .   →    * # . .
//	. # . .        * # o .
//	. . . E        . o . E
//
//	a 4×4 board before and after a run: * marks explored cells,
//	o the reconstructed path between the endpoints.
//
// Dive into examples/ for runnable scenarios, including a PNG frame
// renderer built purely on the public event stream.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
