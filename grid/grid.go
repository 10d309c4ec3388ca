package grid

import "fmt"

// Grid is a fixed-size rows×cols board of cell roles.
// Dimensions are set at construction and never change; roles are mutated
// through SetRole, which maintains the Start/End uniqueness invariants.
// Grid is not safe for concurrent mutation; the interaction model is
// single-session, single-search (see package session).
type Grid struct {
	rows, cols int
	cells      []CellRole // row-major: index = Row*cols + Col

	start, end       Point
	hasStart, hasEnd bool
}

// New constructs a Grid with all cells Empty.
// Returns ErrInvalidDimensions if rows ≤ 0 or cols ≤ 0.
// Complexity: O(rows×cols).
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, cols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellRole, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// index maps p to its row-major position: Row*cols + Col.
func (g *Grid) index(p Point) int {
	return p.Row*g.cols + p.Col
}

// Start returns the current Start cell, if one is set.
func (g *Grid) Start() (Point, bool) { return g.start, g.hasStart }

// End returns the current End cell, if one is set.
func (g *Grid) End() (Point, bool) { return g.end, g.hasEnd }

// Role returns the role of the cell at p.
// Returns ErrOutOfBounds if p is invalid.
func (g *Grid) Role(p Point) (CellRole, error) {
	if !g.Contains(p) {
		return Empty, fmt.Errorf("%w: %v on %d×%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}

	return g.cells[g.index(p)], nil
}

// SetRole assigns role to the cell at p, enforcing grid invariants.
//
// Policy (fail-fast): assignments that would break an invariant return
// ErrInvalidAssignment rather than silently doing nothing —
//
//   - Barrier onto the current Start or End cell;
//   - Start onto the current End cell, or End onto the current Start cell.
//
// Assigning a new Start (or End) silently clears the previous holder of
// that role back to Empty, so at most one cell ever holds each.
// Assigning Empty to the current Start/End cell unsets that endpoint.
// Returns ErrOutOfBounds if p is invalid.
func (g *Grid) SetRole(p Point, role CellRole) error {
	if !g.Contains(p) {
		return fmt.Errorf("%w: %v on %d×%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}

	switch role {
	case Start:
		if g.hasEnd && p == g.end {
			return fmt.Errorf("%w: cannot set Start on End cell %v", ErrInvalidAssignment, p)
		}
		if g.hasStart && p != g.start {
			g.cells[g.index(g.start)] = Empty
		}
		g.start, g.hasStart = p, true

	case End:
		if g.hasStart && p == g.start {
			return fmt.Errorf("%w: cannot set End on Start cell %v", ErrInvalidAssignment, p)
		}
		if g.hasEnd && p != g.end {
			g.cells[g.index(g.end)] = Empty
		}
		g.end, g.hasEnd = p, true

	case Barrier:
		if (g.hasStart && p == g.start) || (g.hasEnd && p == g.end) {
			return fmt.Errorf("%w: cannot set Barrier on endpoint cell %v", ErrInvalidAssignment, p)
		}

	case Empty:
		if g.hasStart && p == g.start {
			g.hasStart = false
		}
		if g.hasEnd && p == g.end {
			g.hasEnd = false
		}
	}
	g.cells[g.index(p)] = role

	return nil
}

// Neighbors8 returns the in-bounds 8-neighborhood of p in breadth-first
// expansion order: up, down, left, right, up-left, down-left, up-right,
// down-right. The order is fixed; it decides which neighbor becomes a
// cell's parent when several frontiers arrive in the same wave.
// Out-of-bounds p yields an empty slice.
// Complexity: O(1).
func (g *Grid) Neighbors8(p Point) []Point {
	return g.neighbors(p, offsets8Axial)
}

// NeighborsRaster returns the same in-bounds 8-neighborhood of p in
// row-scan order: up-left, up, up-right, left, right, down-left, down,
// down-right. This is the relaxation order of the heuristic search.
// Complexity: O(1).
func (g *Grid) NeighborsRaster(p Point) []Point {
	return g.neighbors(p, offsets8Raster)
}

func (g *Grid) neighbors(p Point, offsets [8][2]int) []Point {
	out := make([]Point, 0, 8)
	for _, d := range offsets {
		n := Point{Row: p.Row + d[0], Col: p.Col + d[1]}
		if g.Contains(n) {
			out = append(out, n)
		}
	}

	return out
}

// ClearRoles resets every non-Empty cell matched by pred back to Empty and
// returns the number of cells cleared. Clearing the Start or End cell
// unsets that endpoint. A nil pred matches every cell.
// Complexity: O(rows×cols).
func (g *Grid) ClearRoles(pred func(Point, CellRole) bool) int {
	cleared := 0
	var p Point
	for p.Row = 0; p.Row < g.rows; p.Row++ {
		for p.Col = 0; p.Col < g.cols; p.Col++ {
			role := g.cells[g.index(p)]
			if role == Empty {
				continue
			}
			if pred != nil && !pred(p, role) {
				continue
			}
			if g.hasStart && p == g.start {
				g.hasStart = false
			}
			if g.hasEnd && p == g.end {
				g.hasEnd = false
			}
			g.cells[g.index(p)] = Empty
			cleared++
		}
	}

	return cleared
}
