// Package grid defines core types and sentinel errors for the search area.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates construction with rows ≤ 0 or cols ≤ 0.
	ErrInvalidDimensions = errors.New("grid: rows and cols must be positive")

	// ErrOutOfBounds indicates a Point outside the grid boundaries.
	ErrOutOfBounds = errors.New("grid: point out of bounds")

	// ErrInvalidAssignment indicates a role assignment that would violate a
	// grid invariant: Barrier onto the current Start or End cell, Start onto
	// the End cell, or End onto the Start cell.
	ErrInvalidAssignment = errors.New("grid: role assignment violates invariant")
)

// CellRole is the semantic category of a grid cell.
type CellRole int

const (
	// Empty marks a cell with no assigned role; searches may traverse it.
	Empty CellRole = iota

	// Start marks the (unique) cell a search departs from.
	Start

	// End marks the (unique) cell a search targets.
	End

	// Barrier marks an impassable cell, excluded from expansion.
	Barrier
)

// String returns a human-readable role name.
func (r CellRole) String() string {
	switch r {
	case Empty:
		return "Empty"
	case Start:
		return "Start"
	case End:
		return "End"
	case Barrier:
		return "Barrier"
	default:
		return fmt.Sprintf("CellRole(%d)", int(r))
	}
}

// Point addresses a cell by row and column.
// It is valid for a given grid iff 0 ≤ Row < rows and 0 ≤ Col < cols.
type Point struct {
	Row, Col int
}

// String renders the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// offsets8Axial lists the 8-neighborhood in breadth-first expansion order:
// up, down, left, right, then the four diagonals
// (up-left, down-left, up-right, down-right).
var offsets8Axial = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// offsets8Raster lists the same 8 neighbors in row-scan order:
// up-left, up, up-right, left, right, down-left, down, down-right.
var offsets8Raster = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
