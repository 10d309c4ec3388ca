package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Run dispatches to the algorithm selected by kind.
// Returns ErrUnknownKind for unrecognized kinds.
func Run(g *grid.Grid, start, end grid.Point, kind Kind, opts ...Option) (*Result, error) {
	switch kind {
	case KindBFS:
		return BFS(g, start, end, opts...)
	case KindAStar:
		return AStar(g, start, end, opts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// validate applies the shared input contract of both algorithms: a
// non-nil grid and two distinct in-bounds endpoints.
func validate(g *grid.Grid, start, end grid.Point) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.Contains(start) || !g.Contains(end) {
		return fmt.Errorf("%w: start=%v end=%v on %d×%d grid",
			ErrMissingEndpoint, start, end, g.Rows(), g.Cols())
	}
	if start == end {
		return fmt.Errorf("%w: start equals end at %v", ErrMissingEndpoint, start)
	}

	return nil
}
