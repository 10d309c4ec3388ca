package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// nodeTable is the per-run bookkeeping for every cell: a visited flag, an
// optional parent link, and (for AStar) the best-known cost. It is built
// fresh for each invocation and discarded after path extraction, so the
// Grid itself is never mutated during a search.
type nodeTable struct {
	cols      int
	visited   []bool
	parent    []grid.Point
	hasParent []bool
	cost      []float64
}

// newNodeTable allocates a table for g with all cells unvisited,
// parentless, and at infinite cost.
func newNodeTable(g *grid.Grid) *nodeTable {
	n := g.Rows() * g.Cols()
	t := &nodeTable{
		cols:      g.Cols(),
		visited:   make([]bool, n),
		parent:    make([]grid.Point, n),
		hasParent: make([]bool, n),
		cost:      make([]float64, n),
	}
	for i := range t.cost {
		t.cost[i] = math.Inf(1)
	}

	return t
}

func (t *nodeTable) index(p grid.Point) int {
	return p.Row*t.cols + p.Col
}

func (t *nodeTable) isVisited(p grid.Point) bool {
	return t.visited[t.index(p)]
}

func (t *nodeTable) markVisited(p grid.Point) {
	t.visited[t.index(p)] = true
}

func (t *nodeTable) setParent(child, parent grid.Point) {
	i := t.index(child)
	t.parent[i] = parent
	t.hasParent[i] = true
}

func (t *nodeTable) parentOf(p grid.Point) (grid.Point, bool) {
	i := t.index(p)

	return t.parent[i], t.hasParent[i]
}

func (t *nodeTable) costAt(p grid.Point) float64 {
	return t.cost[t.index(p)]
}

func (t *nodeTable) setCost(p grid.Point, c float64) {
	t.cost[t.index(p)] = c
}

// pathTo reconstructs the start→end path from the parent links, excluding
// both endpoints: it walks parents backwards from end until a parentless
// cell (the start, which never receives a parent), drops the trailing
// start entry, and reverses. An end with no parent yields an empty path
// (unreachable, or found==false); an end whose parent is the start itself
// also yields an empty path (adjacent endpoints).
func (t *nodeTable) pathTo(end grid.Point) []grid.Point {
	path := []grid.Point{}
	cur, ok := t.parentOf(end)
	for ok {
		path = append(path, cur)
		cur, ok = t.parentOf(cur)
	}
	if len(path) > 0 {
		// the last collected cell is the start; the path excludes it
		path = path[:len(path)-1]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
