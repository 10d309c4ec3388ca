package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// aStarRunner holds the mutable state for a single A* execution.
type aStarRunner struct {
	g     *grid.Grid
	opts  Options
	end   grid.Point
	nodes *nodeTable
	pq    openPQ
	res   *Result
}

// AStar runs the A* priority relaxation search on g from start to end,
// applying any number of functional Options.
//
// Cost model: every move — orthogonal or diagonal — costs exactly 1,
// matching the octile distance heuristic
//
//	h = (dx + dy) + (√2 − 2)·min(dx, dy)
//
// where dx = |row − endRow| and dy = |col − endCol|.
//
// This is a plain priority-queue relaxation search without a closed set:
// a neighbor is re-queued whenever its tentative cost strictly improves,
// stale higher-f entries linger in the heap, and a cell popped twice is
// simply re-expanded (its cost and parent are already final, so the
// re-expansion relaxes nothing). Correctness follows from the monotonic f
// ordering; the visible effect is that Result.Visited may report a cell
// more than once. The search stops the moment the end cell is popped.
//
// Equal-f heap ties break by Point lexicographic order (row, then col),
// keeping the visit sequence fully deterministic.
//
// Returns ErrNilGrid or ErrMissingEndpoint for invalid input, or the
// context's error on cancellation. An unreachable end is not an error.
func AStar(g *grid.Grid, start, end grid.Point, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	r := &aStarRunner{
		g:     g,
		opts:  o,
		end:   end,
		nodes: newNodeTable(g),
		pq:    make(openPQ, 0, g.Rows()*g.Cols()),
		res:   &Result{Visited: []grid.Point{}},
	}

	// Seed: cost of the start is 0 (all others are +Inf); relaxing the
	// start pushes the first frontier. The start itself is never pushed,
	// so it is neither popped nor reported.
	heap.Init(&r.pq)
	r.nodes.setCost(start, 0)
	r.relax(start)

	if err := r.loop(); err != nil {
		return nil, err
	}

	return r.finish(), nil
}

// loop pops cells in ascending f until the end surfaces, the heap drains,
// or the context is cancelled.
func (r *aStarRunner) loop() error {
	for r.pq.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*openItem)
		if item.cell == r.end {
			return nil // early exit: the end was popped
		}
		r.visit(item.cell)
		r.relax(item.cell)
	}

	return nil
}

// visit records the popped cell in expansion order and notifies the sink.
// Stale duplicates pass through here too, by design.
func (r *aStarRunner) visit(p grid.Point) {
	r.res.Visited = append(r.res.Visited, p)
	if r.opts.Sink != nil {
		r.opts.Sink.OnVisited(p)
	}
}

// relax attempts to improve each non-Barrier neighbor of p, iterating in
// the fixed NeighborsRaster order. A neighbor is updated and pushed only
// when the tentative cost (cost(p)+1) is strictly less than its recorded
// cost; the strict inequality keeps finalized cells from being re-queued.
func (r *aStarRunner) relax(p grid.Point) {
	newCost := r.nodes.costAt(p) + 1
	for _, nbr := range r.g.NeighborsRaster(p) {
		role, _ := r.g.Role(nbr) // nbr is in bounds by construction
		if role == grid.Barrier {
			continue
		}
		if newCost >= r.nodes.costAt(nbr) {
			continue
		}
		r.nodes.setCost(nbr, newCost)
		r.nodes.setParent(nbr, p)
		heap.Push(&r.pq, &openItem{
			cell: nbr,
			f:    newCost + r.heuristic(nbr),
		})
	}
}

// heuristic is the octile (diagonal) distance from p to the end cell.
// It is admissible for 8-connected movement under the unit cost model.
func (r *aStarRunner) heuristic(p grid.Point) float64 {
	dx := math.Abs(float64(p.Row - r.end.Row))
	dy := math.Abs(float64(p.Col - r.end.Col))

	return (dx + dy) + (math.Sqrt2-2)*math.Min(dx, dy)
}

// finish extracts the path, emits the terminal sink event, and seals the
// Result. The end is reachable iff it ever received a parent.
func (r *aStarRunner) finish() *Result {
	_, r.res.Found = r.nodes.parentOf(r.end)
	r.res.Path = r.nodes.pathTo(r.end)
	if r.opts.Sink != nil {
		if r.res.Found {
			r.opts.Sink.OnPathFound(r.res.Path)
		} else {
			r.opts.Sink.OnPathNotFound()
		}
	}

	return r.res
}

// openItem pairs a cell with its f = g + h priority.
type openItem struct {
	cell grid.Point
	f    float64
}

// openPQ is a min-heap of *openItem ordered by f ascending, with equal-f
// ties broken by Point lexicographic order (row, then col). Stale entries
// are never removed eagerly (“lazy decrease-key”): re-relaxation pushes a
// fresh item and the outdated one is re-expanded harmlessly when popped.
type openPQ []*openItem

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by f, then row, then col.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].cell.Row != pq[j].cell.Row {
		return pq[i].cell.Row < pq[j].cell.Row
	}

	return pq[i].cell.Col < pq[j].cell.Col
}

// Swap swaps two elements in the heap.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *openItem.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
