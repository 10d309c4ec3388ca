package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// bfsWalker encapsulates mutable BFS state for a single run.
type bfsWalker struct {
	g     *grid.Grid
	opts  Options
	end   grid.Point
	queue []grid.Point
	nodes *nodeTable
	res   *Result
}

// BFS runs breadth-first search on g from start to end, applying any
// number of functional Options.
//
// The start cell is seeded as visited and its neighbors enqueued; the main
// loop then dequeues one cell at a time, stopping the moment the end cell
// is dequeued (early exit) rather than when the queue drains. Every
// dequeued non-end cell is reported as visited — to the sink and in
// Result.Visited — before its unvisited, non-Barrier neighbors are
// enqueued in grid.Neighbors8 order with the dequeued cell as parent.
//
// Returns ErrNilGrid or ErrMissingEndpoint for invalid input, or the
// context's error on cancellation. An unreachable end is not an error:
// Found is false and the sink receives OnPathNotFound.
func BFS(g *grid.Grid, start, end grid.Point, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	w := &bfsWalker{
		g:     g,
		opts:  o,
		end:   end,
		queue: make([]grid.Point, 0, g.Rows()*g.Cols()),
		nodes: newNodeTable(g),
		res:   &Result{Visited: []grid.Point{}},
	}

	// Seed: the start is visited but never enqueued, so it is neither
	// dequeued nor reported; its neighbors form the first frontier.
	w.nodes.markVisited(start)
	w.enqueueNeighbors(start)

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.finish(), nil
}

// loop processes the queue until the end cell surfaces, the queue drains,
// or the context is cancelled.
func (w *bfsWalker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		p := w.queue[0]
		w.queue = w.queue[1:]
		if p == w.end {
			return nil // early exit: the end was dequeued
		}
		w.visit(p)
		w.enqueueNeighbors(p)
	}

	return nil
}

// visit records p in expansion order and notifies the sink.
func (w *bfsWalker) visit(p grid.Point) {
	w.res.Visited = append(w.res.Visited, p)
	if w.opts.Sink != nil {
		w.opts.Sink.OnVisited(p)
	}
}

// enqueueNeighbors enqueues each unvisited, non-Barrier neighbor of p in
// the fixed Neighbors8 order, recording p as its parent. The order decides
// parentage when several frontiers reach a cell in the same wave.
func (w *bfsWalker) enqueueNeighbors(p grid.Point) {
	for _, nbr := range w.g.Neighbors8(p) {
		role, _ := w.g.Role(nbr) // nbr is in bounds by construction
		if role == grid.Barrier {
			continue
		}
		if w.nodes.isVisited(nbr) {
			continue
		}
		w.nodes.markVisited(nbr)
		w.nodes.setParent(nbr, p)
		w.queue = append(w.queue, nbr)
	}
}

// finish extracts the path, emits the terminal sink event, and seals the
// Result. The end is reachable iff it ever received a parent.
func (w *bfsWalker) finish() *Result {
	_, w.res.Found = w.nodes.parentOf(w.end)
	w.res.Path = w.nodes.pathTo(w.end)
	if w.opts.Sink != nil {
		if w.res.Found {
			w.opts.Sink.OnPathFound(w.res.Path)
		} else {
			w.opts.Sink.OnPathNotFound()
		}
	}

	return w.res
}
