// Package search defines options, sentinel errors, the progress-sink
// contract and the result/event types for the grid search algorithms.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrMissingEndpoint is returned when start or end is unset for the
	// grid (out of bounds) or when both name the same cell.
	ErrMissingEndpoint = errors.New("search: start and end must be distinct in-bounds cells")

	// ErrUnknownKind is returned by Run for an unrecognized Kind.
	ErrUnknownKind = errors.New("search: unknown search kind")
)

// Kind selects which algorithm Run dispatches to.
type Kind int

const (
	// KindBFS selects breadth-first search (the default).
	KindBFS Kind = iota

	// KindAStar selects the A* priority relaxation search.
	KindAStar
)

// String returns a human-readable algorithm name.
func (k Kind) String() string {
	switch k {
	case KindBFS:
		return "BFS"
	case KindAStar:
		return "A*"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ProgressSink receives search progress notifications in emission order.
// Implementations map cells to whatever visual representation they like;
// the algorithms never depend on how (or whether) events are displayed.
type ProgressSink interface {
	// OnVisited reports that the search expanded (examined the neighbors
	// of) cell p. Called once per expansion, in expansion order; AStar may
	// re-expand a cell whose stale queue entry resurfaces, in which case
	// OnVisited fires again for the same cell.
	OnVisited(p grid.Point)

	// OnPathFound delivers the final path from start to end, excluding
	// both endpoints. The slice may be empty when start and end are
	// adjacent.
	OnPathFound(path []grid.Point)

	// OnPathNotFound reports that the end cell is unreachable.
	OnPathNotFound()
}

// EventType discriminates the entries of a recorded event stream.
type EventType int

const (
	// EventVisited carries one expanded cell in Event.Cell.
	EventVisited EventType = iota

	// EventPathFound carries the final path in Event.Path.
	EventPathFound

	// EventPathNotFound terminates a stream whose end was unreachable.
	EventPathNotFound
)

// Event is one element of the precomputed, ordered progress stream.
type Event struct {
	Type EventType
	Cell grid.Point   // set for EventVisited
	Path []grid.Point // set for EventPathFound
}

// Result holds the outcome of one search invocation:
//   - Visited: cells in expansion order. Under AStar a cell may appear
//     more than once when a stale heap entry is re-expanded.
//   - Path: points from the cell after start to the cell before end;
//     empty when the endpoints are adjacent or when End is unreachable.
//   - Found: whether the end cell was reached.
type Result struct {
	Visited []grid.Point
	Path    []grid.Point
	Found   bool
}

// Events flattens the result into the ordered stream a live ProgressSink
// would have observed: every visited cell in expansion order, then exactly
// one terminal EventPathFound or EventPathNotFound.
// The search itself always runs to completion synchronously; pacing the
// consumption of this stream (e.g. on a timer) is the collaborator's job.
func (r *Result) Events() []Event {
	events := make([]Event, 0, len(r.Visited)+1)
	for _, p := range r.Visited {
		events = append(events, Event{Type: EventVisited, Cell: p})
	}
	if r.Found {
		events = append(events, Event{Type: EventPathFound, Path: r.Path})
	} else {
		events = append(events, Event{Type: EventPathNotFound})
	}

	return events
}

// Replay re-delivers the recorded stream to sink in order.
// A nil sink is a no-op.
func (r *Result) Replay(sink ProgressSink) {
	if sink == nil {
		return
	}
	for _, p := range r.Visited {
		sink.OnVisited(p)
	}
	if r.Found {
		sink.OnPathFound(r.Path)
	} else {
		sink.OnPathNotFound()
	}
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters shared by both algorithms.
type Options struct {
	// Ctx allows cancellation; checked once per main-loop iteration.
	Ctx context.Context

	// Sink receives progress events during the run. Nil runs silently.
	Sink ProgressSink
}

// DefaultOptions returns Options with sane defaults:
// context.Background() and no sink.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Sink: nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSink registers a ProgressSink to observe the run live.
func WithSink(sink ProgressSink) Option {
	return func(o *Options) {
		o.Sink = sink
	}
}
