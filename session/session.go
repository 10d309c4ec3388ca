package session

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Session is the staged selection state machine. It owns the grid for its
// whole lifetime; endpoint bookkeeping lives in the grid itself (the
// unique Start/End roles), so the session never holds a second copy that
// could drift. Not safe for concurrent use: one session, one active
// search at a time.
type Session struct {
	g       *grid.Grid
	stage   Stage
	kind    search.Kind
	visible bool
}

// New constructs a Session at StagePickingStart over a fresh grid,
// applying any number of functional Options.
// Returns grid.ErrInvalidDimensions for a non-positive board size.
func New(opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := grid.New(o.Rows, o.Cols)
	if err != nil {
		return nil, err
	}

	return &Session{
		g:       g,
		stage:   StagePickingStart,
		kind:    o.Kind,
		visible: o.Visible,
	}, nil
}

// Grid exposes the underlying board, e.g. for a renderer to read roles.
func (s *Session) Grid() *grid.Grid { return s.g }

// Stage returns the current workflow stage.
func (s *Session) Stage() Stage { return s.stage }

// Kind returns the currently selected algorithm.
func (s *Session) Kind() search.Kind { return s.kind }

// Visible reports whether intermediate visited events will reach the sink.
func (s *Session) Visible() bool { return s.visible }

// StartPoint returns the selected start cell, if one is set.
func (s *Session) StartPoint() (grid.Point, bool) { return s.g.Start() }

// EndPoint returns the selected end cell, if one is set.
func (s *Session) EndPoint() (grid.Point, bool) { return s.g.End() }

// Pick applies a cell selection according to the current stage:
//
//   - StagePickingStart: p becomes the start, replacing (and clearing)
//     any previous start cell.
//   - StagePickingEnd: p becomes the end, replacing any previous end
//     cell; picking the start's own cell is a quiet no-op.
//   - StageEditingBarriers: toggles p between Barrier and Empty; the
//     start and end cells are quietly skipped.
//   - any other stage: no-op.
//
// Returns grid.ErrOutOfBounds when p lies outside the board.
func (s *Session) Pick(p grid.Point) error {
	switch s.stage {
	case StagePickingStart:
		if end, ok := s.g.End(); ok && p == end {
			return nil
		}

		return s.g.SetRole(p, grid.Start)

	case StagePickingEnd:
		if start, ok := s.g.Start(); ok && p == start {
			return nil
		}

		return s.g.SetRole(p, grid.End)

	case StageEditingBarriers:
		role, err := s.g.Role(p)
		if err != nil {
			return err
		}
		switch role {
		case grid.Start, grid.End:
			return nil
		case grid.Barrier:
			return s.g.SetRole(p, grid.Empty)
		default:
			return s.g.SetRole(p, grid.Barrier)
		}

	default:
		return nil
	}
}

// Advance moves to the next stage when its precondition holds:
// a start must be set to leave StagePickingStart, an end to leave
// StagePickingEnd. Advancing without the precondition, or from a stage
// with no "next", is a no-op — never an error.
func (s *Session) Advance() {
	switch s.stage {
	case StagePickingStart:
		if _, ok := s.g.Start(); ok {
			s.stage = StagePickingEnd
		}
	case StagePickingEnd:
		if _, ok := s.g.End(); ok {
			s.stage = StageEditingBarriers
		}
	case StageEditingBarriers:
		s.stage = StageChoosingOptions
	}
}

// SetKind selects the algorithm. Legal only at StageChoosingOptions;
// a no-op elsewhere.
func (s *Session) SetKind(k search.Kind) {
	if s.stage == StageChoosingOptions {
		s.kind = k
	}
}

// SetVisible toggles delivery of intermediate visited events. Legal only
// at StageChoosingOptions; a no-op elsewhere.
func (s *Session) SetVisible(visible bool) {
	if s.stage == StageChoosingOptions {
		s.visible = visible
	}
}

// Run executes the configured search over the current grid and endpoints,
// transitioning ChoosingOptions → Running → Done around the synchronous
// run. Progress flows to sink (which may be nil); when Visible is off the
// sink still receives the terminal path events but no visited events.
//
// The search runs to completion immediately — the returned Result carries
// the full precomputed event stream (Result.Events / Result.Replay) for a
// collaborator to pace on its own scheduler.
//
// Returns ErrNotRunnable outside StageChoosingOptions.
func (s *Session) Run(sink search.ProgressSink) (*search.Result, error) {
	if s.stage != StageChoosingOptions {
		return nil, ErrNotRunnable
	}
	start, _ := s.g.Start() // both set: guarded by the stage preconditions
	end, _ := s.g.End()

	if sink != nil && !s.visible {
		sink = pathOnlySink{next: sink}
	}

	s.stage = StageRunning
	res, err := search.Run(s.g, start, end, s.kind, search.WithSink(sink))
	if err != nil {
		// leave Running; only Reset recovers a failed run
		return nil, err
	}
	s.stage = StageDone

	return res, nil
}

// Reset returns to StagePickingStart from any stage: the start and end
// selections are cleared, every non-Empty role (barriers included) goes
// back to Empty, and the run options return to their defaults (BFS,
// non-visible) — starting over means over, construction-time options
// included. Resetting a fresh session is a harmless no-op.
func (s *Session) Reset() {
	s.g.ClearRoles(nil)
	s.kind = search.KindBFS
	s.visible = false
	s.stage = StagePickingStart
}

// pathOnlySink forwards terminal path events and swallows visited events;
// it implements the non-visible search of the original workflow, where
// the path is always shown but the explored area is not.
type pathOnlySink struct {
	next search.ProgressSink
}

func (pathOnlySink) OnVisited(grid.Point) {}

func (s pathOnlySink) OnPathFound(path []grid.Point) { s.next.OnPathFound(path) }

func (s pathOnlySink) OnPathNotFound() { s.next.OnPathNotFound() }
