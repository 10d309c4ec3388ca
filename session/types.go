// Package session defines the workflow stages, sentinel errors, and
// configuration options of the selection session.
package session

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/search"
)

// Default board dimensions when none are configured.
const (
	DefaultRows = 50
	DefaultCols = 50
)

// ErrNotRunnable is returned by Run when the session is not at the
// ChoosingOptions stage. Run is the one command with a result, so unlike
// Advance and Reset it fails loudly instead of quietly doing nothing.
var ErrNotRunnable = errors.New("session: run is only legal at the ChoosingOptions stage")

// Stage is the session's position in the staged selection workflow.
type Stage int

const (
	// StagePickingStart accepts (and replaces) the start cell.
	StagePickingStart Stage = iota

	// StagePickingEnd accepts (and replaces) the end cell.
	StagePickingEnd

	// StageEditingBarriers toggles Barrier cells on and off.
	StageEditingBarriers

	// StageChoosingOptions accepts the search kind and visibility toggles.
	StageChoosingOptions

	// StageRunning is transient while the synchronous search executes.
	StageRunning

	// StageDone follows a completed search; only Reset leaves it.
	StageDone
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StagePickingStart:
		return "PickingStart"
	case StagePickingEnd:
		return "PickingEnd"
	case StageEditingBarriers:
		return "EditingBarriers"
	case StageChoosingOptions:
		return "ChoosingOptions"
	case StageRunning:
		return "Running"
	case StageDone:
		return "Done"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Option configures a Session via functional arguments.
type Option func(*Options)

// Options holds the configuration surface a caller may set before running.
type Options struct {
	// Rows and Cols size the board. Defaults: DefaultRows×DefaultCols.
	Rows, Cols int

	// Kind selects the initial algorithm. Default: search.KindBFS.
	Kind search.Kind

	// Visible controls whether intermediate visited events reach the
	// sink during Run. Default: false (silent full-speed search).
	Visible bool
}

// DefaultOptions returns the standard 50×50 BFS non-visible configuration.
func DefaultOptions() Options {
	return Options{
		Rows:    DefaultRows,
		Cols:    DefaultCols,
		Kind:    search.KindBFS,
		Visible: false,
	}
}

// WithDimensions sizes the board. Non-positive values surface as
// grid.ErrInvalidDimensions from New.
func WithDimensions(rows, cols int) Option {
	return func(o *Options) {
		o.Rows, o.Cols = rows, cols
	}
}

// WithKind selects the initial search algorithm.
func WithKind(k search.Kind) Option {
	return func(o *Options) {
		o.Kind = k
	}
}

// WithVisible sets the initial visibility of intermediate search steps.
func WithVisible(visible bool) Option {
	return func(o *Options) {
		o.Visible = visible
	}
}
