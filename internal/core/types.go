package core

import (
	"context"
	"time"

	"cgol/pkg/life"
)

// Snapshot is a consistent view of a session at one moment. The grid is
// immutable and may be held for as long as the caller likes.
type Snapshot struct {
	Grid       *life.Grid
	Generation int
	Paused     bool
	Source     string
}

// Renderer displays snapshots. Implementations must not retain the
// snapshot's grid beyond treating it as read-only.
type Renderer interface {
	Render(s Snapshot) error
}

// GridSource produces an initial grid and a name describing where it came from.
type GridSource interface {
	Load(ctx context.Context) (*life.Grid, string, error)
}

// Observer is notified about session transitions.
type Observer interface {
	Stepped(s Snapshot, took time.Duration)
	Replaced(s Snapshot)
}

// Actions are user-triggered side effects shared by the interactive front ends.
type Actions struct {
	// Save persists the current grid and returns where it went.
	Save func() (string, error)
	// Reload replaces the grid from its source.
	Reload func() error
}
