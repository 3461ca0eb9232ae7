package core

import (
	"sync"
	"time"

	"cgol/pkg/life"
)

// Session tracks the current generation of a running simulation. It is safe
// for concurrent use: the driving loop, renderers and file watchers all share
// one Session.
type Session struct {
	mu         sync.RWMutex
	grid       *life.Grid
	generation int
	paused     bool
	source     string
	observers  []Observer
}

// NewSession starts a session at generation 0.
func NewSession(g *life.Grid, source string, observers ...Observer) *Session {
	return &Session{grid: g, source: source, observers: observers}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{Grid: s.grid, Generation: s.generation, Paused: s.paused, Source: s.source}
}

// Tick advances one generation unless the session is paused. It reports
// whether a step happened.
func (s *Session) Tick() (Snapshot, bool) {
	s.mu.Lock()
	if s.paused {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, false
	}
	snap, took := s.stepLocked()
	s.mu.Unlock()
	s.notifyStepped(snap, took)
	return snap, true
}

// Advance steps once regardless of the paused flag.
func (s *Session) Advance() Snapshot {
	s.mu.Lock()
	snap, took := s.stepLocked()
	s.mu.Unlock()
	s.notifyStepped(snap, took)
	return snap
}

func (s *Session) stepLocked() (Snapshot, time.Duration) {
	start := time.Now()
	s.grid = life.Step(s.grid)
	s.generation++
	return s.snapshotLocked(), time.Since(start)
}

// TogglePause flips the paused flag and returns the new value.
func (s *Session) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = !s.paused
	return s.paused
}

// SetPaused sets the paused flag.
func (s *Session) SetPaused(p bool) {
	s.mu.Lock()
	s.paused = p
	s.mu.Unlock()
}

// Replace swaps in a freshly loaded grid and restarts the generation count.
// The paused flag is preserved.
func (s *Session) Replace(g *life.Grid, source string) Snapshot {
	s.mu.Lock()
	s.grid = g
	s.source = source
	s.generation = 0
	snap := s.snapshotLocked()
	s.mu.Unlock()
	for _, o := range s.observers {
		o.Replaced(snap)
	}
	return snap
}

func (s *Session) notifyStepped(snap Snapshot, took time.Duration) {
	for _, o := range s.observers {
		o.Stepped(snap, took)
	}
}
