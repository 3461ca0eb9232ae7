package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"cgol/internal/core"
)

// Loop renders and advances a session at a fixed frequency.
type Loop struct {
	Session   *core.Session
	Renderer  core.Renderer
	Frequency float64
	// MaxGenerations stops the loop once reached; 0 runs until cancelled.
	MaxGenerations int
	Logger         *slog.Logger
}

// Run blocks until ctx is cancelled or MaxGenerations is reached. Each
// iteration renders the current snapshot, waits for the next tick and then
// steps. Cancellation is not an error.
func (l *Loop) Run(ctx context.Context) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limiter := rate.NewLimiter(rate.Limit(l.Frequency), 1)
	// Spend the initial token so generation 0 stays up for a full interval.
	limiter.Allow()
	for {
		snap := l.Session.Snapshot()
		if err := l.Renderer.Render(snap); err != nil {
			return fmt.Errorf("render generation %d: %w", snap.Generation, err)
		}
		if l.MaxGenerations > 0 && snap.Generation >= l.MaxGenerations {
			logger.Info("generation limit reached", "generation", snap.Generation)
			return nil
		}
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		l.Session.Tick()
	}
}
