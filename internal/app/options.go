package app

import (
	"log/slog"

	"cgol/internal/core"
)

// windowOptions configures the window renderer.
type windowOptions struct {
	Frequency      float64
	Scale          int
	MaxGenerations int
	Actions        core.Actions
	Logger         *slog.Logger
}
