// Package ui holds the on-screen status overlay of the window renderer.
package ui

import (
	"fmt"
	"strings"

	"cgol/internal/core"
)

// Text formats the HUD lines for a snapshot.
func Text(s core.Snapshot, frequency float64, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "gen %d  live %d  %gHz", s.Generation, s.Grid.LiveCells(), frequency)
	if s.Paused {
		b.WriteString("  [paused]")
	}
	if message != "" {
		b.WriteString("\n")
		b.WriteString(message)
	}
	return b.String()
}
