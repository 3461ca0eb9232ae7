//go:build !ebiten

package app

import (
	"context"
	"errors"

	"cgol/internal/core"
)

// ErrWindowUnavailable is returned for window mode in builds without the ebiten tag.
var ErrWindowUnavailable = errors.New("window mode requires building with the ebiten tag: go build -tags ebiten ./cmd/cgol")

func runWindow(context.Context, *core.Session, windowOptions) error {
	return ErrWindowUnavailable
}
