package gridfile

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"cgol/pkg/life"
)

// ReloadHandler receives a freshly decoded grid after the watched file changed.
type ReloadHandler func(g *life.Grid, source string)

// Watcher reloads a grid file whenever it is written, recreated or renamed
// into place. Bursts of events within the debounce window collapse into one
// reload.
type Watcher struct {
	path     string
	handler  ReloadHandler
	debounce time.Duration
	logger   *slog.Logger
}

// WatcherOptions configures a Watcher.
type WatcherOptions struct {
	// Debounce is how long to wait for more events before reloading.
	// Default: 100ms
	Debounce time.Duration
	Logger   *slog.Logger
}

// NewWatcher returns a watcher for path. Call Run to start watching.
func NewWatcher(path string, handler ReloadHandler, opts WatcherOptions) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = 100 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		handler:  handler,
		debounce: opts.Debounce,
		logger:   opts.Logger.With("component", "watcher", "path", path),
	}
}

// Run blocks until ctx is cancelled. The parent directory is watched rather
// than the file itself because editors usually save by replacing the file.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer fw.Close()
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(w.path))
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	g, err := Load(w.path)
	if err != nil {
		// Half-written or deleted files are expected while editing.
		w.logger.Warn("reload failed", "error", err)
		return
	}
	w.logger.Info("grid reloaded", "width", g.Width(), "height", g.Height())
	w.handler(g, filepath.Base(w.path))
}
