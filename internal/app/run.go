package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"cgol/internal/core"
	"cgol/internal/gridfile"
	"cgol/internal/prompt"
	"cgol/internal/telemetry"
	"cgol/internal/term"
	"cgol/internal/tui"
	"cgol/pkg/life"
)

// Run loads the grid, wires the configured renderer and collaborators and
// blocks until the user quits, the generation limit is hit or ctx is done.
func Run(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	parent := ctx
	interactive := term.IsTerminal(os.Stdin)

	src, err := gridSource(cfg, interactive)
	if err != nil {
		return err
	}
	g, name, err := src.Load(ctx)
	if err != nil {
		return err
	}
	path := filepath.Join(cfg.Dir, name)
	if fs, ok := src.(gridfile.Source); ok {
		path = fs.Path
	}
	logger.Info("grid loaded", "path", path, "width", g.Width(), "height", g.Height(), "live", g.LiveCells())

	hz, err := frequency(ctx, cfg, interactive)
	if err != nil {
		return err
	}

	metrics := telemetry.New()
	session := core.NewSession(g, name, metrics)
	metrics.Observe(session.Snapshot())

	actions := core.Actions{
		Save: func() (string, error) {
			snap := session.Snapshot()
			dst := savePath(cfg, snap)
			if err := gridfile.Save(dst, snap.Grid); err != nil {
				return "", err
			}
			logger.Info("grid saved", "path", dst, "generation", snap.Generation)
			return dst, nil
		},
		Reload: func() error {
			g, err := gridfile.Load(path)
			if err != nil {
				return err
			}
			session.Replace(g, filepath.Base(path))
			logger.Info("grid reloaded", "path", path)
			return nil
		},
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	if cfg.MetricsAddr != "" {
		eg.Go(func() error { return metrics.Serve(ctx, cfg.MetricsAddr, logger) })
	}
	if cfg.Watch {
		w := gridfile.NewWatcher(path, func(g *life.Grid, source string) {
			session.Replace(g, source)
		}, gridfile.WatcherOptions{Logger: logger})
		eg.Go(func() error { return w.Run(ctx) })
	}

	loop := &Loop{Session: session, Frequency: hz, MaxGenerations: cfg.MaxGenerations, Logger: logger}
	switch cfg.Mode {
	case ModeTerm:
		opts := term.DefaultOptions(os.Stdout, hz)
		switch cfg.Color {
		case "always":
			opts.Color = true
		case "never":
			opts.Color = false
		}
		loop.Renderer = term.New(os.Stdout, opts)
		eg.Go(func() error {
			defer cancel()
			return loop.Run(ctx)
		})
	case ModeTUI:
		ui, err := tui.New(session, hz, actions)
		if err != nil {
			return err
		}
		loop.Renderer = ui
		eg.Go(func() error { return loop.Run(ctx) })
		eg.Go(func() error {
			defer cancel()
			return ui.Run(ctx)
		})
	case ModeWindow:
		eg.Go(func() error {
			defer cancel()
			return runWindow(ctx, session, windowOptions{
				Frequency:      hz,
				Scale:          cfg.Scale,
				MaxGenerations: cfg.MaxGenerations,
				Actions:        actions,
				Logger:         logger,
			})
		})
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	err = eg.Wait()
	final := session.Snapshot()
	logger.Info("simulation stopped", "generation", final.Generation, "live", final.Grid.LiveCells())
	dst := cfg.Save
	if dst == "" && cfg.AskSave && cfg.Mode == ModeTerm && interactive && err == nil && parent.Err() == nil {
		dst, err = prompt.SaveAs(parent, cfg.Dir)
	}
	if dst != "" {
		if serr := gridfile.Save(dst, final.Grid); serr != nil {
			logger.Error("saving final grid failed", "path", dst, "error", serr)
			if err == nil {
				err = serr
			}
		} else {
			logger.Info("final grid saved", "path", dst)
		}
	}
	return err
}

func gridSource(cfg *Config, interactive bool) (core.GridSource, error) {
	if cfg.File != "" {
		return gridfile.Source{Path: resolveFile(cfg)}, nil
	}
	if !interactive {
		return nil, fmt.Errorf("no grid file given and stdin is not a terminal")
	}
	return prompt.Picker{Dir: cfg.Dir}, nil
}

// resolveFile lets File name a grid in Dir the way the picker lists it: by
// 1-based index, by name, or by name without the extension. Paths that exist
// are used as given.
func resolveFile(cfg *Config) string {
	if _, err := os.Stat(cfg.File); err == nil {
		return cfg.File
	}
	names, err := gridfile.Candidates(cfg.Dir)
	if err != nil {
		return cfg.File
	}
	name, err := gridfile.Resolve(cfg.File, names)
	if err != nil {
		return cfg.File
	}
	return filepath.Join(cfg.Dir, name)
}

func frequency(ctx context.Context, cfg *Config, interactive bool) (float64, error) {
	if cfg.Frequency > 0 {
		return cfg.Frequency, nil
	}
	if interactive && cfg.Mode == ModeTerm {
		return prompt.Frequency(ctx)
	}
	return DefaultFrequency, nil
}

// savePath is the destination of interactive saves: the configured save file,
// or <source>-gen<N>.txt next to the grids.
func savePath(cfg *Config, s core.Snapshot) string {
	if cfg.Save != "" {
		return cfg.Save
	}
	stem := strings.TrimSuffix(filepath.Base(s.Source), gridfile.Ext)
	if stem == "" || stem == "." {
		stem = "grid"
	}
	return filepath.Join(cfg.Dir, fmt.Sprintf("%s-gen%d%s", stem, s.Generation, gridfile.Ext))
}
