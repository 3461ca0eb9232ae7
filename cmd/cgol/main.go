package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/integrii/flaggy"

	"cgol/internal/app"
	"cgol/internal/gridfile"
	"cgol/internal/prompt"
	"cgol/pkg/life"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cgol:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := app.LoadConfig(app.ConfigPathFromArgs(os.Args[1:]))
	if err != nil {
		return err
	}

	flaggy.SetName("cgol")
	flaggy.SetDescription("Conway's Game of Life on a toroidal grid")
	flaggy.SetVersion(version)

	runCmd := flaggy.NewSubcommand("run")
	runCmd.Description = "Load a grid and animate it"
	cfg.Bind(runCmd)
	flaggy.AttachSubcommand(runCmd, 1)

	var (
		in          string
		out         string
		generations = 1
	)
	advanceCmd := flaggy.NewSubcommand("advance")
	advanceCmd.Description = "Step a grid file and print or save the result"
	advanceCmd.AddPositionalValue(&in, "file", 1, true, "Grid file to advance")
	advanceCmd.Int(&generations, "g", "generations", "Number of generations to step")
	advanceCmd.String(&out, "o", "out", "Write the result here instead of stdout")
	flaggy.AttachSubcommand(advanceCmd, 1)

	listDir := cfg.Dir
	listCmd := flaggy.NewSubcommand("list")
	listCmd.Description = "List the grid files in a directory"
	listCmd.String(&listDir, "d", "dir", "Directory holding grid files")
	flaggy.AttachSubcommand(listCmd, 1)

	var (
		randOut     string
		randWidth   = 32
		randHeight  = 32
		randSeed    int64
		randDensity = 0.3
	)
	randomCmd := flaggy.NewSubcommand("random")
	randomCmd.Description = "Write a randomly seeded grid"
	randomCmd.AddPositionalValue(&randOut, "file", 1, false, "Destination (stdout when omitted)")
	randomCmd.Int(&randWidth, "W", "width", "Grid width")
	randomCmd.Int(&randHeight, "H", "height", "Grid height")
	randomCmd.Int64(&randSeed, "s", "seed", "Random seed")
	randomCmd.Float64(&randDensity, "p", "density", "Probability that a cell starts alive")
	flaggy.AttachSubcommand(randomCmd, 1)

	flaggy.Parse()

	switch {
	case runCmd.Used:
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, closeLog, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLog()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return app.Run(ctx, cfg, logger)
	case advanceCmd.Used:
		if generations < 0 {
			return fmt.Errorf("generations must not be negative, got %d", generations)
		}
		_, err := app.Advance(in, generations, out, os.Stdout)
		return err
	case randomCmd.Used:
		g, err := life.Random(randWidth, randHeight, randSeed, randDensity)
		if err != nil {
			return err
		}
		if randOut == "" {
			return life.Write(os.Stdout, g)
		}
		return gridfile.Save(randOut, g)
	case listCmd.Used:
		names, err := gridfile.Candidates(listDir)
		if err != nil {
			return err
		}
		return prompt.ListCandidates(os.Stdout, listDir, names)
	default:
		flaggy.ShowHelpAndExit("a subcommand is required")
		return nil
	}
}

// newLogger builds the run logger. Every record carries the run id so logs
// from concurrent runs sharing a file can be told apart.
func newLogger(cfg *app.Config) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeLog := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	case cfg.Mode == app.ModeTUI:
		w = io.Discard
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()})
	logger := slog.New(h).With("run_id", uuid.NewString(), "mode", cfg.Mode)
	slog.SetDefault(logger)
	return logger, closeLog, nil
}
