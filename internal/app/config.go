package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Display modes.
const (
	ModeTerm   = "term"
	ModeTUI    = "tui"
	ModeWindow = "window"
)

// DefaultFrequency is used when no frequency is configured and nobody can be asked.
const DefaultFrequency = 4.0

// Config represents the parameters of a run. Values come from defaults, then
// an optional YAML file, then command-line flags.
type Config struct {
	// Mode selects the renderer.
	Mode string `yaml:"mode" validate:"oneof=term tui window"`
	// Frequency is the number of generations per second. Zero means ask
	// when stdin is a terminal and use DefaultFrequency otherwise.
	Frequency float64 `yaml:"frequency" validate:"gte=0"`
	// Dir is where grid files are listed and saved.
	Dir string `yaml:"dir" validate:"required"`
	// File is the grid to load. Empty means pick interactively from Dir.
	File string `yaml:"file"`
	// Save is written with the final grid on exit and used by save keys.
	Save string `yaml:"save"`
	// AskSave prompts for a file name on exit in term mode when Save is empty.
	AskSave bool `yaml:"ask_save"`
	// Scale is the pixel size of a cell in window mode; 0 fits the screen.
	Scale          int    `yaml:"scale" validate:"gte=0"`
	MaxGenerations int    `yaml:"max_generations" validate:"gte=0"`
	Watch          bool   `yaml:"watch"`
	Color          string `yaml:"color" validate:"oneof=auto always never"`
	MetricsAddr    string `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
	LogLevel       string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// LogFile receives logs instead of stderr. The tui mode discards logs
	// when it is empty because the screen belongs to the UI.
	LogFile string `yaml:"log_file"`

	// Path is the YAML file the config was loaded from.
	Path string `yaml:"-"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Mode:     ModeTerm,
		Dir:      ".",
		Color:    "auto",
		LogLevel: "info",
	}
}

// LoadConfig returns the defaults overlaid with the YAML file at path.
// Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	c := NewConfig()
	if path == "" {
		return c, nil
	}
	c.Path = path
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return c, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Level maps LogLevel onto a slog level.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Bind attaches the run flags to sc.
func (c *Config) Bind(sc *flaggy.Subcommand) {
	sc.String(&c.Path, "c", "config", "YAML config file, applied before the other flags")
	sc.AddPositionalValue(&c.File, "file", 1, false, "Grid file to load (prompted for when omitted)")
	sc.String(&c.Mode, "m", "mode", "Display mode [term|tui|window]")
	sc.Float64(&c.Frequency, "f", "frequency", "Generations per second (prompted for when omitted)")
	sc.String(&c.Dir, "d", "dir", "Directory holding grid files")
	sc.String(&c.Save, "o", "save", "Write the final grid to this file on exit")
	sc.Bool(&c.AskSave, "", "ask-save", "Ask where to save the final grid on exit")
	sc.Int(&c.Scale, "s", "scale", "Cell size in pixels for window mode, 0 fits the screen")
	sc.Int(&c.MaxGenerations, "n", "generations", "Stop after this many generations, 0 runs forever")
	sc.Bool(&c.Watch, "w", "watch", "Reload the grid when its file changes")
	sc.String(&c.Color, "", "color", "Colour output [auto|always|never]")
	sc.String(&c.MetricsAddr, "", "metrics", "Serve Prometheus metrics on this address")
	sc.String(&c.LogLevel, "", "log-level", "Log level [debug|info|warn|error]")
	sc.String(&c.LogFile, "", "log-file", "Write logs to this file instead of stderr")
}

// ConfigPathFromArgs finds the value of -c/--config in args so the file can
// be loaded before flags are parsed on top of it.
func ConfigPathFromArgs(args []string) string {
	for i, a := range args {
		for _, name := range []string{"-c", "--config"} {
			if a == name && i+1 < len(args) {
				return args[i+1]
			}
			if v, ok := strings.CutPrefix(a, name+"="); ok {
				return v
			}
		}
	}
	return ""
}
