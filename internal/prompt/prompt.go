// Package prompt holds the interactive questions asked before a run: which
// grid file to open, how fast to run and where to save.
package prompt

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"cgol/internal/gridfile"
	"cgol/pkg/life"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	indexStyle = lipgloss.NewStyle().Foreground(colorMuted).Width(4).Align(lipgloss.Right)
)

// ErrNoCandidates is returned when a directory holds no grid files.
var ErrNoCandidates = fmt.Errorf("no %s grid files found", gridfile.Ext)

// ParseFrequency validates a generation frequency typed by the user: digits
// with at most one decimal point and a value above zero.
func ParseFrequency(input string) (float64, error) {
	s := strings.TrimSpace(input)
	digits := strings.Replace(s, ".", "", 1)
	if digits == "" || strings.Contains(digits, ".") || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, fmt.Errorf("%q is not a valid input", input)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%q is not a valid input", input)
	}
	return f, nil
}

// ListCandidates writes a numbered list of grid files, matching the indexes
// accepted by gridfile.Resolve.
func ListCandidates(w io.Writer, dir string, names []string) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render("Grids in "+dir+":")); err != nil {
		return err
	}
	for i, n := range names {
		if _, err := fmt.Fprintf(w, "%s - %s\n", indexStyle.Render(strconv.Itoa(i+1)), n); err != nil {
			return err
		}
	}
	return nil
}

// Picker is a core.GridSource that asks the user to choose a grid file.
type Picker struct {
	Dir string
}

// Load implements core.GridSource.
func (p Picker) Load(ctx context.Context) (*life.Grid, string, error) {
	names, err := gridfile.Candidates(p.Dir)
	if err != nil {
		return nil, "", err
	}
	if len(names) == 0 {
		return nil, "", fmt.Errorf("%s: %w", p.Dir, ErrNoCandidates)
	}
	var choice string
	sel := huh.NewSelect[string]().
		Title("Select a grid to open").
		Options(huh.NewOptions(names...)...).
		Value(&choice)
	if err := huh.NewForm(huh.NewGroup(sel)).RunWithContext(ctx); err != nil {
		return nil, "", err
	}
	g, err := gridfile.Load(filepath.Join(p.Dir, choice))
	if err != nil {
		return nil, "", err
	}
	return g, choice, nil
}

// Frequency asks for the generation frequency in Hz.
func Frequency(ctx context.Context) (float64, error) {
	var raw string
	in := huh.NewInput().
		Title("Generation frequency (Hz)").
		Placeholder("4").
		Validate(func(s string) error {
			_, err := ParseFrequency(s)
			return err
		}).
		Value(&raw)
	if err := huh.NewForm(huh.NewGroup(in)).RunWithContext(ctx); err != nil {
		return 0, err
	}
	return ParseFrequency(raw)
}

// SaveAs asks for a destination file name inside dir.
func SaveAs(ctx context.Context, dir string) (string, error) {
	var raw string
	in := huh.NewInput().
		Title("Enter a file name").
		Validate(func(s string) error {
			_, err := gridfile.SaveName(s)
			return err
		}).
		Value(&raw)
	if err := huh.NewForm(huh.NewGroup(in)).RunWithContext(ctx); err != nil {
		return "", err
	}
	name, err := gridfile.SaveName(raw)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
