// Package gridfile loads and saves grids in the plain-text cell format and
// resolves user-supplied file names.
package gridfile

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"cgol/pkg/life"
)

// Ext is the extension of grid files.
const Ext = ".txt"

var (
	// ErrInvalidSelection is returned by Resolve for unknown names or indexes.
	ErrInvalidSelection = errors.New("not a valid file selection")
	// ErrInvalidName is returned by SaveName for names that cannot be saved to.
	ErrInvalidName = errors.New("not a valid file name")
)

// Load reads a grid from path.
func Load(path string) (*life.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open grid")
	}
	defer f.Close()
	g, err := life.Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return g, nil
}

// Save writes g to path. The file is written next to its destination and
// renamed into place so watchers never observe a partial grid.
func Save(path string, g *life.Grid) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())
	if err := life.Write(tmp, g); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

// Candidates lists the grid files in dir, sorted by name.
func Candidates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", dir)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Resolve maps user input onto one of candidates. Input may be a 1-based
// index into candidates, an exact name, or a name without the extension.
func Resolve(input string, candidates []string) (string, error) {
	input = strings.TrimSpace(input)
	// Only plain digit strings are indexes; "+1" and "-1" are names.
	if isDigits(input) {
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(candidates) {
			return candidates[n-1], nil
		}
		return "", errors.Wrapf(ErrInvalidSelection, "%q", input)
	}
	for _, c := range candidates {
		if c == input || c == input+Ext {
			return c, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidSelection, "%q", input)
}

func isDigits(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

// SaveName validates a destination name. Names without any dot get the grid
// extension appended; names with another extension, or nothing but the
// extension, are rejected.
func SaveName(input string) (string, error) {
	name := strings.TrimSpace(input)
	if !strings.Contains(name, ".") {
		name += Ext
	}
	if !strings.HasSuffix(name, Ext) || name == Ext {
		return "", errors.Wrapf(ErrInvalidName, "%q", input)
	}
	return name, nil
}

// Source is a core.GridSource reading a fixed path.
type Source struct {
	Path string
}

// Load implements core.GridSource.
func (s Source) Load(ctx context.Context) (*life.Grid, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	g, err := Load(s.Path)
	if err != nil {
		return nil, "", err
	}
	return g, filepath.Base(s.Path), nil
}
