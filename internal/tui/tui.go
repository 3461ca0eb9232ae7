// Package tui is the interactive full-screen terminal front end.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"cgol/internal/core"
	"cgol/pkg/life"
)

const (
	viewHeader = "header"
	viewField  = "field"
	viewStatus = "status"
	viewHelp   = "help"

	leftColumnWidth = 28
	minWindowHeight = 12
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

// UI renders a session in a gocui screen and maps keys onto session actions.
type UI struct {
	g         *gocui.Gui
	session   *core.Session
	actions   core.Actions
	frequency float64
	keys      []keyBinding

	liveFiller string
	deadFiller string

	mu      sync.Mutex
	message string
}

// New creates the UI. The terminal is taken over until Run returns.
func New(session *core.Session, frequency float64, actions core.Actions) (*UI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}
	t := &UI{
		g:          g,
		session:    session,
		actions:    actions,
		frequency:  frequency,
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}
	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit},
		{'q', "Q", "Exit", t.cmdQuit},
		{gocui.KeySpace, "SPACE", "Pause", t.cmdPause},
		{'n', "N", "Next step", t.cmdStep},
		{'s', "S", "Save", t.cmdSave},
		{'r', "R", "Reload", t.cmdReload},
	}
	g.SetManagerFunc(t.layout)
	for _, kb := range t.keys {
		h := kb.handler
		if err := g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() }); err != nil {
			g.Close()
			return nil, err
		}
	}
	return t, nil
}

// Run blocks in the gocui main loop until the user quits or ctx is done.
func (t *UI) Run(ctx context.Context) error {
	defer t.g.Close()
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
		case <-stop:
		}
	}()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// Render implements core.Renderer. It is safe to call from any goroutine.
func (t *UI) Render(s core.Snapshot) error {
	t.g.Update(func(g *gocui.Gui) error {
		t.renderField(g, s.Grid)
		t.renderStatus(g, s)
		return nil
	})
	return nil
}

func (t *UI) setMessage(format string, args ...interface{}) {
	t.mu.Lock()
	t.message = fmt.Sprintf(format, args...)
	t.mu.Unlock()
}

func (t *UI) renderField(g *gocui.Gui, grid *life.Grid) {
	v, err := g.View(viewField)
	if err != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()
	drawField(v, grid, maxW, maxH, t.liveFiller, t.deadFiller)
}

func (t *UI) renderStatus(g *gocui.Gui, s core.Snapshot) {
	v, err := g.View(viewStatus)
	if err != nil {
		return
	}
	v.Clear()
	t.mu.Lock()
	msg := t.message
	t.mu.Unlock()
	for _, l := range statusLines(s, t.frequency, msg) {
		_, _ = fmt.Fprintln(v, l)
	}
}

// drawField writes one character per cell, cropping to the view size. The
// last visible row turns into a warning when the grid does not fit.
func drawField(w io.Writer, g *life.Grid, maxW, maxH int, live, dead string) {
	crop := g.Width() > maxW || g.Height() > maxH
	var b bytes.Buffer
	for y := 0; y < g.Height() && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red("The grid is larger than the view").String())
			break
		}
		for x := 0; x < g.Width() && x < maxW; x++ {
			if g.Alive(x, y) {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	_, _ = w.Write(b.Bytes())
}

func statusLines(s core.Snapshot, frequency float64, message string) []string {
	mode := aurora.Colorize("running", aurora.CyanFg).String()
	if s.Paused {
		mode = aurora.Colorize("paused", aurora.BlueFg).String()
	}
	lines := []string{
		renderProp("Grid", "%s", s.Source),
		renderProp("Dimension", "%d x %d", s.Grid.Width(), s.Grid.Height()),
		renderProp("Generation", "%d", s.Generation),
		renderProp("Live cells", "%d", s.Grid.LiveCells()),
		renderProp("Frequency", "%g Hz", frequency),
		renderProp("Mode", "%s", mode),
	}
	if message != "" {
		lines = append(lines, "", " "+message)
	}
	return lines
}

func renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxY < minWindowHeight || maxX <= leftColumnWidth+2 {
		for _, name := range []string{viewField, viewStatus, viewHelp} {
			_ = g.DeleteView(name)
		}
		return t.headerLayout(g, maxY-1, "Terminal too small")
	}
	if err := t.headerLayout(g, 2, "Conway's Game of Life"); err != nil {
		return err
	}

	snap := t.session.Snapshot()
	if v, err := g.SetView(viewStatus, 0, 3, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	t.renderStatus(g, snap)

	if v, err := g.SetView(viewField, leftColumnWidth+1, 3, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Field"
	}
	t.renderField(g, snap.Grid)

	if v, err := g.SetView(viewHelp, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, t.helpLine())
	}
	return nil
}

func (t *UI) helpLine() string {
	var b strings.Builder
	b.WriteString("KEYS: ")
	for i, k := range t.keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (t *UI) headerLayout(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView(viewHeader, -1, -1, maxX, height)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	pad := 0
	if maxX > len(text) {
		pad = (maxX - len(text)) / 2
	}
	_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", pad)+text)
	return nil
}

func (t *UI) cmdQuit() error {
	return gocui.ErrQuit
}

func (t *UI) cmdPause() error {
	t.session.TogglePause()
	return t.Render(t.session.Snapshot())
}

func (t *UI) cmdStep() error {
	return t.Render(t.session.Advance())
}

func (t *UI) cmdSave() error {
	if t.actions.Save == nil {
		return nil
	}
	path, err := t.actions.Save()
	if err != nil {
		t.setMessage("save failed: %v", err)
	} else {
		t.setMessage("saved to %s", path)
	}
	return t.Render(t.session.Snapshot())
}

func (t *UI) cmdReload() error {
	if t.actions.Reload == nil {
		return nil
	}
	if err := t.actions.Reload(); err != nil {
		t.setMessage("reload failed: %v", err)
	} else {
		t.setMessage("reloaded")
	}
	return t.Render(t.session.Snapshot())
}
