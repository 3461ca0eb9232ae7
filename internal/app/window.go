//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cgol/internal/core"
	"cgol/internal/render"
	"cgol/internal/ui"
)

// windowRatio is the share of the screen a fitted grid may cover.
const windowRatio = 0.9

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	session *core.Session
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
	opts    windowOptions

	onColor   color.Color
	offColor  color.Color
	lineColor color.Color

	cell int
}

// NewGame constructs a Game drawing cells at cell pixels.
func NewGame(ctx context.Context, session *core.Session, cell int, opts windowOptions) *Game {
	g := session.Snapshot().Grid
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Game{
		ctx:       ctx,
		session:   session,
		painter:   render.NewGridPainter(g.Width(), g.Height(), cell),
		hud:       ui.NewHUD(opts.Frequency),
		pacer:     core.NewFixedStep(opts.Frequency),
		opts:      opts,
		onColor:   render.LiveColor,
		offColor:  render.DeadColor,
		lineColor: render.LineColor,
		cell:      cell,
	}
}

// Update handles input and advances the simulation when a generation is due.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if !g.session.TogglePause() {
			g.pacer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.save()
	}

	if g.pacer.ShouldStep() {
		snap, stepped := g.session.Tick()
		if stepped && g.opts.MaxGenerations > 0 && snap.Generation >= g.opts.MaxGenerations {
			g.session.SetPaused(true)
		}
	}
	return nil
}

func (g *Game) reload() {
	if g.opts.Actions.Reload == nil {
		return
	}
	if err := g.opts.Actions.Reload(); err != nil {
		g.opts.Logger.Warn("reload failed", "error", err)
		g.hud.SetMessage(fmt.Sprintf("reload failed: %v", err))
		return
	}
	g.hud.SetMessage("reloaded")
}

func (g *Game) save() {
	if g.opts.Actions.Save == nil {
		return
	}
	path, err := g.opts.Actions.Save()
	if err != nil {
		g.opts.Logger.Warn("save failed", "error", err)
		g.hud.SetMessage(fmt.Sprintf("save failed: %v", err))
		return
	}
	g.hud.SetMessage("saved to " + path)
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	if !g.painter.Fits(snap.Grid) {
		// A reload changed the dimensions.
		g.painter = render.NewGridPainter(snap.Grid.Width(), snap.Grid.Height(), g.cell)
		ebiten.SetWindowSize(g.painter.Size())
	}
	g.painter.Blit(screen, snap.Grid, g.onColor, g.offColor, g.lineColor)
	g.hud.Draw(screen, snap)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}

func runWindow(ctx context.Context, session *core.Session, opts windowOptions) error {
	grid := session.Snapshot().Grid
	cell := opts.Scale
	if cell <= 0 {
		sw, sh := ebiten.ScreenSizeInFullscreen()
		cell = render.CellSize(sw, sh, grid.Width(), grid.Height(), windowRatio)
	}
	game := NewGame(ctx, session, cell, opts)

	ebiten.SetWindowTitle("cgol: " + session.Snapshot().Source)
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(game.painter.Size())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
