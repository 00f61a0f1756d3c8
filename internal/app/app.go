//go:build ebiten

package app

import (
	"context"
	"image/color"

	"hyperlife/internal/render"
	"hyperlife/internal/session"
	"hyperlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	w, h  int
	scale int
	depth int
	err   error
}

// New constructs a Game showing a w×h cell window of the session.
func New(ctx context.Context, sess *session.Session, w, h, scale int) *Game {
	return &Game{
		ctx:      ctx,
		sess:     sess,
		painter:  render.NewGridPainter(w, h),
		hud:      ui.NewHUD(w * scale),
		onColor:  color.White,
		offColor: color.Black,
		w:        w,
		h:        h,
		scale:    scale,
		depth:    2,
	}
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error { return g.err }

var panKeys = []struct {
	key         ebiten.Key
	axis, delta int
}{
	{ebiten.KeyArrowUp, 0, -1},
	{ebiten.KeyArrowDown, 0, 1},
	{ebiten.KeyArrowLeft, 1, -1},
	{ebiten.KeyArrowRight, 1, 1},
}

var depthKeys = []ebiten.Key{
	ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

func (g *Game) commands() []session.Command {
	var cmds []session.Command
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		cmds = append(cmds, session.Command{Kind: session.Exit})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		cmds = append(cmds, session.Command{Kind: session.TogglePause})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		cmds = append(cmds, session.Command{Kind: session.Step})
	}
	for _, pk := range panKeys {
		if inpututil.IsKeyJustPressed(pk.key) {
			cmds = append(cmds, session.PanBy(pk.axis, pk.delta))
		}
	}
	for i, k := range depthKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.depth = i + 2
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		cmds = append(cmds, session.PanBy(g.depth, 1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		cmds = append(cmds, session.PanBy(g.depth, -1))
	}
	return cmds
}

// Update handles per-frame input and advances the simulation once per tick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	for _, c := range g.commands() {
		if g.sess.Apply(c) {
			return ebiten.Termination
		}
	}
	if _, err := g.sess.Update(g.ctx); err != nil {
		g.err = err
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current window and the status panel below it.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.sess.Frame(g.w, g.h)
	g.painter.Blit(screen, frame.Grid.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, frame.Status, g.depth, g.h*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w * g.scale, g.h*g.scale + g.hud.Height()
}
