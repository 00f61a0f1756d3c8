//go:build ebiten

package ui

import (
	"image/color"

	"hyperlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 14
	panelLines   = 10
)

// HUD renders the status panel below the simulation view.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD spanning the given pixel width.
func NewHUD(width int) *HUD {
	if width < 1 {
		width = 1
	}
	return &HUD{width: width}
}

// Height returns the panel height in pixels.
func (h *HUD) Height() int {
	if h == nil {
		return 0
	}
	return 2*panelPadding + panelLines*lineHeight
}

// Draw paints the panel at vertical offset offsetY.
func (h *HUD) Draw(screen *ebiten.Image, snap core.ParameterSnapshot, depth, offsetY int) {
	if h == nil {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, h.Height())
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	y := panelPadding + 11
	for i, line := range Lines(snap, depth) {
		if i >= panelLines {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
