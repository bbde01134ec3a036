//go:build ebiten

package ui

import (
	"image/color"

	"christmas-snake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel in the top-right corner of the board.
// It starts hidden and is toggled with Tab.
type HUD struct {
	src     parameterProvider
	width   int
	visible bool
	lines   []string
	panel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided source and panel width.
func NewHUD(src parameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{src: src, width: width}
}

// SetSource swaps the parameter source, e.g. after a restart.
func (h *HUD) SetSource(src parameterProvider) {
	if h != nil {
		h.src = src
	}
}

// Update handles the toggle key and refreshes the cached lines.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.visible = !h.visible
	}
	if !h.visible || h.src == nil {
		return
	}
	h.lines = h.src.Parameters().Lines()
}

// Draw paints the panel when visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.width <= 0 || len(h.lines) == 0 {
		return
	}
	r := panelRect(screen.Bounds(), h.width, len(h.lines))
	if r.Empty() {
		return
	}
	if h.panel == nil || h.panel.Bounds().Size() != r.Size() {
		h.panel = ebiten.NewImage(r.Dx(), r.Dy())
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})

	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := panelPad + glyphH + i*lineHeight
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if len(line) > 0 && line[0] != ' ' {
			col = color.RGBA{R: 160, G: 200, B: 160, A: 255}
		}
		text.Draw(h.panel, line, face, panelPad, y, col)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	screen.DrawImage(h.panel, op)
}

