//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"christmas-snake/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the score and the game over banner on top of the board.
type Overlay struct {
	showScore bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{showScore: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the score line with F1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.showScore = !o.showScore
	}
}

// Draw renders the overlay for st onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, st game.State) {
	face := basicfont.Face7x13
	bounds := screen.Bounds()
	if o.showScore {
		text.Draw(screen, scoreLine(st), face, bounds.Min.X+panelPad, bounds.Min.Y+panelPad+glyphH, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}

	lines := bannerLines(st)
	if len(lines) == 0 {
		return
	}
	o.fill(screen, bounds, color.RGBA{A: 150})

	h := len(lines) * lineHeight
	top := bounds.Min.Y + (bounds.Dy()-h)/2
	for i, line := range lines {
		row := image.Rect(bounds.Min.X, top+i*lineHeight, bounds.Max.X, top+(i+1)*lineHeight)
		at := centered(row, line)
		col := color.RGBA{R: 200, G: 200, B: 210, A: 255}
		if i == 0 {
			col = color.RGBA{R: 255, G: 80, B: 80, A: 255}
		}
		text.Draw(screen, line, face, at.X, at.Y, col)
	}
}

func (o *Overlay) fill(screen *ebiten.Image, r image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
