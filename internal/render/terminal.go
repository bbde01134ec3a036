package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// Terminal draws rectangles as blocks of character cells on a tcell screen.
// A cell is filled when its centre falls inside the rectangle.
type Terminal struct {
	lifecycle

	screen     tcell.Screen
	cols, rows int
	vp         Viewport
	quad       [6]mgl32.Vec3
	ndc        [6]mgl32.Vec2
	block      rune
}

// NewTerminal returns an uninitialized backend that maps the logical surface
// onto the top-left cols x rows cells of screen.
func NewTerminal(screen tcell.Screen, cols, rows int) *Terminal {
	return &Terminal{screen: screen, cols: cols, rows: rows, block: '█'}
}

// Init acquires the screen.
func (t *Terminal) Init() error {
	switch t.State() {
	case StateReady:
		return nil
	case StateReleased:
		return fmt.Errorf("%w: init after release", ErrNotReady)
	}
	if t.screen == nil {
		return fmt.Errorf("terminal backend: nil screen")
	}
	if t.cols <= 0 || t.rows <= 0 {
		return fmt.Errorf("terminal backend: empty region %dx%d", t.cols, t.rows)
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	t.quad = UnitQuad()
	t.markReady()
	return nil
}

// Configure computes the render space transform for a logical surface.
func (t *Terminal) Configure(width, height int) {
	t.vp = NewViewport(width, height)
}

// Region returns the number of columns and rows the surface is mapped to.
func (t *Terminal) Region() (cols, rows int) { return t.cols, t.rows }

// Clear blanks the screen.
func (t *Terminal) Clear() {
	t.mustBeReady("Clear")
	t.screen.Clear()
}

// DrawRect fills every cell whose centre lies inside the rectangle.
func (t *Terminal) DrawRect(c Color, center, size mgl32.Vec3) {
	t.mustBeReady("DrawRect")
	TransformQuad(&t.ndc, &t.quad, t.vp.RectTransform(center, size))
	lo, hi := Bounds(&t.ndc)

	cols, rows := float64(t.cols), float64(t.rows)
	c0 := int(math.Ceil(float64(lo.X()+1)/2*cols - 0.5))
	c1 := int(math.Floor(float64(hi.X()+1)/2*cols - 0.5))
	r0 := int(math.Ceil(float64(1-hi.Y())/2*rows - 0.5))
	r1 := int(math.Floor(float64(1-lo.Y())/2*rows - 0.5))

	rgb := c.RGBA()
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))).
		Background(tcell.ColorBlack)
	for row := max(r0, 0); row <= min(r1, t.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, t.cols-1); col++ {
			t.screen.SetContent(col, row, t.block, nil, style)
		}
	}
}

// Show flushes pending cell updates to the terminal.
func (t *Terminal) Show() {
	t.mustBeReady("Show")
	t.screen.Show()
}

// Release hands the terminal back to the shell.
func (t *Terminal) Release() {
	if t.State() == StateReleased {
		return
	}
	if t.State() == StateReady {
		t.screen.Fini()
	}
	t.markReleased()
}
