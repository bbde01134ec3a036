package render

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"

	"christmas-snake/internal/core"
)

// Snapshot rasterizes frames in software so they can be inspected or saved
// without a window.
type Snapshot struct {
	lifecycle

	dc    *gg.Context
	vp    Viewport
	quad  [6]mgl32.Vec3
	ndc   [6]mgl32.Vec2
	clear Color
}

// NewSnapshot returns an uninitialized snapshot backend.
func NewSnapshot() *Snapshot {
	return &Snapshot{clear: Black}
}

// Init allocates a software surface of size pixels.
func (s *Snapshot) Init(size core.Size) error {
	switch s.State() {
	case StateReady:
		return nil
	case StateReleased:
		return fmt.Errorf("%w: init after release", ErrNotReady)
	}
	if size.Empty() {
		return fmt.Errorf("snapshot surface %dx%d: empty size", size.W, size.H)
	}
	s.dc = gg.NewContext(size.W, size.H)
	s.quad = UnitQuad()
	s.markReady()
	return nil
}

// Configure computes the render space transform for a logical surface.
func (s *Snapshot) Configure(width, height int) {
	s.vp = NewViewport(width, height)
}

// Clear fills the surface with the clear colour.
func (s *Snapshot) Clear() {
	s.mustBeReady("Clear")
	s.dc.ClearWithColor(gg.RGB(float64(s.clear.R), float64(s.clear.G), float64(s.clear.B)))
}

// DrawRect fills a rectangle of size centred at center, both in logical pixels.
func (s *Snapshot) DrawRect(c Color, center, size mgl32.Vec3) {
	s.mustBeReady("DrawRect")
	TransformQuad(&s.ndc, &s.quad, s.vp.RectTransform(center, size))
	lo, hi := Bounds(&s.ndc)

	tw, th := float32(s.dc.Width()), float32(s.dc.Height())
	x0, y1 := ToPixels(lo, tw, th)
	x1, y0 := ToPixels(hi, tw, th)

	s.dc.SetRGB(float64(c.R), float64(c.G), float64(c.B))
	s.dc.DrawRectangle(float64(x0), float64(y0), float64(x1-x0), float64(y1-y0))
	if err := s.dc.Fill(); err != nil {
		core.Logger().Warn("snapshot fill failed", "err", err)
	}
}

// Image returns the current frame.
func (s *Snapshot) Image() image.Image {
	s.mustBeReady("Image")
	if err := s.dc.FlushGPU(); err != nil {
		core.Logger().Warn("snapshot flush failed", "err", err)
	}
	return s.dc.Image()
}

// SavePNG writes the current frame to path.
func (s *Snapshot) SavePNG(path string) error {
	s.mustBeReady("SavePNG")
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

// Release frees the surface.
func (s *Snapshot) Release() {
	if s.State() == StateReleased {
		return
	}
	if s.dc != nil {
		_ = s.dc.Close()
		s.dc = nil
	}
	s.markReleased()
}
