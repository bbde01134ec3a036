package render

import "github.com/go-gl/mathgl/mgl32"

// Viewport maps logical pixel space onto normalized device coordinates.
type Viewport struct {
	width, height float32
	renderSpace   mgl32.Mat4
}

// NewViewport computes the render space transform for a logical surface of
// width x height pixels: translate by (-1,-1) then scale by (2/w, 2/h).
// Applied to a point the scale happens first, so (0,0) lands on (-1,-1) and
// (w,h) on (1,1).
func NewViewport(width, height int) Viewport {
	w, h := float32(width), float32(height)
	return Viewport{
		width:       w,
		height:      h,
		renderSpace: mgl32.Translate3D(-1, -1, 0).Mul4(mgl32.Scale3D(2/w, 2/h, 1)),
	}
}

// RenderSpace returns the base transform shared by every draw.
func (v Viewport) RenderSpace() mgl32.Mat4 { return v.renderSpace }

// RectTransform composes renderSpace * translate(center) * scale(size) *
// scale(0.5, 0.5, 1). The half scale is there because the unit quad spans
// [-1, 1].
func (v Viewport) RectTransform(center, size mgl32.Vec3) mgl32.Mat4 {
	return v.renderSpace.
		Mul4(mgl32.Translate3D(center.X(), center.Y(), center.Z())).
		Mul4(mgl32.Scale3D(size.X(), size.Y(), size.Z())).
		Mul4(mgl32.Scale3D(0.5, 0.5, 1))
}

// ToPixels maps an NDC point onto a target of tw x th pixels. NDC +Y is up,
// target +Y is down.
func ToPixels(ndc mgl32.Vec2, tw, th float32) (x, y float32) {
	return (ndc.X() + 1) / 2 * tw, (1 - ndc.Y()) / 2 * th
}

// CellRect returns the centre and size of grid cell (x, y) in logical pixels.
// Cells are drawn one pixel smaller than cellSize to leave a gutter.
func CellRect(x, y, cellSize int) (center, size mgl32.Vec3) {
	cs := float32(cellSize)
	center = mgl32.Vec3{float32(x)*cs + cs/2, float32(y)*cs + cs/2, 0}
	size = mgl32.Vec3{cs - 1, cs - 1, 1}
	return center, size
}
