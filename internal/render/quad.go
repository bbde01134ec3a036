package render

import "github.com/go-gl/mathgl/mgl32"

// unitQuad is the retained vertex buffer: two triangles spanning [-1, 1],
// drawn as six vertices without an index buffer.
var unitQuad = [6]mgl32.Vec3{
	{-1, 1, 0},
	{-1, -1, 0},
	{1, -1, 0},
	{1, -1, 0},
	{-1, 1, 0},
	{1, 1, 0},
}

// UnitQuad returns a copy of the six quad vertices.
func UnitQuad() [6]mgl32.Vec3 { return unitQuad }

// TransformQuad applies m to each vertex of quad and writes the resulting NDC
// positions into dst.
func TransformQuad(dst *[6]mgl32.Vec2, quad *[6]mgl32.Vec3, m mgl32.Mat4) {
	for i, v := range quad {
		p := m.Mul4x1(v.Vec4(1))
		dst[i] = mgl32.Vec2{p[0] / p[3], p[1] / p[3]}
	}
}

// Bounds returns the axis-aligned NDC bounds of a transformed quad.
func Bounds(ndc *[6]mgl32.Vec2) (lo, hi mgl32.Vec2) {
	lo, hi = ndc[0], ndc[0]
	for _, p := range ndc[1:] {
		for axis := 0; axis < 2; axis++ {
			lo[axis] = min(lo[axis], p[axis])
			hi[axis] = max(hi[axis], p[axis])
		}
	}
	return lo, hi
}
