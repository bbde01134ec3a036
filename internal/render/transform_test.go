package render

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func TestViewportMapsCorners(t *testing.T) {
	vp := NewViewport(800, 600)
	cases := []struct {
		in   mgl32.Vec3
		want mgl32.Vec2
	}{
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec2{-1, -1}},
		{mgl32.Vec3{800, 600, 0}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{400, 300, 0}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{800, 0, 0}, mgl32.Vec2{1, -1}},
	}
	for _, tc := range cases {
		got := mgl32.TransformCoordinate(tc.in, vp.RenderSpace())
		if !approx(got.X(), tc.want.X()) || !approx(got.Y(), tc.want.Y()) {
			t.Fatalf("%v: got %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestCellRectCoversCell(t *testing.T) {
	center, size := CellRect(20, 15, 20)
	if center != (mgl32.Vec3{410, 310, 0}) {
		t.Fatalf("center %v", center)
	}
	if size != (mgl32.Vec3{19, 19, 1}) {
		t.Fatalf("size %v", size)
	}

	vp := NewViewport(800, 600)
	quad := UnitQuad()
	var ndc [6]mgl32.Vec2
	TransformQuad(&ndc, &quad, vp.RectTransform(center, size))
	lo, hi := Bounds(&ndc)

	x0, y1 := ToPixels(lo, 800, 600)
	x1, y0 := ToPixels(hi, 800, 600)
	if !approx(x0, 400.5) || !approx(x1, 419.5) {
		t.Fatalf("x span %v..%v", x0, x1)
	}
	// Logical y 300.5..319.5 measured from the bottom edge.
	if !approx(y0, 280.5) || !approx(y1, 299.5) {
		t.Fatalf("y span %v..%v", y0, y1)
	}
}

func TestUnitQuadSpansClipSquare(t *testing.T) {
	quad := UnitQuad()
	var ndc [6]mgl32.Vec2
	TransformQuad(&ndc, &quad, mgl32.Ident4())
	lo, hi := Bounds(&ndc)
	if lo != (mgl32.Vec2{-1, -1}) || hi != (mgl32.Vec2{1, 1}) {
		t.Fatalf("bounds %v %v", lo, hi)
	}
}

func TestColorRGBAClamps(t *testing.T) {
	c := Color{R: 2, G: -1, B: 0.5}.RGBA()
	if c.R != 255 || c.G != 0 || c.A != 255 {
		t.Fatalf("rgba %+v", c)
	}
	if Red.RGBA().R != 255 || Green.RGBA().G != 255 {
		t.Fatal("palette")
	}
}

func TestDrawBeforeInitPanics(t *testing.T) {
	s := NewSnapshot()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNotReady) {
			t.Fatalf("recover %v", r)
		}
	}()
	s.Clear()
}
