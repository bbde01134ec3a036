//go:build ebiten

package render

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"christmas-snake/internal/core"
)

// Backend draws flat rectangles on an ebiten image through a Kage program.
type Backend struct {
	lifecycle

	programs *ProgramCache
	rect     *Program
	current  *Program
	switches int

	vp     Viewport
	target *ebiten.Image

	quad    [6]mgl32.Vec3
	ndc     [6]mgl32.Vec2
	scratch mgl32.Mat4
	verts   []ebiten.Vertex
	indices []uint16
	opts    ebiten.DrawTrianglesShaderOptions

	clearColor color.RGBA
}

// NewBackend returns an uninitialized backend.
func NewBackend() *Backend {
	return &Backend{programs: NewProgramCache(), clearColor: Black.RGBA()}
}

// Init compiles the rectangle program and uploads the unit quad. A compile
// failure is returned with the compiler diagnostic and leaves the backend
// uninitialized.
func (b *Backend) Init() error {
	switch b.State() {
	case StateReady:
		return nil
	case StateReleased:
		return fmt.Errorf("%w: init after release", ErrNotReady)
	}
	p, err := b.programs.Get(rectProgram, rectShaderSrc, colorUniform)
	if err != nil {
		return err
	}
	b.rect = p
	b.quad = UnitQuad()
	b.verts = make([]ebiten.Vertex, len(b.quad))
	b.indices = make([]uint16, len(b.quad))
	for i := range b.verts {
		b.verts[i].ColorR, b.verts[i].ColorG, b.verts[i].ColorB, b.verts[i].ColorA = 1, 1, 1, 1
		b.indices[i] = uint16(i)
	}
	b.scratch = mgl32.Ident4()
	b.markReady()
	core.Logger().Info("render backend ready", "program", p.Name)
	return nil
}

// Configure computes the render space transform for a logical surface.
func (b *Backend) Configure(width, height int) {
	b.vp = NewViewport(width, height)
}

// Begin selects the image the following draws target. A sub-image keeps its
// offset inside the parent.
func (b *Backend) Begin(target *ebiten.Image) {
	b.target = target
}

// Clear fills the target with the clear colour and resets the scratch transform.
func (b *Backend) Clear() {
	b.mustBeReady("Clear")
	b.scratch = mgl32.Ident4()
	if b.target != nil {
		b.target.Fill(b.clearColor)
	}
}

// DrawRect fills a rectangle of size centred at center, both in logical pixels.
func (b *Backend) DrawRect(c Color, center, size mgl32.Vec3) {
	b.mustBeReady("DrawRect")
	if b.target == nil {
		return
	}
	b.use(b.rect)

	b.scratch = b.vp.RectTransform(center, size)
	TransformQuad(&b.ndc, &b.quad, b.scratch)
	bounds := b.target.Bounds()
	tw, th := float32(bounds.Dx()), float32(bounds.Dy())
	ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)
	for i, p := range b.ndc {
		x, y := ToPixels(p, tw, th)
		b.verts[i].DstX, b.verts[i].DstY = ox+x, oy+y
	}

	b.current.uniforms[colorUniform] = []float32{c.R, c.G, c.B}
	b.opts.Uniforms = b.current.uniforms
	b.target.DrawTrianglesShader(b.verts, b.indices, b.current.shader, &b.opts)
}

// use makes p the current program, counting actual switches.
func (b *Backend) use(p *Program) {
	if b.current == p {
		return
	}
	b.current = p
	b.switches++
	core.Logger().Debug("program switch", "program", p.Name, "switches", b.switches)
}

// ProgramSwitches returns how many times the bound program changed.
func (b *Backend) ProgramSwitches() int { return b.switches }

// Release deallocates GPU resources. The backend cannot be reused afterwards.
func (b *Backend) Release() {
	if b.State() == StateReleased {
		return
	}
	b.programs.Release()
	b.rect, b.current, b.target = nil, nil, nil
	b.markReleased()
}
