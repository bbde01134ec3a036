package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"christmas-snake/internal/render"
)

// Renderer receives the draw calls of one frame.
type Renderer interface {
	Clear()
	DrawRect(c render.Color, center, size mgl32.Vec3)
}
