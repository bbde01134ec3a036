//go:build ebiten

package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Program is a compiled shader plus the uniform table resolved for it.
type Program struct {
	Name     string
	shader   *ebiten.Shader
	uniforms map[string]any
}

// ProgramCache compiles each named program once and hands out the cached
// result afterwards.
type ProgramCache struct {
	programs map[string]*Program
	compiles int
}

// NewProgramCache returns an empty cache.
func NewProgramCache() *ProgramCache {
	return &ProgramCache{programs: make(map[string]*Program)}
}

// Get returns the program registered under name, compiling src on first use.
// Compiler diagnostics are carried in the returned error.
func (c *ProgramCache) Get(name string, src []byte, uniforms ...string) (*Program, error) {
	if p, ok := c.programs[name]; ok {
		return p, nil
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile program %q: %w", name, err)
	}
	c.compiles++
	p := &Program{Name: name, shader: shader, uniforms: make(map[string]any, len(uniforms))}
	for _, u := range uniforms {
		p.uniforms[u] = nil
	}
	c.programs[name] = p
	return p, nil
}

// Compiles returns how many programs were compiled, cache hits excluded.
func (c *ProgramCache) Compiles() int { return c.compiles }

// Release deallocates every cached program.
func (c *ProgramCache) Release() {
	for name, p := range c.programs {
		p.shader.Deallocate()
		delete(c.programs, name)
	}
}
