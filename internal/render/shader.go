package render

// rectShaderSrc is the Kage program used to fill rectangles with a flat colour.
// Vertex positions arrive already transformed, so only the fragment stage is
// programmable.
var rectShaderSrc = []byte(`//kage:unit pixels

package main

var Color vec3

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return vec4(Color, 1)
}
`)

const (
	rectProgram  = "rect"
	colorUniform = "Color"
)
