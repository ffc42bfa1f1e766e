// Package debug builds line overlays and screenshots for inspecting the projection.
package debug

import "github.com/soypat/geometry/ms3"

// BoundsVertexCount is the number of line vertices in a box wireframe (12 edges x 2).
const BoundsVertexCount = 24

// Color is an RGB line color.
type Color struct {
	R, G, B float32
}

var (
	BoundsColor = Color{0.9, 0.8, 0.2}
	MarkerColor = Color{0.2, 0.9, 1.0}
)

// LineVertex is one endpoint of an overlay line segment.
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

func lineVertex(p ms3.Vec, c Color) LineVertex {
	return LineVertex{X: p.X, Y: p.Y, Z: p.Z, R: c.R, G: c.G, B: c.B}
}

// BoundsWireframe returns the 12 edges of box as line vertex pairs.
// padding grows the box on every side.
func BoundsWireframe(box ms3.Box, padding float32, c Color) []LineVertex {
	lo := ms3.AddScalar(-padding, box.Min)
	hi := ms3.AddScalar(padding, box.Max)

	corner := func(x, y, z bool) ms3.Vec {
		v := lo
		if x {
			v.X = hi.X
		}
		if y {
			v.Y = hi.Y
		}
		if z {
			v.Z = hi.Z
		}
		return v
	}

	edges := [12][2][3]bool{
		// Bottom
		{{false, false, false}, {true, false, false}},
		{{true, false, false}, {true, false, true}},
		{{true, false, true}, {false, false, true}},
		{{false, false, true}, {false, false, false}},
		// Top
		{{false, true, false}, {true, true, false}},
		{{true, true, false}, {true, true, true}},
		{{true, true, true}, {false, true, true}},
		{{false, true, true}, {false, true, false}},
		// Vertical
		{{false, false, false}, {false, true, false}},
		{{true, false, false}, {true, true, false}},
		{{true, false, true}, {true, true, true}},
		{{false, false, true}, {false, true, true}},
	}

	out := make([]LineVertex, 0, BoundsVertexCount)
	for _, e := range edges {
		a, b := e[0], e[1]
		out = append(out,
			lineVertex(corner(a[0], a[1], a[2]), c),
			lineVertex(corner(b[0], b[1], b[2]), c),
		)
	}
	return out
}
