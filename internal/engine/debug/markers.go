package debug

import "github.com/soypat/geometry/ms3"

// MarkerVertexCount is the number of line vertices drawn per marker.
const MarkerVertexCount = 6

// VertexMarkers draws a small axis-aligned cross at every point.
// size is the full length of each arm.
func VertexMarkers(points []ms3.Vec, size float32, c Color) []LineVertex {
	h := size / 2
	axes := [3]ms3.Vec{{X: h}, {Y: h}, {Z: h}}

	out := make([]LineVertex, 0, len(points)*MarkerVertexCount)
	for _, p := range points {
		for _, a := range axes {
			out = append(out,
				lineVertex(ms3.Sub(p, a), c),
				lineVertex(ms3.Add(p, a), c),
			)
		}
	}
	return out
}

// Overlay combines vertex markers and the bounds wireframe into one line list.
func Overlay(points []ms3.Vec, bounds ms3.Box, markerSize float32) []LineVertex {
	lines := VertexMarkers(points, markerSize, MarkerColor)
	return append(lines, BoundsWireframe(bounds, 0, BoundsColor)...)
}
