package tesseract

import (
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"

	"github.com/Faultbox/tesseract/pkg/math"
)

// Each quad is covered by four triangles, 12 vertex entries.
const (
	TrianglesPerFace = 4
	VerticesPerFace  = TrianglesPerFace * 3
)

// Per-triangle texture coordinates: two bottom corners and the top center.
var triangleUVs = [3]ms2.Vec{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: 0.5, Y: 1},
}

// Mesh is a non-indexed triangle list. Triangles[i] == i for every entry;
// the slice exists so renderers that want an index buffer can take it as is.
type Mesh struct {
	Positions []ms3.Vec
	Triangles []uint32
	UVs       []ms2.Vec
	Normals   []ms3.Vec
	Bounds    ms3.Box
}

// VertexCount returns the number of triangle vertex entries.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Build tessellates faces over the rotated vertices.
//
// Every quad (p1, p2, p3, p4) becomes (p1,p3,p2), (p1,p2,p4), (p2,p3,p4)
// and (p1,p4,p3). Both diagonals are covered in both windings so the quad
// stays visible from any side after an arbitrary 4D rotation. Vertices are
// not shared between faces.
func Build(rotated [VertexCount]math.Vec4, faces []Face) *Mesh {
	n := len(faces) * VerticesPerFace
	m := &Mesh{
		Positions: make([]ms3.Vec, 0, n),
		Triangles: make([]uint32, 0, n),
		UVs:       make([]ms2.Vec, 0, n),
	}

	for _, f := range faces {
		p1 := Position(rotated[f[0]])
		p2 := Position(rotated[f[1]])
		p3 := Position(rotated[f[2]])
		p4 := Position(rotated[f[3]])

		base := uint32(len(m.Positions))
		m.Positions = append(m.Positions,
			p1, p3, p2,
			p1, p2, p4,
			p2, p3, p4,
			p1, p4, p3,
		)
		for i := range uint32(VerticesPerFace) {
			m.Triangles = append(m.Triangles, base+i)
		}
		for range TrianglesPerFace {
			m.UVs = append(m.UVs, triangleUVs[:]...)
		}
	}

	m.RecalculateNormals()
	m.RecalculateBounds()
	return m
}

// RecalculateNormals assigns each triangle's face normal to its three
// vertices. Since no vertex is shared this yields flat shading. Degenerate
// triangles get a zero normal.
func (m *Mesh) RecalculateNormals() {
	if cap(m.Normals) < len(m.Positions) {
		m.Normals = make([]ms3.Vec, len(m.Positions))
	}
	m.Normals = m.Normals[:len(m.Positions)]

	for t := 0; t+2 < len(m.Triangles); t += 3 {
		i0, i1, i2 := m.Triangles[t], m.Triangles[t+1], m.Triangles[t+2]
		a, b, c := m.Positions[i0], m.Positions[i1], m.Positions[i2]

		n := ms3.Cross(ms3.Sub(b, a), ms3.Sub(c, a))
		if ms3.Norm(n) < 1e-6 {
			n = ms3.Vec{}
		} else {
			n = ms3.Unit(n)
		}
		m.Normals[i0] = n
		m.Normals[i1] = n
		m.Normals[i2] = n
	}
}

// RecalculateBounds computes the axis-aligned box around all positions.
func (m *Mesh) RecalculateBounds() {
	if len(m.Positions) == 0 {
		m.Bounds = ms3.Box{}
		return
	}
	box := ms3.Box{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		box.Min = ms3.MinElem(box.Min, p)
		box.Max = ms3.MaxElem(box.Max, p)
	}
	m.Bounds = box
}
