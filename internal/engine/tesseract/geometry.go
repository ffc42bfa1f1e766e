package tesseract

import "github.com/Faultbox/tesseract/pkg/math"

// VertexCount is the number of hypercube vertices.
const VertexCount = 16

// FaceCount is the number of quads in Faces.
const FaceCount = 23

// canonicalVertices is the unrotated hypercube. Index bits from high to
// low select X, Y, Z, W; a clear bit means +1.
var canonicalVertices = [VertexCount]math.Vec4{
	{X: 1, Y: 1, Z: 1, W: 1},
	{X: 1, Y: 1, Z: 1, W: -1},
	{X: 1, Y: 1, Z: -1, W: 1},
	{X: 1, Y: 1, Z: -1, W: -1},
	{X: 1, Y: -1, Z: 1, W: 1},
	{X: 1, Y: -1, Z: 1, W: -1},
	{X: 1, Y: -1, Z: -1, W: 1},
	{X: 1, Y: -1, Z: -1, W: -1},
	{X: -1, Y: 1, Z: 1, W: 1},
	{X: -1, Y: 1, Z: 1, W: -1},
	{X: -1, Y: 1, Z: -1, W: 1},
	{X: -1, Y: 1, Z: -1, W: -1},
	{X: -1, Y: -1, Z: 1, W: 1},
	{X: -1, Y: -1, Z: 1, W: -1},
	{X: -1, Y: -1, Z: -1, W: 1},
	{X: -1, Y: -1, Z: -1, W: -1},
}

// CanonicalVertices returns a copy of the unrotated vertex table.
func CanonicalVertices() [VertexCount]math.Vec4 {
	return canonicalVertices
}

// Face is a quad given as four indices into the vertex table.
type Face [4]int

// Faces is the fixed quad table drawn for the hypercube. It is kept
// verbatim, including its vertex ordering, because the tessellation and
// therefore the rendered silhouette depend on it.
var Faces = [FaceCount]Face{
	{0, 1, 5, 4},
	{0, 2, 6, 4},
	{0, 8, 12, 4},
	{0, 2, 3, 1},
	{0, 1, 9, 8},
	{0, 2, 10, 8},
	{1, 3, 7, 5},
	{1, 9, 13, 5},
	{1, 3, 9, 11},
	{2, 3, 7, 6},
	{2, 3, 10, 11},
	{2, 10, 14, 6},
	{3, 11, 15, 7},
	{4, 12, 13, 5},
	{4, 6, 14, 12},
	{4, 6, 7, 5},
	{5, 7, 15, 13},
	{6, 7, 14, 15},
	{8, 10, 14, 12},
	{8, 9, 13, 12},
	{8, 9, 10, 11},
	{9, 11, 15, 13},
	{10, 11, 15, 14},
}
