package tesseract

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"

	"github.com/Faultbox/tesseract/pkg/math"
)

const deg2Rad = math32.Pi / 180

// Project rotates original through every plane of order and returns the
// rotated vertices in the same index order. It always starts from original,
// so the result depends only on the angles and never on how many frames
// have been drawn.
func Project(original [VertexCount]math.Vec4, angles *Angles, order Order) [VertexCount]math.Vec4 {
	rotated := original
	for _, p := range order {
		sin, cos := math32.Sincos(angles.Get(p) * deg2Rad)
		for i := range rotated {
			rotated[i] = RotatePlane(rotated[i], p, sin, cos)
		}
	}
	return rotated
}

// RotatePlane rotates v inside plane p given the sine and cosine of the angle.
//
// YW and ZW turn the opposite way from the other four planes. The tumbling
// motion of the rendered hypercube depends on this, so it must stay.
func RotatePlane(v math.Vec4, p Plane, sin, cos float32) math.Vec4 {
	switch p {
	case XY:
		v.X, v.Y = cos*v.X+sin*v.Y, -sin*v.X+cos*v.Y
	case XZ:
		v.X, v.Z = cos*v.X+sin*v.Z, -sin*v.X+cos*v.Z
	case XW:
		v.X, v.W = cos*v.X+sin*v.W, -sin*v.X+cos*v.W
	case YZ:
		v.Y, v.Z = cos*v.Y+sin*v.Z, -sin*v.Y+cos*v.Z
	case YW:
		v.Y, v.W = cos*v.Y-sin*v.W, sin*v.Y+cos*v.W
	case ZW:
		v.Z, v.W = cos*v.Z-sin*v.W, sin*v.Z+cos*v.W
	}
	return v
}

// Position drops W, projecting v orthographically into render space.
func Position(v math.Vec4) ms3.Vec {
	return ms3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Positions drops W from every vertex.
func Positions(vs [VertexCount]math.Vec4) []ms3.Vec {
	out := make([]ms3.Vec, VertexCount)
	for i, v := range vs {
		out[i] = Position(v)
	}
	return out
}
