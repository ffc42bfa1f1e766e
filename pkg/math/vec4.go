package math

import "github.com/chewxy/math32"

// Vec4 is a point in 4D space.
type Vec4 struct {
	X, Y, Z, W float32
}

// Length returns the magnitude.
func (v Vec4) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// ApproxEqual reports whether every component of v and other differs by at most eps.
func (v Vec4) ApproxEqual(other Vec4, eps float32) bool {
	return math32.Abs(v.X-other.X) <= eps &&
		math32.Abs(v.Y-other.Y) <= eps &&
		math32.Abs(v.Z-other.Z) <= eps &&
		math32.Abs(v.W-other.W) <= eps
}
