// Package tesseract rotates the 16 vertices of a 4D hypercube through six
// planar rotations, drops the W axis and tessellates the result into a
// flat triangle mesh.
package tesseract

import (
	"fmt"
	"strings"
)

// Plane identifies one of the six coordinate planes of 4D space.
type Plane int

// Rotation planes. The zero value is XY.
const (
	XY Plane = iota
	XZ
	XW
	YZ
	YW
	ZW
)

// PlaneCount is the number of rotation planes in 4D.
const PlaneCount = 6

var planeNames = [PlaneCount]string{"XY", "XZ", "XW", "YZ", "YW", "ZW"}

// Planes lists every plane in declaration order.
func Planes() [PlaneCount]Plane {
	return [PlaneCount]Plane{XY, XZ, XW, YZ, YW, ZW}
}

// String returns the plane name, e.g. "YW".
func (p Plane) String() string {
	if p < 0 || int(p) >= PlaneCount {
		return fmt.Sprintf("Plane(%d)", int(p))
	}
	return planeNames[p]
}

// ParsePlane parses a plane name. Case is ignored.
func ParsePlane(s string) (Plane, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range planeNames {
		if n == name {
			return Plane(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rotation plane %q", s)
}
