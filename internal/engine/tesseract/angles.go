package tesseract

import "github.com/chewxy/math32"

// Angles holds one rotation angle in degrees per plane.
//
// Values are accumulators and are never normalized; the trigonometric
// functions take care of periodicity. Use Wrapped for display.
type Angles [PlaneCount]float32

// Get returns the angle of plane p.
func (a *Angles) Get(p Plane) float32 {
	return a[p]
}

// Set replaces the angle of plane p.
func (a *Angles) Set(p Plane, deg float32) {
	a[p] = deg
}

// Accumulate adds delta degrees to plane p.
func (a *Angles) Accumulate(p Plane, delta float32) {
	a[p] += delta
}

// Wrapped returns the angle of plane p mapped into [0, 360).
func (a *Angles) Wrapped(p Plane) float32 {
	return Wrap360(a[p])
}

// Wrap360 maps deg into [0, 360).
func Wrap360(deg float32) float32 {
	w := math32.Mod(deg, 360)
	if w < 0 {
		w += 360
	}
	// Mod of a tiny negative value plus 360 rounds up to 360 in float32.
	if w >= 360 {
		w = 0
	}
	return w
}
