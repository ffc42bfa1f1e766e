// Package camera provides the viewer camera used to look at the projected tesseract.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/tesseract/pkg/math"
)

// orthoOffset shifts the camera distance into the orthographic half-height.
const orthoOffset = 4

// minOrthoSize keeps the orthographic volume from collapsing when zoomed past the origin.
const minOrthoSize = 0.1

// ViewCamera sits on the -Z axis and looks at the origin.
type ViewCamera struct {
	// Z is the camera position along the Z axis (negative, in front of the origin).
	Z float32

	Orthographic bool

	// ZoomStep is how far one wheel notch moves the camera.
	ZoomStep float32

	// FOV is the vertical field of view in degrees for perspective mode.
	FOV float32

	Near float32
	Far  float32
}

// NewViewCamera creates a camera at the given Z position.
func NewViewCamera(z float32) *ViewCamera {
	return &ViewCamera{
		Z:        z,
		ZoomStep: 2,
		FOV:      60,
		Near:     0.1,
		Far:      100,
	}
}

// Zoom moves the camera along Z by wheel notches.
func (c *ViewCamera) Zoom(wheel float32) {
	c.Z += wheel * c.ZoomStep
}

// ToggleProjection flips between perspective and orthographic projection.
// Returns the new orthographic state.
func (c *ViewCamera) ToggleProjection() bool {
	c.Orthographic = !c.Orthographic
	return c.Orthographic
}

// OrthoSize returns the orthographic half-height derived from the camera distance.
func (c *ViewCamera) OrthoSize() float32 {
	size := -(c.Z + orthoOffset)
	if size < minOrthoSize {
		return minOrthoSize
	}
	return size
}

// Position returns the camera position in world space.
func (c *ViewCamera) Position() math.Vec3 {
	return math.Vec3{Z: c.Z}
}

// flipZ converts the left-handed world (+Z into the screen) to GL's right-handed eye space.
var flipZ = math.Scale(1, 1, -1)

// ViewMatrix returns the view matrix looking from the camera at the origin.
// World +X is screen right and +Z points away from the viewer.
func (c *ViewCamera) ViewMatrix() math.Mat4 {
	eye := flipZ.TransformVec3(c.Position())
	up := math.Vec3{Y: 1}
	return math.LookAt(eye, math.Vec3{}, up).Mul(flipZ)
}

// ProjectionMatrix returns the projection matrix for the given aspect ratio.
func (c *ViewCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	if c.Orthographic {
		h := c.OrthoSize()
		w := h * aspect
		return math.Ortho(-w, w, -h, h, c.Near, c.Far)
	}
	return math.Perspective(c.FOV*math32.Pi/180, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *ViewCamera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

// ToScreen maps a world point to pixel coordinates in a width x height viewport
// with the origin at the top left. ok is false when the point is outside the clip volume.
func (c *ViewCamera) ToScreen(p math.Vec3, width, height float32) (x, y float32, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	ndc := c.ViewProjection(width / height).TransformVec3(p)
	if ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, false
	}
	x = (ndc.X + 1) / 2 * width
	y = (1 - ndc.Y) / 2 * height
	return x, y, true
}
