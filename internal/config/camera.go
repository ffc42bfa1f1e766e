package config

import "github.com/Faultbox/tesseract/internal/engine/camera"

// NewCamera creates a view camera from the camera section.
// Zero zoom step and FOV keep the camera defaults.
func (c CameraConfig) NewCamera() *camera.ViewCamera {
	cam := camera.NewViewCamera(c.Z)
	cam.Orthographic = c.Orthographic
	if c.ZoomStep != 0 {
		cam.ZoomStep = c.ZoomStep
	}
	if c.FOV != 0 {
		cam.FOV = c.FOV
	}
	return cam
}
