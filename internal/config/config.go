// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/Faultbox/tesseract/internal/engine/tesseract"
)

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Tesseract TesseractConfig `yaml:"tesseract"`
	Camera    CameraConfig    `yaml:"camera"`
	Debug     DebugConfig     `yaml:"debug"`
	Logging   LoggingConfig   `yaml:"logging"`

	// path is the file this config was loaded from, if any.
	path string
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	// TickRate is the number of auto-rotation ticks per second.
	TickRate float32 `yaml:"tick_rate"`
}

// PlaneAngles holds one value in degrees per rotation plane.
type PlaneAngles struct {
	XY float32 `yaml:"xy"`
	XZ float32 `yaml:"xz"`
	XW float32 `yaml:"xw"`
	YZ float32 `yaml:"yz"`
	YW float32 `yaml:"yw"`
	ZW float32 `yaml:"zw"`
}

// TesseractConfig holds rotation settings.
type TesseractConfig struct {
	RotationOrder []string    `yaml:"rotation_order"`
	InitialAngles PlaneAngles `yaml:"initial_angles"`
	Speeds        PlaneAngles `yaml:"speeds"` // degrees per tick
	Frozen        bool        `yaml:"frozen"`
	ShowGizmos    bool        `yaml:"show_gizmos"`
}

// CameraConfig holds viewer camera settings.
type CameraConfig struct {
	Z            float32 `yaml:"z"` // camera position on the Z axis, looking at the origin
	Orthographic bool    `yaml:"orthographic"`
	ZoomStep     float32 `yaml:"zoom_step"`
	FOV          float32 `yaml:"fov"` // vertical field of view in degrees
}

// DebugConfig holds debugging aids.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the standard rotation speeds and order.
func Default() *Config {
	opts := tesseract.DefaultOptions()

	return &Config{
		Graphics: GraphicsConfig{
			Width:    1280,
			Height:   720,
			VSync:    true,
			TickRate: 60,
		},
		Tesseract: TesseractConfig{
			RotationOrder: orderNames(opts.Order),
			Speeds:        fromAngles(opts.Speeds),
		},
		Camera: CameraConfig{
			Z:        -10,
			ZoomStep: 2,
			FOV:      60,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Options converts the rotation settings into tesseract options.
func (c *Config) Options() (tesseract.Options, error) {
	order, err := tesseract.ParseOrder(c.Tesseract.RotationOrder)
	if err != nil {
		return tesseract.Options{}, err
	}
	return tesseract.Options{
		Order:  order,
		Angles: c.Tesseract.InitialAngles.toAngles(),
		Speeds: c.Tesseract.Speeds.toAngles(),
		Frozen: c.Tesseract.Frozen,
	}, nil
}

func (p PlaneAngles) toAngles() tesseract.Angles {
	var a tesseract.Angles
	a.Set(tesseract.XY, p.XY)
	a.Set(tesseract.XZ, p.XZ)
	a.Set(tesseract.XW, p.XW)
	a.Set(tesseract.YZ, p.YZ)
	a.Set(tesseract.YW, p.YW)
	a.Set(tesseract.ZW, p.ZW)
	return a
}

func fromAngles(a tesseract.Angles) PlaneAngles {
	return PlaneAngles{
		XY: a.Get(tesseract.XY),
		XZ: a.Get(tesseract.XZ),
		XW: a.Get(tesseract.XW),
		YZ: a.Get(tesseract.YZ),
		YW: a.Get(tesseract.YW),
		ZW: a.Get(tesseract.ZW),
	}
}

func orderNames(o tesseract.Order) []string {
	names := make([]string, len(o))
	for i, p := range o {
		names[i] = p.String()
	}
	return names
}
