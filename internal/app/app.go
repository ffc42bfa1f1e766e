// Package app runs the SDL2 window loop that animates and draws the tesseract.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/tesseract/internal/config"
	"github.com/Faultbox/tesseract/internal/engine/camera"
	"github.com/Faultbox/tesseract/internal/engine/debug"
	"github.com/Faultbox/tesseract/internal/engine/input"
	"github.com/Faultbox/tesseract/internal/engine/renderer"
	"github.com/Faultbox/tesseract/internal/engine/tesseract"
	"github.com/Faultbox/tesseract/internal/engine/window"
	"github.com/Faultbox/tesseract/internal/logger"
)

const (
	title = "Tesseract"
	// markerSize is the arm length of the per-vertex gizmo crosses.
	markerSize = 0.15
)

// App owns the window, renderer and tesseract state.
type App struct {
	config  *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	tess       *tesseract.Tesseract
	camera     *camera.ViewCamera
	showGizmos bool
	wireframe  bool

	screenshots         *debug.ScreenshotCapture
	screenshotRequested bool
}

// New creates the window and GL resources and initializes the tesseract.
func New(cfg *config.Config) (*App, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("tesseract options: %w", err)
	}

	a := newState(cfg, opts)
	if err := a.screenshots.SetFormat(cfg.Debug.ScreenshotFormat); err != nil {
		return nil, fmt.Errorf("screenshot format: %w", err)
	}

	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	width, height := a.window.GetSize()
	a.renderer, err = renderer.New(renderer.DefaultConfig(width, height))
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.renderer.Resize(width, height)

	a.input = input.New()

	logger.Info("app initialized",
		zap.Stringer("order", opts.Order),
		zap.Bool("frozen", opts.Frozen),
		zap.Bool("orthographic", a.camera.Orthographic),
	)
	return a, nil
}

// newState builds the window-independent part of the app.
func newState(cfg *config.Config, opts tesseract.Options) *App {
	a := &App{
		config:     cfg,
		tess:       tesseract.New(opts),
		camera:     cfg.Camera.NewCamera(),
		showGizmos: cfg.Tesseract.ShowGizmos,

		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "tesseract"),
	}
	a.tess.Initialize()
	return a
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents(a.input.Events())

		a.update(dt)
		a.render()
		if a.screenshotRequested {
			a.screenshotRequested = false
			a.captureScreenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.window.SetTitle(fmt.Sprintf("%s - %d fps", title, frameCount))
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases GL and window resources.
func (a *App) Close() {
	logger.Info("closing app")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvents(events []input.Event) {
	for _, event := range events {
		switch event.Type {
		case input.EventWindowResize:
			if a.renderer != nil {
				a.renderer.Resize(a.window.GetSize())
			}
		case input.EventKeyDown:
			a.handleKey(event.Key)
		case input.EventMouseWheel:
			a.camera.Zoom(event.Wheel)
			logger.Debug("zoom", zap.Float32("z", a.camera.Z))
		}
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_R:
		frozen := a.tess.ToggleFreeze()
		logger.Info("rotation toggled", zap.Bool("frozen", frozen))
	case sdl.SCANCODE_SPACE:
		ortho := a.camera.ToggleProjection()
		logger.Info("projection toggled", zap.Bool("orthographic", ortho))
	case sdl.SCANCODE_G:
		a.showGizmos = !a.showGizmos
	case sdl.SCANCODE_F:
		a.wireframe = !a.wireframe
	case sdl.SCANCODE_F12:
		a.screenshotRequested = true
	}
}

// captureScreenshot saves the back buffer of the frame just rendered.
func (a *App) captureScreenshot() {
	pixels, width, height := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// update advances the rotation by dt seconds worth of ticks.
func (a *App) update(dt float64) {
	a.tess.Advance(float32(dt) * a.config.Graphics.TickRate)
}

// overlay returns the gizmo lines for the current frame, or nil when hidden.
func (a *App) overlay() []debug.LineVertex {
	if !a.showGizmos {
		return nil
	}
	points := tesseract.Positions(a.tess.Rotated())
	return debug.Overlay(points, a.tess.Mesh().Bounds, markerSize)
}

func (a *App) render() {
	viewProj := a.camera.ViewProjection(a.window.Aspect())

	a.renderer.SetWireframe(a.wireframe)
	a.renderer.Begin()
	a.renderer.DrawMesh(a.tess.Mesh(), viewProj)
	a.renderer.DrawLines(a.overlay(), viewProj)
	a.renderer.End()
}
