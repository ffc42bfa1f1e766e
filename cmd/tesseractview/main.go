// Tesseract View - an ImGui viewer with per-plane rotation controls.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/tesseract/internal/config"
	"github.com/Faultbox/tesseract/internal/engine/camera"
	"github.com/Faultbox/tesseract/internal/engine/debug"
	"github.com/Faultbox/tesseract/internal/engine/framebuffer"
	"github.com/Faultbox/tesseract/internal/engine/renderer"
	"github.com/Faultbox/tesseract/internal/engine/tesseract"
	"github.com/Faultbox/tesseract/internal/engine/ui"
	"github.com/Faultbox/tesseract/internal/logger"
)

const windowTitle = "Tesseract View"

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	v, err := NewViewer(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}

// windowBackend is the part of the ImGui backend the viewer drives.
type windowBackend interface {
	Run(frame func())
	RequestClose()
	SetWindowTitle(title string)
	Viewport() (pos, size imgui.Vec2)
}

// Viewer holds the viewer application state.
type Viewer struct {
	config  *config.Config
	backend windowBackend

	tess   *tesseract.Tesseract
	camera *camera.ViewCamera

	// GL resources are created by initGL on the first frame.
	initGL   func() error
	initErr  error
	renderer *renderer.Renderer
	fb       *framebuffer.Framebuffer
	stats    *ui.StatsOverlay

	showGizmos bool
	wireframe  bool
	lastFrame  time.Time
	lastTitle  time.Time

	// Screenshot state
	screenshots         *debug.ScreenshotCapture
	screenshotRequested bool
	lastScreenshotMsg   string
	screenshotMsgTime   time.Time
}

// NewViewer creates the window and tesseract. GL resources follow on the first frame.
func NewViewer(cfg *config.Config) (*Viewer, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("tesseract options: %w", err)
	}

	v := &Viewer{
		config:      cfg,
		tess:        tesseract.New(opts),
		camera:      cfg.Camera.NewCamera(),
		stats:       ui.NewStatsOverlay(),
		showGizmos:  cfg.Tesseract.ShowGizmos,
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "tesseract"),
	}
	v.tess.Initialize()

	if err := v.screenshots.SetFormat(cfg.Debug.ScreenshotFormat); err != nil {
		return nil, fmt.Errorf("screenshot format: %w", err)
	}

	v.backend, err = ui.NewBackend(windowTitle, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, fmt.Errorf("create ui backend: %w", err)
	}
	v.initGL = v.createGL

	logger.Info("viewer initialized", zap.Stringer("order", opts.Order))
	return v, nil
}

func (v *Viewer) createGL() error {
	// renderer.New loads the GL functions.
	w, h := v.config.Graphics.Width, v.config.Graphics.Height
	r, err := renderer.New(renderer.DefaultConfig(w, h))
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	fb, err := framebuffer.New(int32(w), int32(h))
	if err != nil {
		r.Close()
		return fmt.Errorf("create framebuffer: %w", err)
	}

	v.renderer, v.fb = r, fb
	return nil
}

// ready creates the GL resources once the backend's context is current.
// On failure it closes the window and keeps the error for Run.
func (v *Viewer) ready() bool {
	if v.renderer != nil {
		return true
	}
	if v.initErr != nil {
		return false
	}
	if err := v.initGL(); err != nil {
		v.initErr = err
		logger.Error("failed to create GL resources", zap.Error(err))
		v.backend.RequestClose()
		return false
	}
	return true
}

// Run starts the main loop and returns once the window closes.
func (v *Viewer) Run() error {
	v.lastFrame = time.Now()
	v.backend.Run(v.frame)
	return v.initErr
}

// Close releases GL resources.
func (v *Viewer) Close() {
	if v.fb != nil {
		v.fb.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
}

// frame is called once per display refresh by the backend.
func (v *Viewer) frame() {
	if !v.ready() {
		return
	}

	now := time.Now()
	dt := now.Sub(v.lastFrame).Seconds()
	v.lastFrame = now

	// Capture before drawing so the previous frame's image is complete.
	if v.screenshotRequested {
		v.screenshotRequested = false
		v.captureScreenshot()
	}

	v.handleShortcuts()

	mesh := v.tess.Advance(float32(dt) * v.config.Graphics.TickRate)
	v.stats.Update(dt * 1000)
	v.stats.Triangles = len(mesh.Triangles) / 3
	v.stats.Vertices = mesh.VertexCount()
	v.stats.Frozen = v.tess.Frozen()

	if now.Sub(v.lastTitle) >= time.Second {
		v.lastTitle = now
		v.backend.SetWindowTitle(fmt.Sprintf("%s - %.0f fps", windowTitle, v.stats.FPS()))
	}

	v.renderPanels()
}

func (v *Viewer) captureScreenshot() {
	w, h := v.fb.Size()
	path, err := v.screenshots.CaptureFromPixels(v.fb.ReadPixels(), int(w), int(h))
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		v.lastScreenshotMsg = fmt.Sprintf("Screenshot failed: %v", err)
	} else {
		logger.Info("screenshot saved", zap.String("path", path))
		v.lastScreenshotMsg = "Saved " + path
	}
	v.screenshotMsgTime = time.Now()
}

// saveConfig persists only the settings changed from the panels.
func (v *Viewer) saveConfig() {
	z, ortho, gizmos := v.camera.Z, v.camera.Orthographic, v.showGizmos
	err := v.config.Update(func(c *config.Config) {
		c.Camera.Z = z
		c.Camera.Orthographic = ortho
		c.Tesseract.ShowGizmos = gizmos
	})
	if err != nil {
		logger.Warn("failed to save config", zap.Error(err))
		return
	}
	logger.Info("config saved", zap.String("path", v.config.Path()))
}
