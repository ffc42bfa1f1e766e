package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/tesseract/internal/engine/tesseract"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.TickRate != 60 {
		t.Errorf("expected tick rate 60, got %v", cfg.Graphics.TickRate)
	}

	if cfg.Tesseract.Frozen {
		t.Error("expected rotation to run by default")
	}
	if cfg.Tesseract.Speeds.XW != 0.6 {
		t.Errorf("expected XW speed 0.6, got %v", cfg.Tesseract.Speeds.XW)
	}

	if cfg.Camera.Z != -10 {
		t.Errorf("expected camera z -10, got %v", cfg.Camera.Z)
	}
	if cfg.Camera.Orthographic {
		t.Error("expected perspective camera by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts, err := Default().Options()
	if err != nil {
		t.Fatalf("Options() error: %v", err)
	}

	want := tesseract.DefaultOptions()
	if opts.Order != want.Order {
		t.Errorf("order = %v, want %v", opts.Order, want.Order)
	}
	if opts.Speeds != want.Speeds {
		t.Errorf("speeds = %v, want %v", opts.Speeds, want.Speeds)
	}
	if opts.Angles != (tesseract.Angles{}) {
		t.Errorf("initial angles = %v, want zero", opts.Angles)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  tick_rate: 120

tesseract:
  rotation_order: [XY, XZ, XW, YZ, YW, ZW]
  initial_angles:
    yw: 90
  speeds:
    xy: 1
    zw: 0
  frozen: true
  show_gizmos: true

camera:
  z: -6
  orthographic: true
  zoom_step: 0.5

logging:
  level: "debug"
  log_file: "tesseract.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.TickRate != 120 {
		t.Errorf("expected tick rate 120, got %v", cfg.Graphics.TickRate)
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options() error: %v", err)
	}
	wantOrder := tesseract.Order{tesseract.XY, tesseract.XZ, tesseract.XW, tesseract.YZ, tesseract.YW, tesseract.ZW}
	if opts.Order != wantOrder {
		t.Errorf("order = %v, want %v", opts.Order, wantOrder)
	}
	if got := opts.Angles.Get(tesseract.YW); got != 90 {
		t.Errorf("initial YW = %v, want 90", got)
	}
	if got := opts.Speeds.Get(tesseract.XY); got != 1 {
		t.Errorf("XY speed = %v, want 1", got)
	}
	if got := opts.Speeds.Get(tesseract.ZW); got != 0 {
		t.Errorf("ZW speed = %v, want 0", got)
	}
	// Unset keys keep their defaults.
	if got := opts.Speeds.Get(tesseract.XW); got != 0.6 {
		t.Errorf("XW speed = %v, want default 0.6", got)
	}
	if !opts.Frozen {
		t.Error("expected frozen to be true")
	}

	if cfg.Camera.Z != -6 || !cfg.Camera.Orthographic || cfg.Camera.ZoomStep != 0.5 {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"short order", func(c *Config) { c.Tesseract.RotationOrder = []string{"XY"} }},
		{"repeated plane", func(c *Config) { c.Tesseract.RotationOrder = []string{"XY", "XY", "XW", "YZ", "YW", "ZW"} }},
		{"unknown plane", func(c *Config) { c.Tesseract.RotationOrder = []string{"XY", "XZ", "XW", "YZ", "YW", "AB"} }},
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"zero tick rate", func(c *Config) { c.Graphics.TickRate = 0 }},
		{"flat fov", func(c *Config) { c.Camera.FOV = 180 }},
		{"screenshot format", func(c *Config) { c.Debug.ScreenshotFormat = "gif" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Camera.Orthographic = true
	cfg.Tesseract.RotationOrder = []string{"ZW", "YW", "YZ", "XW", "XZ", "XY"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if !loaded.Camera.Orthographic {
		t.Error("orthographic flag was not saved")
	}
	if got := loaded.Tesseract.RotationOrder[0]; got != "ZW" {
		t.Errorf("rotation order[0] = %s, want ZW", got)
	}
}

// isolateConfigDir points ConfigDir at a temp directory on every OS.
func isolateConfigDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("APPDATA", dir)
}

func TestUpdateWritesLoadedFile(t *testing.T) {
	isolateConfigDir(t)
	configPath := filepath.Join(t.TempDir(), "viewer.yaml")
	yamlContent := "graphics:\n  width: 1600\ncamera:\n  z: -12\n"
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagFullscreen = true
	*flagFrozen = true
	defer func() {
		*flagConfig = ""
		*flagFullscreen = false
		*flagFrozen = false
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Path() != configPath {
		t.Fatalf("Path() = %s, want %s", cfg.Path(), configPath)
	}

	err = cfg.Update(func(c *Config) {
		c.Camera.Z = -8
		c.Tesseract.ShowGizmos = true
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if cfg.Camera.Z != -8 || !cfg.Tesseract.ShowGizmos {
		t.Errorf("in-memory config not updated: %+v", cfg.Camera)
	}

	saved := Default()
	if err := loadFromFile(saved, configPath); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if saved.Camera.Z != -8 || !saved.Tesseract.ShowGizmos {
		t.Errorf("changed fields not saved: z=%v gizmos=%v", saved.Camera.Z, saved.Tesseract.ShowGizmos)
	}
	if saved.Graphics.Width != 1600 {
		t.Errorf("width = %d, want 1600 kept from file", saved.Graphics.Width)
	}
	if saved.Graphics.Fullscreen || saved.Tesseract.Frozen {
		t.Error("flag overrides should not be persisted")
	}

	if _, err := os.Stat(filepath.Join(ConfigDir(), "config.yaml")); !os.IsNotExist(err) {
		t.Error("Update should not write to the user config dir when a file was loaded")
	}
}

func TestUpdateWithoutFile(t *testing.T) {
	isolateConfigDir(t)

	cfg := Default()
	cfg.Graphics.Width = 1920
	if err := cfg.Update(func(c *Config) { c.Camera.Orthographic = true }); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	path := filepath.Join(ConfigDir(), "config.yaml")
	if cfg.Path() != path {
		t.Errorf("Path() = %s, want %s", cfg.Path(), path)
	}

	saved := Default()
	if err := loadFromFile(saved, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if !saved.Camera.Orthographic {
		t.Error("orthographic was not saved")
	}
	if saved.Graphics.Width != 1280 {
		t.Errorf("width = %d, want default 1280", saved.Graphics.Width)
	}
}

func TestUpdateRejectsBrokenFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics: [\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	cfg.path = configPath
	if err := cfg.Update(func(c *Config) { c.Camera.Z = -4 }); err == nil {
		t.Error("expected error for unparsable config file")
	}
	if cfg.Camera.Z != -10 {
		t.Errorf("in-memory config changed on failure: z=%v", cfg.Camera.Z)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Tesseract.ShowGizmos {
					t.Error("expected gizmos to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "frozen and ortho flags",
			setup: func() {
				*flagFrozen = true
				*flagOrtho = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Tesseract.Frozen {
					t.Error("expected frozen with frozen flag")
				}
				if !cfg.Camera.Orthographic {
					t.Error("expected orthographic with ortho flag")
				}
			},
			teardown: func() {
				*flagFrozen = false
				*flagOrtho = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsBadOrder(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := "tesseract:\n  rotation_order: [XY, XY, XW, YZ, YW, ZW]\n"
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for repeated plane in rotation order")
	}
}

func TestCameraConfigNewCamera(t *testing.T) {
	cam := CameraConfig{Z: -6, Orthographic: true}.NewCamera()
	if cam.Z != -6 || !cam.Orthographic {
		t.Errorf("camera = %+v", cam)
	}
	if cam.ZoomStep != 2 || cam.FOV != 60 {
		t.Errorf("zero values should keep camera defaults, got step %v fov %v", cam.ZoomStep, cam.FOV)
	}

	cam = Default().Camera.NewCamera()
	if cam.Z != -10 || cam.Orthographic {
		t.Errorf("default camera = %+v", cam)
	}
}
