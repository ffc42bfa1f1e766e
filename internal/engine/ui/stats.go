package ui

import (
	"fmt"
	"runtime"

	"github.com/AllenDang/cimgui-go/imgui"
)

// StatsOverlay shows frame timing, mesh size and memory in a corner window.
type StatsOverlay struct {
	fps           float64
	frameTime     float64 // ms
	fpsUpdateTime float64 // seconds since last FPS update
	frameAccum    int

	memStats      runtime.MemStats
	memUpdateTime float64

	Triangles int
	Vertices  int
	Frozen    bool

	ShowMemory bool
	Enabled    bool
}

// NewStatsOverlay creates an enabled overlay.
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{Enabled: true}
}

// Update records one frame of deltaMs milliseconds.
func (s *StatsOverlay) Update(deltaMs float64) {
	s.frameTime = deltaMs
	s.frameAccum++
	s.fpsUpdateTime += deltaMs / 1000.0

	if s.fpsUpdateTime >= 0.5 {
		s.fps = float64(s.frameAccum) / s.fpsUpdateTime
		s.frameAccum = 0
		s.fpsUpdateTime = 0
	}

	s.memUpdateTime += deltaMs / 1000.0
	if s.memUpdateTime >= 2.0 {
		runtime.ReadMemStats(&s.memStats)
		s.memUpdateTime = 0
	}
}

// FPS returns the last measured frame rate.
func (s *StatsOverlay) FPS() float64 {
	return s.fps
}

// Render draws the overlay at pos.
func (s *StatsOverlay) Render(pos imgui.Vec2) {
	if !s.Enabled {
		return
	}

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(imgui.NewVec2(220, 0))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(8, 8))
	imgui.SetNextWindowBgAlpha(0.6)

	if imgui.BeginV("##StatsOverlay", nil, flags) {
		fpsColor := imgui.NewVec4(0.2, 1.0, 0.2, 1.0)
		if s.fps < 30 {
			fpsColor = imgui.NewVec4(1.0, 0.2, 0.2, 1.0)
		} else if s.fps < 55 {
			fpsColor = imgui.NewVec4(1.0, 1.0, 0.2, 1.0)
		}
		imgui.TextColored(fpsColor, fmt.Sprintf("FPS: %.1f", s.fps))
		imgui.SameLine()
		imgui.TextDisabled(fmt.Sprintf("(%.2f ms)", s.frameTime))

		imgui.Separator()
		imgui.Text(fmt.Sprintf("Triangles: %d", s.Triangles))
		imgui.Text(fmt.Sprintf("Vertices: %d", s.Vertices))
		if s.Frozen {
			imgui.TextDisabled("Rotation frozen")
		}

		if s.ShowMemory {
			imgui.Separator()
			imgui.Text(fmt.Sprintf("Alloc: %s", formatBytes(int64(s.memStats.Alloc))))
			imgui.Text(fmt.Sprintf("GC: %d", s.memStats.NumGC))
		}
	}
	imgui.End()

	imgui.PopStyleVar()
}

// formatBytes formats a byte count for display.
func formatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
