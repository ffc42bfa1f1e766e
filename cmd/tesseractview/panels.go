package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/tesseract/internal/engine/debug"
	"github.com/Faultbox/tesseract/internal/engine/tesseract"
	"github.com/Faultbox/tesseract/internal/engine/ui"
	"github.com/Faultbox/tesseract/internal/logger"
	"github.com/Faultbox/tesseract/pkg/math"
)

const (
	controlsPanelWidth = 300
	markerSize         = 0.15
)

// handleShortcuts processes global keys. Keys are ignored while a widget has focus.
func (v *Viewer) handleShortcuts() {
	// F12 is captured next frame so the framebuffer holds a finished image.
	if ui.IsKeyPressed(imgui.KeyF12) {
		v.screenshotRequested = true
	}

	if imgui.IsAnyItemActive() {
		return
	}
	if ui.IsKeyPressed(imgui.KeyR) {
		frozen := v.tess.ToggleFreeze()
		logger.Info("rotation toggled", zap.Bool("frozen", frozen))
	}
	if ui.IsKeyPressed(imgui.KeySpace) {
		ortho := v.camera.ToggleProjection()
		logger.Info("projection toggled", zap.Bool("orthographic", ortho))
	}
	if ui.IsKeyPressed(imgui.KeyG) {
		v.showGizmos = !v.showGizmos
	}
}

func (v *Viewer) renderPanels() {
	workPos, workSize := v.backend.Viewport()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(controlsPanelWidth, workSize.Y))
	if imgui.BeginV("Controls", nil, flags) {
		v.renderControls()
	}
	imgui.End()

	viewPos := imgui.NewVec2(workPos.X+controlsPanelWidth, workPos.Y)
	imgui.SetNextWindowPos(viewPos)
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X-controlsPanelWidth, workSize.Y))
	if imgui.BeginV("View", nil, flags|imgui.WindowFlagsNoScrollbar) {
		v.renderView()
	}
	imgui.End()

	v.stats.Render(imgui.NewVec2(viewPos.X+10, viewPos.Y+30))

	if v.lastScreenshotMsg != "" && time.Since(v.screenshotMsgTime) < 2*time.Second {
		notifyFlags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
			imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
			imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing
		imgui.SetNextWindowPos(imgui.NewVec2(viewPos.X+10, workPos.Y+workSize.Y-50))
		imgui.SetNextWindowBgAlpha(0.85)
		if imgui.BeginV("##ScreenshotNotify", nil, notifyFlags) {
			imgui.Text(v.lastScreenshotMsg)
		}
		imgui.End()
	}
}

func (v *Viewer) renderControls() {
	if imgui.CollapsingHeaderTreeNodeFlagsV("Rotation", imgui.TreeNodeFlagsDefaultOpen) {
		angles := v.tess.Angles()
		for _, p := range tesseract.Planes() {
			// Accumulators grow without bound; the slider shows them wrapped.
			deg := angles.Wrapped(p)
			imgui.SetNextItemWidth(-40)
			if imgui.SliderFloatV(p.String(), &deg, 0, 360, "%.1f", imgui.SliderFlagsNone) {
				v.tess.SetAngle(p, deg)
			}
		}

		frozen := v.tess.Frozen()
		if imgui.Checkbox("Freeze (R)", &frozen) {
			v.tess.SetFrozen(frozen)
		}
		if imgui.Button("Reset") {
			v.tess.Initialize()
		}
		imgui.TextDisabled(fmt.Sprintf("Order: %s", v.tess.Order()))
	}

	if imgui.CollapsingHeaderTreeNodeFlagsV("Camera", imgui.TreeNodeFlagsDefaultOpen) {
		imgui.Checkbox("Orthographic (Space)", &v.camera.Orthographic)
		imgui.SliderFloatV("Z", &v.camera.Z, -40, -2, "%.1f", imgui.SliderFlagsNone)
		if v.camera.Orthographic {
			imgui.TextDisabled(fmt.Sprintf("Ortho size: %.2f", v.camera.OrthoSize()))
		}
	}

	if imgui.CollapsingHeaderTreeNodeFlagsV("Display", imgui.TreeNodeFlagsDefaultOpen) {
		imgui.Checkbox("Gizmos (G)", &v.showGizmos)
		imgui.Checkbox("Wireframe", &v.wireframe)
		imgui.Checkbox("Stats", &v.stats.Enabled)
		imgui.Checkbox("Memory", &v.stats.ShowMemory)
	}

	imgui.Separator()
	if imgui.Button("Screenshot (F12)") {
		v.screenshotRequested = true
	}
	imgui.SameLine()
	if imgui.Button("Save Settings") {
		v.saveConfig()
	}
}

// renderView draws the tesseract into the framebuffer and shows it.
func (v *Viewer) renderView() {
	avail := imgui.ContentRegionAvail()
	if avail.X < 1 || avail.Y < 1 {
		return
	}
	v.fb.Resize(int32(avail.X), int32(avail.Y))
	width, height := v.fb.Size()

	viewProj := v.camera.ViewProjection(v.fb.Aspect())
	mesh := v.tess.Mesh()

	var lines []debug.LineVertex
	if v.showGizmos {
		lines = debug.Overlay(tesseract.Positions(v.tess.Rotated()), mesh.Bounds, markerSize)
	}

	v.fb.Draw(func() {
		v.renderer.Resize(int(width), int(height))
		v.renderer.SetWireframe(v.wireframe)
		v.renderer.Begin()
		v.renderer.DrawMesh(mesh, viewProj)
		v.renderer.DrawLines(lines, viewProj)
		v.renderer.End()
	})

	ui.Image(v.fb.ColorTexture(), avail.X, avail.Y)
	if v.showGizmos {
		v.drawVertexLabels(imgui.ItemRectMin(), avail)
	}

	if imgui.IsItemHovered() {
		if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
			v.camera.Zoom(wheel)
		}
	}
}

// drawVertexLabels writes each vertex index next to its projected position.
func (v *Viewer) drawVertexLabels(origin, size imgui.Vec2) {
	drawList := imgui.WindowDrawList()
	color := imgui.ColorU32Vec4(imgui.NewVec4(0.9, 0.9, 0.5, 0.9))

	for i, p := range tesseract.Positions(v.tess.Rotated()) {
		x, y, ok := v.camera.ToScreen(math.Vec3{X: p.X, Y: p.Y, Z: p.Z}, size.X, size.Y)
		if !ok {
			continue
		}
		drawList.AddTextVec2(imgui.NewVec2(origin.X+x+4, origin.Y+y-4), color, strconv.Itoa(i))
	}
}
