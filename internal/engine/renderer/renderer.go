// Package renderer draws the tesseract mesh and its debug overlay with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tesseract/internal/engine/debug"
	"github.com/Faultbox/tesseract/internal/engine/shader"
	"github.com/Faultbox/tesseract/internal/engine/tesseract"
	"github.com/Faultbox/tesseract/internal/logger"
	"github.com/Faultbox/tesseract/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	ClearColor [4]float32
	MeshColor  math.Vec3
	LightDir   math.Vec3
	Wireframe  bool
}

// DefaultConfig returns the standard look.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		ClearColor: [4]float32{0.1, 0.1, 0.15, 1.0},
		MeshColor:  math.Vec3{X: 0.55, Y: 0.7, Z: 1.0},
		LightDir:   math.Vec3{X: 0.4, Y: 0.8, Z: -0.6},
	}
}

const (
	// position(3) + normal(3) + uv(2)
	meshStride = 8
	// position(3) + color(3)
	lineStride = 6
)

// Renderer owns the GL programs and buffers for the mesh and line overlay.
type Renderer struct {
	config Config

	meshProgram *shader.Program
	lineProgram *shader.Program

	meshVAO uint32
	meshVBO uint32
	lineVAO uint32
	lineVBO uint32

	// Reused upload buffer.
	vertexData []float32
}

// New creates a renderer. An OpenGL context must be current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	r.meshProgram, err = shader.New(meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	r.lineProgram, err = shader.New(lineVertexShader, lineFragmentShader)
	if err != nil {
		r.meshProgram.Delete()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.meshVAO, r.meshVBO = newVertexArray(meshStride, []int32{3, 3, 2})
	r.lineVAO, r.lineVBO = newVertexArray(lineStride, []int32{3, 3})

	logger.Debug("renderer created",
		zap.Uint32("mesh_vao", r.meshVAO),
		zap.Uint32("line_vao", r.lineVAO),
	)
	return r, nil
}

// newVertexArray creates a VAO with float attributes of the given sizes packed in order.
func newVertexArray(stride int32, sizes []int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	var offset int32
	for i, size := range sizes {
		gl.VertexAttribPointerWithOffset(uint32(i), size, gl.FLOAT, false, stride*4, uintptr(offset*4))
		gl.EnableVertexAttribArray(uint32(i))
		offset += size
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return vao, vbo
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, vao := range []*uint32{&r.meshVAO, &r.lineVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
		}
	}
	for _, vbo := range []*uint32{&r.meshVBO, &r.lineVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
		}
	}
	if r.meshProgram != nil {
		r.meshProgram.Delete()
	}
	if r.lineProgram != nil {
		r.lineProgram.Delete()
	}
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetWireframe toggles polygon line mode for the mesh.
func (r *Renderer) SetWireframe(on bool) {
	r.config.Wireframe = on
}

// Begin clears the current target.
func (r *Renderer) Begin() {
	c := r.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Faces come in both windings.
	gl.Disable(gl.CULL_FACE)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawMesh uploads the mesh and draws it as a flat-shaded triangle list.
func (r *Renderer) DrawMesh(mesh *tesseract.Mesh, viewProj math.Mat4) {
	if mesh == nil || mesh.VertexCount() == 0 {
		return
	}

	r.vertexData = PackMesh(r.vertexData[:0], mesh)

	r.meshProgram.Use()
	r.meshProgram.SetMat4("uViewProj", viewProj)
	r.meshProgram.SetVec3("uColor", r.config.MeshColor)
	r.meshProgram.SetVec3("uLightDir", r.config.LightDir.Normalize())

	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.BindVertexArray(r.meshVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.meshVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertexData)*4, unsafe.Pointer(&r.vertexData[0]), gl.DYNAMIC_DRAW)
	// Triangle entries are sequential, so the vertex stream is drawn as is.
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(mesh.Triangles)))
	gl.BindVertexArray(0)
}

// DrawLines draws overlay line segments on top of the mesh.
func (r *Renderer) DrawLines(lines []debug.LineVertex, viewProj math.Mat4) {
	if len(lines) == 0 {
		return
	}

	r.lineProgram.Use()
	r.lineProgram.SetMat4("uViewProj", viewProj)

	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(lines)*lineStride*4, unsafe.Pointer(&lines[0]), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(lines)))
	gl.BindVertexArray(0)
}

// End finishes the frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}

// PackMesh appends the interleaved vertex stream of mesh to dst.
func PackMesh(dst []float32, mesh *tesseract.Mesh) []float32 {
	for _, idx := range mesh.Triangles {
		p := mesh.Positions[idx]
		n := mesh.Normals[idx]
		uv := mesh.UVs[idx]
		dst = append(dst,
			p.X, p.Y, p.Z,
			n.X, n.Y, n.Z,
			uv.X, uv.Y,
		)
	}
	return dst
}

// ReadPixels reads the current read buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}
