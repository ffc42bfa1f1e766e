package tesseract

import (
	"go.uber.org/zap"

	"github.com/Faultbox/tesseract/internal/logger"
	"github.com/Faultbox/tesseract/pkg/math"
)

// Options configures a Tesseract.
type Options struct {
	// Order is the composition order of the planar rotations.
	Order Order
	// Angles are the starting angles in degrees.
	Angles Angles
	// Speeds are the auto-rotation increments in degrees per tick.
	Speeds Angles
	// Frozen disables auto-rotation.
	Frozen bool
}

// DefaultOptions returns the default order, zero angles and the standard
// auto-rotation speeds.
func DefaultOptions() Options {
	var speeds Angles
	speeds.Set(XY, 0.1)
	speeds.Set(XZ, 0.15)
	speeds.Set(XW, 0.6)
	speeds.Set(YZ, 0.45)
	speeds.Set(YW, 0.3)
	speeds.Set(ZW, 0.5)

	return Options{
		Order:  DefaultOrder,
		Speeds: speeds,
	}
}

// Tesseract drives the per-frame rotate, project and tessellate pass.
// It is not safe for concurrent use; call it from the render loop only.
type Tesseract struct {
	opts Options

	original [VertexCount]math.Vec4
	rotated  [VertexCount]math.Vec4
	angles   Angles
	frozen   bool
	mesh     *Mesh
}

// New creates a Tesseract. Call Initialize before the first frame.
func New(opts Options) *Tesseract {
	return &Tesseract{opts: opts}
}

// Initialize resets the vertices and angles to their starting values and
// builds the first mesh.
func (t *Tesseract) Initialize() {
	t.original = CanonicalVertices()
	t.angles = t.opts.Angles
	t.frozen = t.opts.Frozen
	t.rebuild()

	logger.Debug("tesseract initialized",
		zap.Stringer("order", t.opts.Order),
		zap.Bool("frozen", t.frozen),
		zap.Int("vertices", t.mesh.VertexCount()),
	)
}

// Advance runs one frame. Unless frozen, every plane turns by its speed
// times ticks, where one tick is one display refresh at the nominal rate.
// The mesh is rebuilt from scratch and returned.
func (t *Tesseract) Advance(ticks float32) *Mesh {
	if !t.frozen {
		for _, p := range Planes() {
			t.angles.Accumulate(p, t.opts.Speeds.Get(p)*ticks)
		}
	}
	t.rebuild()
	return t.mesh
}

func (t *Tesseract) rebuild() {
	t.rotated = Project(t.original, &t.angles, t.opts.Order)
	t.mesh = Build(t.rotated, Faces[:])
}

// Angle returns the current angle of plane p in degrees.
func (t *Tesseract) Angle(p Plane) float32 {
	return t.angles.Get(p)
}

// SetAngle sets plane p to deg. The change shows on the next Advance.
func (t *Tesseract) SetAngle(p Plane, deg float32) {
	t.angles.Set(p, deg)
}

// Angles returns a copy of the current angles.
func (t *Tesseract) Angles() Angles {
	return t.angles
}

// Order returns the rotation order.
func (t *Tesseract) Order() Order {
	return t.opts.Order
}

// Frozen reports whether auto-rotation is paused.
func (t *Tesseract) Frozen() bool {
	return t.frozen
}

// SetFrozen pauses or resumes auto-rotation.
func (t *Tesseract) SetFrozen(frozen bool) {
	t.frozen = frozen
}

// ToggleFreeze flips the auto-rotation state and returns the new value.
func (t *Tesseract) ToggleFreeze() bool {
	t.frozen = !t.frozen
	return t.frozen
}

// Rotated returns the rotated vertices of the last frame.
func (t *Tesseract) Rotated() [VertexCount]math.Vec4 {
	return t.rotated
}

// Mesh returns the mesh of the last frame.
func (t *Tesseract) Mesh() *Mesh {
	return t.mesh
}
