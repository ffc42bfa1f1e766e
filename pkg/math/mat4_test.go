package math

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Scale(1, 2, 3)
	result := m.Mul(Identity())

	for i := range 16 {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, -1)
	got := m.TransformVec3(Vec3{1, 2, 3})
	want := Vec3{2, 6, -3}
	if got != want {
		t.Errorf("TransformVec3() = %v, want %v", got, want)
	}
}

func TestOrthoMapsBoxToClipSpace(t *testing.T) {
	m := Ortho(-2, 2, -1, 1, 0.1, 100)

	corner := m.TransformVec3(Vec3{2, 1, -0.1})
	if !approx(corner.X, 1) || !approx(corner.Y, 1) || !approx(corner.Z, -1) {
		t.Errorf("near corner = %v, want (1, 1, -1)", corner)
	}

	far := m.TransformVec3(Vec3{-2, -1, -100})
	if !approx(far.X, -1) || !approx(far.Y, -1) || !approx(far.Z, 1) {
		t.Errorf("far corner = %v, want (-1, -1, 1)", far)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := Perspective(float32(math.Pi/2), 1, 1, 10)

	near := m.TransformVec3(Vec3{0, 0, -1})
	if !approx(near.Z, -1) {
		t.Errorf("near plane depth = %v, want -1", near.Z)
	}
	far := m.TransformVec3(Vec3{0, 0, -10})
	if !approx(far.Z, 1) {
		t.Errorf("far plane depth = %v, want 1", far.Z)
	}
}

func TestLookAtOrigin(t *testing.T) {
	view := LookAt(Vec3{0, 0, -10}, Vec3{}, Vec3{0, 1, 0})

	// The target ends up straight ahead on the view -Z axis.
	p := view.TransformVec3(Vec3{})
	if !approx(p.X, 0) || !approx(p.Y, 0) || !approx(p.Z, -10) {
		t.Errorf("origin in view space = %v, want (0, 0, -10)", p)
	}
}
