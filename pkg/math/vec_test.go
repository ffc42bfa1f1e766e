package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := Vec3{}.Normalize()
	if got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero", got)
	}
}

func TestVec4Length(t *testing.T) {
	v := Vec4{1, 1, 1, 1}
	if got := v.Length(); got != 2 {
		t.Errorf("Vec4.Length() = %v, want 2", got)
	}
}

func TestVec4ApproxEqual(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{1, 2, 3, 4 + 1e-6}
	if !a.ApproxEqual(b, 1e-5) {
		t.Errorf("%v and %v should be approximately equal", a, b)
	}
	c := Vec4{1, 2, 3.1, 4}
	if a.ApproxEqual(c, 1e-5) {
		t.Errorf("%v and %v should differ", a, c)
	}
}
