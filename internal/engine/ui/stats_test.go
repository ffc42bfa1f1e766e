package ui

import (
	"math"
	"testing"
)

func TestStatsOverlayFPS(t *testing.T) {
	s := NewStatsOverlay()

	// 31 frames of 1/60 s each cross the 0.5 s update window.
	for range 31 {
		s.Update(1000.0 / 60.0)
	}
	if math.Abs(s.FPS()-60) > 0.5 {
		t.Errorf("FPS() = %v, want ~60", s.FPS())
	}
}

func TestStatsOverlayFPSNotUpdatedEarly(t *testing.T) {
	s := NewStatsOverlay()
	s.Update(16)
	if s.FPS() != 0 {
		t.Errorf("FPS() = %v before the first update window, want 0", s.FPS())
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{3 * 1024 * 1024, "3.00 MB"},
		{5 * 1024 * 1024 * 1024, "5.00 GB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
