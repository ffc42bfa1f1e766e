package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestHandleKeys(t *testing.T) {
	in := New()

	in.handle(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_R}})
	in.handle(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}})
	in.handle(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_G}})

	// The repeated Space is dropped.
	want := []Event{
		{Type: EventKeyDown, Key: sdl.SCANCODE_R},
		{Type: EventKeyUp, Key: sdl.SCANCODE_G},
	}
	events := in.Events()
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestHandleWheel(t *testing.T) {
	tests := []struct {
		name   string
		events []*sdl.MouseWheelEvent
		want   []float32
	}{
		{"single notch", []*sdl.MouseWheelEvent{{Y: 1}}, []float32{1}},
		{"two notches", []*sdl.MouseWheelEvent{{Y: 1}, {Y: -2}}, []float32{1, -2}},
		{"flipped", []*sdl.MouseWheelEvent{{Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED}}, []float32{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New()
			for _, e := range tt.events {
				in.handle(e)
			}
			events := in.Events()
			if len(events) != len(tt.want) {
				t.Fatalf("got %d events, want %d", len(events), len(tt.want))
			}
			for i, e := range events {
				if e.Type != EventMouseWheel || e.Wheel != tt.want[i] {
					t.Errorf("event %d = %+v, want wheel %v", i, e, tt.want[i])
				}
			}
		})
	}
}

func TestHandleQuitAndResize(t *testing.T) {
	in := New()

	if in.handle(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600}) {
		t.Error("resize should not quit")
	}
	if !in.handle(&sdl.QuitEvent{}) {
		t.Error("quit event should request exit")
	}

	events := in.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Type != EventWindowResize || events[0].Width != 800 || events[0].Height != 600 {
		t.Errorf("resize event = %+v", events[0])
	}
	if events[1].Type != EventQuit {
		t.Errorf("second event type = %v, want EventQuit", events[1].Type)
	}
}
