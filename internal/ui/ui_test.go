package ui

import (
	"image/color"
	"testing"
)

func TestSpeedButtonCycles(t *testing.T) {
	b := NewSpeedButton(100, 100, 10, []color.Color{color.White, color.Black, color.White})
	for _, want := range []int{1, 2, 0} {
		if got := b.ToggleState(); got != want {
			t.Errorf("ToggleState() = %d, want %d", got, want)
		}
	}
	b.SetState(5)
	if b.CurrentState != 0 {
		t.Errorf("out of range state accepted: %d", b.CurrentState)
	}
	b.SetState(2)
	if b.CurrentState != 2 {
		t.Errorf("state = %d, want 2", b.CurrentState)
	}
}

func TestButtonsHitTest(t *testing.T) {
	speed := NewSpeedButton(100, 100, 10, []color.Color{color.White})
	pause := NewPauseButton(200, 100, 10, color.White, color.Black)

	tests := []struct {
		name  string
		x, y  float32
		speed bool
		pause bool
	}{
		{"speed center", 100, 100, true, false},
		{"speed edge", 114, 100, true, false},
		{"pause center", 200, 100, false, true},
		{"pause just outside", 200, 111, false, false},
		{"nowhere", 150, 300, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := speed.IsClicked(tt.x, tt.y); got != tt.speed {
				t.Errorf("speed.IsClicked = %v", got)
			}
			if got := pause.IsClicked(tt.x, tt.y); got != tt.pause {
				t.Errorf("pause.IsClicked = %v", got)
			}
		})
	}
}

func TestPauseButtonToggle(t *testing.T) {
	b := NewPauseButton(0, 0, 10, color.White, color.Black)
	b.TogglePause()
	if !b.IsPaused {
		t.Error("not paused after toggle")
	}
	b.SetPaused(false)
	if b.IsPaused {
		t.Error("still paused")
	}
}
