package render

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go-wall-defense/internal/app"
	"go-wall-defense/internal/component"
)

func TestLerpColor(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}
	tests := []struct {
		name string
		t    float64
		want color.RGBA
	}{
		{"start", 0, black},
		{"end", 1, white},
		{"middle", 0.5, color.RGBA{128, 128, 128, 255}},
		{"clamped low", -3, black},
		{"clamped high", 7, white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LerpColor(black, white, tt.t); got != tt.want {
				t.Errorf("LerpColor(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestDamagedColor(t *testing.T) {
	base := color.RGBA{200, 100, 50, 255}
	if got := Damaged(base, 10, 10); got != base {
		t.Errorf("full health = %v, want %v", got, base)
	}
	if got := Damaged(base, 0, 10); got != DarkenColor(base) {
		t.Errorf("no health = %v, want %v", got, DarkenColor(base))
	}
	if got := Damaged(base, 5, 0); got != DarkenColor(base) {
		t.Errorf("zero max health = %v", got)
	}
}

func TestFitScale(t *testing.T) {
	area := image.Rect(20, 50, 820, 850)
	if got := FitScale(800, 800, area); got != 1 {
		t.Errorf("scale = %v, want 1", got)
	}
	if got := FitScale(1600, 400, area); got != 0.5 {
		t.Errorf("wide map scale = %v, want 0.5", got)
	}
	if got := FitScale(0, 400, area); got != 1 {
		t.Errorf("degenerate map scale = %v", got)
	}
}

func TestHUDLines(t *testing.T) {
	stats := component.NewWaveStats(3)
	stats.RecordSpawn("Orc")
	stats.RecordSpawn("Orc")
	stats.RecordKill("Orc")

	snap := app.Snapshot{
		Day:           3,
		NightDuration: 120,
		Resources:     1234,
		Speed:         2,
		Paused:        true,
		Wall:          &app.StructureView{Health: 900, MaxHealth: 1000},
		Stats:         stats,
	}
	lines := HUDLines(message.NewPrinter(language.English), snap)

	want := map[string]bool{
		"Night 3":             false,
		"Resources 1,234":     false,
		"Wall 900 / 1,000":    false,
		"Speed x2":            false,
		"Spawned 2  Killed 1": false,
		"  Orc 1/2":           false,
		"PAUSED":              false,
	}
	for _, l := range lines {
		if _, ok := want[l]; ok {
			want[l] = true
		}
		if l == "Fence 0 / 0" {
			t.Error("fence line drawn without a fence")
		}
	}
	for l, seen := range want {
		if !seen {
			t.Errorf("missing HUD line %q in %q", l, lines)
		}
	}
}
