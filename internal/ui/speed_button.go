// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton cycles through game speeds; one color per speed.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)
	clr := b.StateColors[b.CurrentState]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// два треугольника ">>"
	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+dx, b.Y-height/2)
		path.LineTo(b.X+dx, b.Y)
		path.LineTo(b.X-width+dx, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, clr)
	}
}

// IsClicked hit-tests a circle around the button since the shape is irregular.
func (b *SpeedButton) IsClicked(x, y float32) bool {
	return hit(b.X, b.Y, b.Size*1.5, x, y)
}

// ToggleState moves to the next speed and returns its index.
func (b *SpeedButton) ToggleState() int {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	return b.CurrentState
}

// SetState selects a speed without animating.
func (b *SpeedButton) SetState(i int) {
	if i >= 0 && i < len(b.StateColors) {
		b.CurrentState = i
	}
}
