// pkg/render/color.go
package render

import (
	"image/color"

	"go-wall-defense/internal/utils"
)

// FieldColors holds every color the field renderer needs.
type FieldColors struct {
	Background color.RGBA
	Ground     color.RGBA
	Fog        color.RGBA
	Wall       color.RGBA
	Fence      color.RGBA
	Weapon     color.RGBA
	Enemy      color.RGBA
	Flyer      color.RGBA
	Projectile color.RGBA
	HealthBar  color.RGBA
	Text       color.RGBA

	StrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LerpColor blends from a toward b; t is clamped to [0, 1].
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = utils.Clamp(t, 0, 1)
	ch := func(x, y uint8) uint8 {
		return uint8(utils.Lerp(float64(x), float64(y), t) + 0.5)
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

// Damaged fades c toward its dark variant as health drops.
func Damaged(c color.RGBA, health, maxHealth float64) color.RGBA {
	if maxHealth <= 0 {
		return DarkenColor(c)
	}
	return LerpColor(DarkenColor(c), c, health/maxHealth)
}
