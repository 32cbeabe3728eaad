// internal/component/projectile.go
package component

import (
	"go-wall-defense/internal/defs"
	"go-wall-defense/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	Bullet      defs.BulletDefinition
	WeaponID    types.EntityID
	Direction   float64 // heading angle in radians
	Traveled    float64 // pixels
	MaxDistance float64 // pixels
}
