// internal/system/status_effect.go
package system

import "go-wall-defense/internal/entity"

// StatusEffectSystem управляет жизненным циклом эффектов, таких как замедление.
type StatusEffectSystem struct {
	world *entity.World
}

func NewStatusEffectSystem(world *entity.World) *StatusEffectSystem {
	return &StatusEffectSystem{world: world}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for id, effect := range s.world.SlowEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.world.SlowEffects, id)
		}
	}
}
