// internal/system/visual_effect.go
package system

import "go-wall-defense/internal/entity"

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Обновляем таймеры вспышек урона
	for id, flash := range s.world.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.world.DamageFlashes, id)
		}
	}

	// Кольца взрывов растут до радиуса взрыва и исчезают
	live := s.world.Blasts[:0]
	for _, b := range s.world.Blasts {
		b.Timer += deltaTime
		if b.Timer >= b.Duration {
			continue
		}
		b.Radius = b.Timer / b.Duration * b.MaxRadius
		live = append(live, b)
	}
	for i := len(live); i < len(s.world.Blasts); i++ {
		s.world.Blasts[i] = nil
	}
	s.world.Blasts = live
}
