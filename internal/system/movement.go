// internal/system/movement.go
package system

import (
	"log/slog"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/entity"
	"go-wall-defense/internal/event"
	"go-wall-defense/internal/types"
	"go-wall-defense/internal/utils"
)

// EffectiveSpeed is the enemy's current speed with slow effects applied,
// in percent of map height per second.
func EffectiveSpeed(w *entity.World, id types.EntityID) float64 {
	vel, ok := w.Velocities[id]
	if !ok {
		return 0
	}
	speed := vel.Speed
	if slow, isSlowed := w.SlowEffects[id]; isSlowed {
		speed *= utils.Clamp(slow.SlowFactor, 0, 1)
	}
	return speed
}

// MovementSystem marches enemies toward the wall. Ground enemies stop at a
// standing fence and wear it down; anything that reaches the wall damages it
// and leaves the field without counting as a kill.
type MovementSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	speedScale      float64
}

func NewMovementSystem(world *entity.World, eventDispatcher *event.Dispatcher, speedScale float64) *MovementSystem {
	return &MovementSystem{world: world, eventDispatcher: eventDispatcher, speedScale: speedScale}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.world.EnemyIDs() {
		enemy := s.world.Enemies[id]
		pos, hasPos := s.world.Positions[id]
		vel, hasVel := s.world.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		step := EffectiveSpeed(s.world, id) * s.speedScale * deltaTime
		next := pos.Add(vel.Heading.Scale(step))
		bottom := next.Y + enemy.Height/2

		blocker, ok := s.world.TopBlocker(enemy.Flies)
		switch {
		case ok && blocker.Kind == component.StructureFence && bottom >= blocker.TopEdge():
			next.Y = blocker.TopEdge() - enemy.Height/2
			enemy.Blocked = true
			s.damageStructure(blocker, enemy.Damage*deltaTime)
		case ok && blocker.Kind == component.StructureWall && bottom >= blocker.TopEdge():
			s.reachWall(id, enemy, blocker)
			continue
		case !ok && next.Y-enemy.Height/2 > s.world.Bounds.Bottom():
			s.reachWall(id, enemy, nil)
			continue
		default:
			enemy.Blocked = false
		}
		*pos = next
	}
}

// reachWall is the alternative terminal state to a kill.
func (s *MovementSystem) reachWall(id types.EntityID, enemy *component.Enemy, wall *component.Structure) {
	if wall != nil {
		s.damageStructure(wall, enemy.Damage)
	}
	s.world.RemoveEnemy(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedWall, Data: event.EnemyData{ID: id, Name: enemy.Name}})
}

func (s *MovementSystem) damageStructure(st *component.Structure, amount float64) {
	if !st.Alive() || amount <= 0 {
		return
	}
	st.Health -= amount
	if st.Health <= 0 {
		st.Health = 0
		slog.Info("structure destroyed", "kind", st.Kind.String(), "day", s.world.Day, "night_time", s.world.NightTime)
		s.eventDispatcher.Dispatch(event.Event{Type: event.StructureDestroyed, Data: st.Kind})
	}
}
