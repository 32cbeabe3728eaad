package system

import (
	"fmt"
	"log/slog"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/config"
	"go-wall-defense/internal/entity"
	"go-wall-defense/internal/event"
	"go-wall-defense/internal/types"
	"go-wall-defense/internal/utils"
	"go-wall-defense/pkg/geom"
)

// CombatSystem управляет атакой турелей: fire-rate timers, targeting,
// movement prediction and projectile creation.
type CombatSystem struct {
	world           *entity.World
	tun             config.Tunables
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, tun config.Tunables, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, tun: tun, eventDispatcher: eventDispatcher}
}

// Update gives every weapon, in placement order, a chance to fire. A weapon
// that fails is skipped for this tick; the others still fire.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.world.WeaponIDs() {
		weapon := s.world.Weapons[id]

		if weapon.FireCooldown > 0 {
			weapon.FireCooldown -= deltaTime
			if weapon.FireCooldown > 0 {
				continue
			}
		}
		weapon.FireCooldown = 0

		if s.world.Resources < weapon.Def.ShotCost {
			continue
		}

		projID, fired, err := s.fire(id, weapon)
		if err != nil {
			slog.Warn("weapon skipped", "weapon", id, "name", weapon.Def.Name, "err", err)
			s.eventDispatcher.Dispatch(event.Event{Type: event.WeaponFault, Data: event.FaultData{WeaponID: id, Err: err}})
			continue
		}
		if !fired {
			continue
		}

		s.world.Resources -= weapon.Def.ShotCost
		s.world.Stats.RecordConsumed(weapon.Def.ShotCost)
		weapon.FireCooldown = weapon.FireInterval()
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ProjectileData{ID: projID, WeaponID: id}})
	}
}

func (s *CombatSystem) fire(id types.EntityID, weapon *component.Weapon) (types.EntityID, bool, error) {
	origin, ok := s.world.Positions[id]
	if !ok {
		return 0, false, fmt.Errorf("weapon %d has no position", id)
	}
	bullet := weapon.Def.Bullet
	rangePx := s.tun.RangeToPixels(weapon.Def.Range)

	cands := Candidates(s.world, *origin, rangePx, bullet)
	sel, found, err := SelectTarget(weapon.Def.Strategy, *origin, cands, bullet)
	if err != nil {
		return 0, false, err
	}
	if !found {
		return 0, false, nil
	}

	aim := PredictAim(s.aimInput(*origin, weapon, sel))
	proj := &component.Projectile{
		Bullet:      bullet,
		WeaponID:    id,
		Direction:   utils.NormalizeAngle(aim.Angle()),
		MaxDistance: rangePx,
	}
	return s.world.AddProjectile(proj, *origin), true, nil
}

func (s *CombatSystem) aimInput(origin geom.Vec2, weapon *component.Weapon, sel Selection) AimInput {
	in := AimInput{
		Origin:          origin,
		Target:          sel.Point,
		ProjectileSpeed: weapon.Def.Bullet.Speed,
		Predict:         weapon.Def.Predict,
		Clearance:       s.tun.StructureClearance,
	}
	enemy, ok := s.world.Enemies[sel.Target.ID]
	if !ok {
		return in
	}
	if vel, ok := s.world.Velocities[sel.Target.ID]; ok && !enemy.Blocked {
		in.Heading = vel.Heading
		in.EnemySpeed = EffectiveSpeed(s.world, sel.Target.ID)
	}
	if blocker, ok := s.world.TopBlocker(enemy.Flies); ok {
		in.HasBlocker = true
		in.BlockerTop = blocker.TopEdge()
	}
	return in
}
