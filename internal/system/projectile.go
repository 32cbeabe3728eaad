// internal/system/projectile.go
package system

import (
	"log/slog"
	"math"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/config"
	"go-wall-defense/internal/entity"
	"go-wall-defense/internal/event"
	"go-wall-defense/internal/types"
	"go-wall-defense/pkg/geom"
)

// ExpiryReason says why a projectile left the simulation without hitting anything.
type ExpiryReason int

const (
	NotExpired ExpiryReason = iota
	ExpiredOutOfBounds
	ExpiredMaxRange
)

// Step moves a projectile by one tick and adds the distance to its total.
// speedScale converts the bullet speed from percent of map height into pixels.
func Step(p *component.Projectile, pos *geom.Vec2, deltaTime, speedScale float64) {
	dx := speedScale * p.Bullet.Speed * math.Cos(p.Direction) * deltaTime
	dy := speedScale * p.Bullet.Speed * math.Sin(p.Direction) * deltaTime
	pos.X += dx
	pos.Y += dy
	p.Traveled += math.Hypot(dx, dy)
}

// Expired checks bounds first, then range. Reaching the max distance exactly counts.
func Expired(p *component.Projectile, pos geom.Vec2, bounds geom.Rect) ExpiryReason {
	if !bounds.Contains(pos) {
		return ExpiredOutOfBounds
	}
	if p.Traveled >= p.MaxDistance {
		return ExpiredMaxRange
	}
	return NotExpired
}

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world           *entity.World
	resolver        *ImpactResolver
	eventDispatcher *event.Dispatcher
	speedScale      float64
}

func NewProjectileSystem(world *entity.World, resolver *ImpactResolver, eventDispatcher *event.Dispatcher, speedScale float64) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		resolver:        resolver,
		eventDispatcher: eventDispatcher,
		speedScale:      speedScale,
	}
}

// Update advances every projectile. A hit in the same tick wins over expiry.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.world.ProjectileIDs() {
		proj := s.world.Projectiles[id]
		pos := s.world.Positions[id]
		if pos == nil {
			s.world.RemoveProjectile(id)
			continue
		}

		from := *pos
		Step(proj, pos, deltaTime, s.speedScale)

		if target, at, hit := s.firstHit(proj, from, *pos); hit {
			s.hitTarget(id, proj, at, target)
			continue
		}
		if Expired(proj, *pos, s.world.Bounds) != NotExpired {
			s.world.RemoveProjectile(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileExpired, Data: event.ProjectileData{ID: id, WeaponID: proj.WeaponID}})
		}
	}
}

// firstHit sweeps the projectile from -> to and returns the enemy it touches
// first along the way, with the contact point. Ties go to the earlier spawn.
func (s *ProjectileSystem) firstHit(proj *component.Projectile, from, to geom.Vec2) (types.EntityID, geom.Vec2, bool) {
	var (
		best  types.EntityID
		bestT = math.Inf(1)
	)
	for _, eid := range s.world.EnemyIDs() {
		if !proj.Bullet.CanHit(s.world.Enemies[eid].Flies) {
			continue
		}
		body, ok := s.world.EnemyBody(eid)
		if !ok {
			continue
		}
		if t, hit := geom.SweepCircleRect(from, to, proj.Bullet.Radius, body); hit && t < bestT {
			best, bestT = eid, t
		}
	}
	if math.IsInf(bestT, 1) {
		return 0, geom.Vec2{}, false
	}
	return best, from.Add(to.Sub(from).Scale(bestT)), true
}

func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile, at geom.Vec2, target types.EntityID) {
	s.world.RemoveProjectile(projectileID)

	// the struck enemy always takes the hit, even outside a small blast
	victims := []types.EntityID{target}
	if proj.Bullet.IsAreaEffect() {
		for _, eid := range s.inBlast(proj, at) {
			if eid != target {
				victims = append(victims, eid)
			}
		}
		s.world.Blasts = append(s.world.Blasts, &component.Blast{
			Center: at, MaxRadius: proj.Bullet.ExplosionRadius, Duration: config.BlastDuration,
		})
	}
	spec := DamageFromDef(proj.Bullet.Damage)
	for _, eid := range victims {
		impact, err := s.resolver.Resolve(eid, spec)
		if err != nil {
			slog.Warn("impact skipped", "projectile", projectileID, "enemy", eid, "err", err)
			continue
		}
		if impact.Survived && proj.Bullet.Slow != nil {
			s.world.SlowEffects[eid] = &component.SlowEffect{
				Timer:      proj.Bullet.Slow.Duration,
				SlowFactor: proj.Bullet.Slow.Factor,
			}
		}
	}
}

// inBlast lists enemies the explosion at center reaches, in spawn order.
func (s *ProjectileSystem) inBlast(proj *component.Projectile, center geom.Vec2) []types.EntityID {
	var out []types.EntityID
	for _, eid := range s.world.EnemyIDs() {
		if !proj.Bullet.CanHit(s.world.Enemies[eid].Flies) {
			continue
		}
		body, ok := s.world.EnemyBody(eid)
		if ok && geom.CircleOverlapsRect(center, proj.Bullet.ExplosionRadius, body) {
			out = append(out, eid)
		}
	}
	return out
}
