// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/types"
	"go-wall-defense/pkg/geom"
)

// World is the whole mutable simulation state, owned by the tick loop.
type World struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Enemies     map[types.EntityID]*component.Enemy
	Weapons     map[types.EntityID]*component.Weapon
	Projectiles map[types.EntityID]*component.Projectile
	SlowEffects map[types.EntityID]*component.SlowEffect

	// visual only, never read by the simulation
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Blasts        []*component.Blast

	Wall  *component.Structure
	Fence *component.Structure
	Fog   *component.Fog

	Bounds    geom.Rect
	Day       int
	NightTime float64
	Resources float64
	Stats     *component.WaveStats
}

// NewWorld creates an empty world covering [0,width]x[0,height].
func NewWorld(width, height float64) *World {
	return &World{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Weapons:     make(map[types.EntityID]*component.Weapon),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		SlowEffects: make(map[types.EntityID]*component.SlowEffect),

		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),

		Bounds: geom.Rect{Center: geom.Vec2{X: width / 2, Y: height / 2}, W: width, H: height},
		Day:    1,
		Stats:  component.NewWaveStats(1),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddEnemy registers a fresh enemy heading toward the bottom of the map.
func (w *World) AddEnemy(e *component.Enemy, pos geom.Vec2) types.EntityID {
	id := w.NewEntity()
	w.Enemies[id] = e
	p := pos
	w.Positions[id] = &p
	w.Velocities[id] = &component.Velocity{Speed: e.Speed, Heading: geom.Vec2{X: 0, Y: 1}}
	return id
}

// AddWeapon places a weapon. Its first shot is available immediately.
func (w *World) AddWeapon(wp *component.Weapon, pos geom.Vec2) types.EntityID {
	id := w.NewEntity()
	w.Weapons[id] = wp
	p := pos
	w.Positions[id] = &p
	return id
}

// AddProjectile registers a projectile at pos.
func (w *World) AddProjectile(p *component.Projectile, pos geom.Vec2) types.EntityID {
	id := w.NewEntity()
	w.Projectiles[id] = p
	pp := pos
	w.Positions[id] = &pp
	return id
}

// RemoveEnemy drops the enemy and everything attached to it.
func (w *World) RemoveEnemy(id types.EntityID) {
	delete(w.Enemies, id)
	delete(w.Positions, id)
	delete(w.Velocities, id)
	delete(w.SlowEffects, id)
	delete(w.DamageFlashes, id)
}

func (w *World) RemoveProjectile(id types.EntityID) {
	delete(w.Projectiles, id)
	delete(w.Positions, id)
}

func (w *World) RemoveWeapon(id types.EntityID) {
	delete(w.Weapons, id)
	delete(w.Positions, id)
}

// EnemyBody returns the enemy's hitbox.
func (w *World) EnemyBody(id types.EntityID) (geom.Rect, bool) {
	e, ok := w.Enemies[id]
	pos, hasPos := w.Positions[id]
	if !ok || !hasPos {
		return geom.Rect{}, false
	}
	return geom.Rect{Center: *pos, W: e.Width, H: e.Height}, true
}

// TopBlocker returns the nearest standing structure an enemy would run into:
// the fence for ground enemies when it stands, the wall otherwise. Flyers
// pass over the fence.
func (w *World) TopBlocker(flies bool) (*component.Structure, bool) {
	if !flies && w.Fence != nil && w.Fence.Alive() {
		return w.Fence, true
	}
	if w.Wall != nil {
		return w.Wall, true
	}
	return nil, false
}

// EnemyIDs returns live enemy ids in spawn order.
func (w *World) EnemyIDs() []types.EntityID { return sortedKeys(w.Enemies) }

// WeaponIDs returns weapon ids in placement order.
func (w *World) WeaponIDs() []types.EntityID { return sortedKeys(w.Weapons) }

// ProjectileIDs returns projectile ids in firing order.
func (w *World) ProjectileIDs() []types.EntityID { return sortedKeys(w.Projectiles) }

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ClearEnemies removes every enemy, e.g. at the day/night transition.
func (w *World) ClearEnemies() {
	for id := range w.Enemies {
		w.RemoveEnemy(id)
	}
}

// ClearProjectiles removes every projectile and leftover blast.
func (w *World) ClearProjectiles() {
	for id := range w.Projectiles {
		w.RemoveProjectile(id)
	}
	w.Blasts = nil
}
