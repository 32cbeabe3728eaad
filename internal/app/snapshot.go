package app

import (
	"go-wall-defense/internal/component"
	"go-wall-defense/internal/types"
)

type EnemyView struct {
	ID        types.EntityID `json:"id"`
	Name      string         `json:"name"`
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	W         float64        `json:"w"`
	H         float64        `json:"h"`
	Health    float64        `json:"health"`
	MaxHealth float64        `json:"max_health"`
	Flies     bool           `json:"flies,omitempty"`
	Slowed    bool           `json:"slowed,omitempty"`
	Blocked   bool           `json:"blocked,omitempty"`
	Flash     float64        `json:"flash,omitempty"` // 1 right after a hit, fading to 0
}

type WeaponView struct {
	ID       types.EntityID `json:"id"`
	Name     string         `json:"name"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Range    float64        `json:"range"` // pixels
	Cooldown float64        `json:"cooldown"`
}

type ProjectileView struct {
	ID     types.EntityID `json:"id"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Radius float64        `json:"radius"`
}

type BlastView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

type StructureView struct {
	Kind      string  `json:"kind"`
	Top       float64 `json:"top"`
	Bottom    float64 `json:"bottom"`
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"max_health"`
}

// Snapshot is a copy of everything a viewer needs to draw one frame. It
// shares no memory with the world and can be marshalled on another goroutine.
type Snapshot struct {
	Day           int                  `json:"day"`
	NightTime     float64              `json:"night_time"`
	NightDuration float64              `json:"night_duration"`
	Width         float64              `json:"width"`
	Height        float64              `json:"height"`
	FogBottom     float64              `json:"fog_bottom,omitempty"`
	Resources     float64              `json:"resources"`
	Speed         float64              `json:"speed"`
	Paused        bool                 `json:"paused,omitempty"`
	NightOver     bool                 `json:"night_over"`
	WallDestroyed bool                 `json:"wall_destroyed,omitempty"`
	Wall          *StructureView       `json:"wall,omitempty"`
	Fence         *StructureView       `json:"fence,omitempty"`
	Enemies       []EnemyView          `json:"enemies"`
	Weapons       []WeaponView         `json:"weapons"`
	Projectiles   []ProjectileView     `json:"projectiles"`
	Blasts        []BlastView          `json:"blasts,omitempty"`
	Stats         *component.WaveStats `json:"stats"`
}

func structureView(s *component.Structure) *StructureView {
	if s == nil {
		return nil
	}
	return &StructureView{
		Kind:      s.Kind.String(),
		Top:       s.Box.Top(),
		Bottom:    s.Box.Bottom(),
		Health:    s.Health,
		MaxHealth: s.MaxHealth,
	}
}

// Snapshot captures the current frame. Entities are listed in id order.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	snap := Snapshot{
		Day:           w.Day,
		NightTime:     w.NightTime,
		NightDuration: g.Tunables.NightDuration,
		Width:         g.Tunables.MapWidth,
		Height:        g.Tunables.MapHeight,
		Resources:     w.Resources,
		Speed:         g.gameSpeed,
		Paused:        g.isPaused,
		NightOver:     g.NightOver(),
		WallDestroyed: g.wallDestroyed,
		Wall:          structureView(w.Wall),
		Fence:         structureView(w.Fence),
		Enemies:       make([]EnemyView, 0, len(w.Enemies)),
		Weapons:       make([]WeaponView, 0, len(w.Weapons)),
		Projectiles:   make([]ProjectileView, 0, len(w.Projectiles)),
		Stats:         w.Stats.Clone(),
	}
	if w.Fog != nil {
		snap.FogBottom = w.Fog.Bottom
	}
	for _, id := range w.EnemyIDs() {
		e := w.Enemies[id]
		pos := w.Positions[id]
		_, slowed := w.SlowEffects[id]
		view := EnemyView{
			ID: id, Name: e.Name, X: pos.X, Y: pos.Y, W: e.Width, H: e.Height,
			Health: e.Health, MaxHealth: e.MaxHealth, Flies: e.Flies, Slowed: slowed, Blocked: e.Blocked,
		}
		if f, ok := w.DamageFlashes[id]; ok && f.Duration > 0 {
			view.Flash = f.Timer / f.Duration
		}
		snap.Enemies = append(snap.Enemies, view)
	}
	for _, id := range w.WeaponIDs() {
		wp := w.Weapons[id]
		pos := w.Positions[id]
		snap.Weapons = append(snap.Weapons, WeaponView{
			ID: id, Name: wp.Def.Name, X: pos.X, Y: pos.Y,
			Range: g.Tunables.RangeToPixels(wp.Def.Range), Cooldown: wp.FireCooldown,
		})
	}
	for _, id := range w.ProjectileIDs() {
		p := w.Projectiles[id]
		pos := w.Positions[id]
		snap.Projectiles = append(snap.Projectiles, ProjectileView{ID: id, X: pos.X, Y: pos.Y, Radius: p.Bullet.Radius})
	}
	for _, b := range w.Blasts {
		snap.Blasts = append(snap.Blasts, BlastView{X: b.Center.X, Y: b.Center.Y, Radius: b.Radius})
	}
	return snap
}
