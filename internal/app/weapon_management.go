// internal/app/weapon_management.go
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/config"
	"go-wall-defense/internal/defs"
	"go-wall-defense/internal/types"
	"go-wall-defense/pkg/geom"
)

var (
	ErrUnknownWeapon = errors.New("unknown weapon")
	ErrBadPlacement  = errors.New("weapon cannot be placed there")
)

// Placement puts one weapon from the arsenal at a point on the map.
// A zero Y puts it on the wall.
type Placement struct {
	Weapon string  `json:"weapon" yaml:"weapon"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

// DefaultLoadout spreads one of every arsenal weapon evenly along the wall.
func DefaultLoadout(a *defs.Arsenal, tun config.Tunables) []Placement {
	names := a.Names()
	out := make([]Placement, len(names))
	for i, name := range names {
		out[i] = Placement{Weapon: name, X: tun.MapWidth * float64(i+1) / float64(len(names)+1)}
	}
	return out
}

// LoadLoadout reads weapon placements from a JSON or YAML file.
func LoadLoadout(path string) ([]Placement, error) {
	var out []Placement
	if err := defs.DecodeFile(path, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Placement{}
	}
	slog.Info("loaded loadout", "path", path, "count", len(out))
	return out, nil
}

// mountY is where weapons stand when a placement leaves Y empty.
func (g *Game) mountY() float64 {
	if g.World.Wall != nil {
		return g.World.Wall.Box.Center.Y
	}
	return g.Tunables.MapHeight - config.WeaponSpacing/2
}

// PlaceWeapon adds a weapon between nights.
func (g *Game) PlaceWeapon(p Placement) (types.EntityID, error) {
	if g.nightRunning {
		return 0, ErrNightInProgress
	}
	def, ok := g.Arsenal.Get(p.Weapon)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeapon, p.Weapon)
	}
	pos := geom.Vec2{X: p.X, Y: p.Y}
	if pos.Y == 0 {
		pos.Y = g.mountY()
	}
	if err := g.canPlaceWeapon(pos); err != nil {
		return 0, err
	}
	id := g.World.AddWeapon(&component.Weapon{Def: def}, pos)
	slog.Debug("weapon placed", "id", id, "name", def.Name, "x", pos.X, "y", pos.Y)
	return id, nil
}

// RemoveWeapon takes a weapon off the map between nights.
func (g *Game) RemoveWeapon(id types.EntityID) error {
	if g.nightRunning {
		return ErrNightInProgress
	}
	if _, ok := g.World.Weapons[id]; !ok {
		return fmt.Errorf("%w: no weapon %d", ErrBadPlacement, id)
	}
	g.World.RemoveWeapon(id)
	return nil
}

func (g *Game) canPlaceWeapon(pos geom.Vec2) error {
	if !g.World.Bounds.Contains(pos) {
		return fmt.Errorf("%w: (%.1f, %.1f) is off the map", ErrBadPlacement, pos.X, pos.Y)
	}
	for _, id := range g.World.WeaponIDs() {
		if geom.Dist(*g.World.Positions[id], pos) < config.WeaponSpacing {
			return fmt.Errorf("%w: too close to weapon %d", ErrBadPlacement, id)
		}
	}
	return nil
}
