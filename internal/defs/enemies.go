// internal/defs/enemies.go
package defs

import (
	"errors"
	"fmt"
)

// ErrInvalidDefinition marks a malformed archetype or weapon table.
var ErrInvalidDefinition = errors.New("invalid definition")

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Name      string  `json:"name" yaml:"name"`
	MaxHealth float64 `json:"max_health" yaml:"max_health"`
	Width     float64 `json:"width" yaml:"width"`
	Height    float64 `json:"height" yaml:"height"`
	Size      Size    `json:"size" yaml:"size"`
	Armor     float64 `json:"armor" yaml:"armor"`
	Speed     float64 `json:"speed" yaml:"speed"` // percent of map height per second
	Flies     bool    `json:"flies" yaml:"flies"`
	Damage    float64 `json:"damage" yaml:"damage"` // contact damage per second
	Strength  float64 `json:"strength" yaml:"strength"`
	Bounty    float64 `json:"bounty" yaml:"bounty"`
}

func (d EnemyDefinition) validate() error {
	switch {
	case d.Name == "":
		return fmt.Errorf("%w: enemy without a name", ErrInvalidDefinition)
	case d.MaxHealth <= 0:
		return fmt.Errorf("%w: enemy %q: max_health must be positive", ErrInvalidDefinition, d.Name)
	case d.Width <= 0 || d.Height <= 0:
		return fmt.Errorf("%w: enemy %q: dimensions must be positive", ErrInvalidDefinition, d.Name)
	case d.Strength <= 0:
		return fmt.Errorf("%w: enemy %q: strength must be positive", ErrInvalidDefinition, d.Name)
	case d.Speed < 0 || d.Armor < 0 || d.Damage < 0 || d.Bounty < 0:
		return fmt.Errorf("%w: enemy %q: negative stat", ErrInvalidDefinition, d.Name)
	case d.Size < SizeSmall || d.Size > SizeHuge:
		return fmt.Errorf("%w: enemy %q: unknown size", ErrInvalidDefinition, d.Name)
	}
	return nil
}

// EnemyCatalog is the validated, ordered roster of archetypes. The order of
// Archetypes is the order spawn weights are computed in.
type EnemyCatalog struct {
	Archetypes []EnemyDefinition
	byName     map[string]int
}

// NewEnemyCatalog validates the roster. A malformed table is a startup error.
func NewEnemyCatalog(defs []EnemyDefinition) (*EnemyCatalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: empty enemy catalog", ErrInvalidDefinition)
	}
	c := &EnemyCatalog{
		Archetypes: make([]EnemyDefinition, len(defs)),
		byName:     make(map[string]int, len(defs)),
	}
	for i, d := range defs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byName[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate enemy %q", ErrInvalidDefinition, d.Name)
		}
		c.Archetypes[i] = d
		c.byName[d.Name] = i
	}
	return c, nil
}

// Get looks up an archetype by name.
func (c *EnemyCatalog) Get(name string) (*EnemyDefinition, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return &c.Archetypes[i], true
}

// Len returns the number of archetypes.
func (c *EnemyCatalog) Len() int { return len(c.Archetypes) }

// DefaultEnemies is the built-in roster, ordered by strength.
func DefaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{Name: "Dwarf", MaxHealth: 20, Width: 14, Height: 14, Size: SizeSmall, Armor: 0, Speed: 5, Damage: 4, Strength: 1, Bounty: 2},
		{Name: "Goblin", MaxHealth: 30, Width: 16, Height: 16, Size: SizeSmall, Armor: 1, Speed: 6, Damage: 5, Strength: 2, Bounty: 3},
		{Name: "Bat", MaxHealth: 15, Width: 12, Height: 10, Size: SizeSmall, Armor: 0, Speed: 9, Flies: true, Damage: 3, Strength: 3, Bounty: 4},
		{Name: "Orc", MaxHealth: 80, Width: 22, Height: 22, Size: SizeMedium, Armor: 3, Speed: 4, Damage: 10, Strength: 4, Bounty: 6},
		{Name: "Warg", MaxHealth: 60, Width: 24, Height: 18, Size: SizeMedium, Armor: 1, Speed: 8, Damage: 8, Strength: 5, Bounty: 7},
		{Name: "Harpy", MaxHealth: 70, Width: 20, Height: 20, Size: SizeMedium, Armor: 2, Speed: 7, Flies: true, Damage: 9, Strength: 6, Bounty: 9},
		{Name: "Troll", MaxHealth: 250, Width: 32, Height: 32, Size: SizeLarge, Armor: 6, Speed: 3, Damage: 20, Strength: 7, Bounty: 14},
		{Name: "Ogre", MaxHealth: 400, Width: 36, Height: 36, Size: SizeLarge, Armor: 8, Speed: 2.5, Damage: 30, Strength: 8, Bounty: 20},
		{Name: "Wyvern", MaxHealth: 300, Width: 40, Height: 30, Size: SizeLarge, Armor: 5, Speed: 6, Flies: true, Damage: 25, Strength: 9, Bounty: 25},
		{Name: "Dragon", MaxHealth: 1200, Width: 64, Height: 56, Size: SizeHuge, Armor: 12, Speed: 3, Flies: true, Damage: 60, Strength: 10, Bounty: 60},
	}
}
