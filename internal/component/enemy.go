package component

import "go-wall-defense/internal/defs"

// Enemy представляет вражескую сущность: a copy of its archetype plus live health.
type Enemy struct {
	defs.EnemyDefinition
	Health float64
	// Blocked is set while a ground enemy is pressed against the fence.
	Blocked bool
}

// NewEnemy instantiates an archetype at full health.
func NewEnemy(def defs.EnemyDefinition) *Enemy {
	return &Enemy{EnemyDefinition: def, Health: def.MaxHealth}
}
