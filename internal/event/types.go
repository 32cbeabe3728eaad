// internal/event/types.go
package event

import "go-wall-defense/internal/types"

const (
	EnemySpawned       EventType = "EnemySpawned"     // Враг появился
	EnemyKilled        EventType = "EnemyKilled"      // Враг уничтожен
	EnemyReachedWall   EventType = "EnemyReachedWall" // Враг дошёл до стены
	ProjectileFired    EventType = "ProjectileFired"
	ProjectileExpired  EventType = "ProjectileExpired"
	StructureDestroyed EventType = "StructureDestroyed"
	WeaponFault        EventType = "WeaponFault"
	NightEnded         EventType = "NightEnded"
)

// EnemyData is the payload of EnemySpawned, EnemyKilled and EnemyReachedWall.
type EnemyData struct {
	ID   types.EntityID
	Name string
}

// ProjectileData is the payload of ProjectileFired and ProjectileExpired.
type ProjectileData struct {
	ID       types.EntityID
	WeaponID types.EntityID
}

// FaultData is the payload of WeaponFault.
type FaultData struct {
	WeaponID types.EntityID
	Err      error
}
