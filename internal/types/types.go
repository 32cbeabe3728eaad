// internal/types/types.go
package types

// EntityID identifies an entity in the simulation world. IDs are handed out
// in increasing order and never reused within a world, so sorting them gives
// creation order.
type EntityID uint32
