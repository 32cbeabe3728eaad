// component/movement.go
package component

import "go-wall-defense/pkg/geom"

// Position - компонент позиции
type Position = geom.Vec2

// Velocity - компонент скорости. Speed is in percent of map height per
// second, Heading is a unit vector.
type Velocity struct {
	Speed   float64
	Heading geom.Vec2
}
