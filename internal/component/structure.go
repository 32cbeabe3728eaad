package component

import "go-wall-defense/pkg/geom"

// StructureKind distinguishes the wall from the fence in front of it.
type StructureKind int

const (
	StructureWall StructureKind = iota
	StructureFence
)

func (k StructureKind) String() string {
	if k == StructureFence {
		return "fence"
	}
	return "wall"
}

// Structure is a horizontal barrier spanning the map width.
type Structure struct {
	Kind      StructureKind
	Box       geom.Rect
	Health    float64
	MaxHealth float64
}

// TopEdge is the side of the structure facing the incoming enemies.
func (s *Structure) TopEdge() float64 { return s.Box.Top() }

// Alive reports whether the structure still stands.
func (s *Structure) Alive() bool { return s.Health > 0 }

// Fog hides the band of the map above Bottom from every weapon.
type Fog struct {
	Bottom float64
}
