package system

import (
	"fmt"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/defs"
	"go-wall-defense/internal/entity"
	"go-wall-defense/internal/types"
	"go-wall-defense/pkg/geom"
)

// Candidate is an enemy a weapon may shoot at this tick.
type Candidate struct {
	ID        types.EntityID
	Pos       geom.Vec2
	MaxHealth float64
}

// Selection is the outcome of a targeting strategy.
type Selection struct {
	Target Candidate
	// Point is where the weapon aims before movement prediction.
	Point geom.Vec2
	// Cluster is how many candidates sit inside the explosion radius of
	// Point. Only set by the densest strategy.
	Cluster int
}

// Visible reports whether an enemy has come out of the fog. A missing fog
// overlay hides nothing.
func Visible(fog *component.Fog, e *component.Enemy, pos geom.Vec2) bool {
	if fog == nil {
		return true
	}
	return pos.Y >= fog.Bottom-e.Height/2
}

// Candidates lists enemies in range, out of the fog, and hittable by bullet,
// in spawn order.
func Candidates(w *entity.World, origin geom.Vec2, rangePx float64, bullet defs.BulletDefinition) []Candidate {
	var out []Candidate
	for _, id := range w.EnemyIDs() {
		e := w.Enemies[id]
		pos, ok := w.Positions[id]
		if !ok {
			continue
		}
		if !Visible(w.Fog, e, *pos) || !bullet.CanHit(e.Flies) {
			continue
		}
		if geom.Dist(origin, *pos) > rangePx {
			continue
		}
		out = append(out, Candidate{ID: id, Pos: *pos, MaxHealth: e.MaxHealth})
	}
	return out
}

// SelectClosest picks the candidate nearest to origin. Ties go to the first one.
func SelectClosest(origin geom.Vec2, cands []Candidate) (Candidate, bool) {
	best := -1
	bestDist := 0.0
	for i, c := range cands {
		d := c.Pos.Sub(origin).LenSq()
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Candidate{}, false
	}
	return cands[best], true
}

// SelectStrongest picks the candidate with the highest max health. Ties go to the first one.
func SelectStrongest(cands []Candidate) (Candidate, bool) {
	best := -1
	for i, c := range cands {
		if best < 0 || c.MaxHealth > cands[best].MaxHealth {
			best = i
		}
	}
	if best < 0 {
		return Candidate{}, false
	}
	return cands[best], true
}

// SelectDensest picks the candidate position with the most candidates within
// radius of it, itself included. Ties go to the first one.
func SelectDensest(cands []Candidate, radius float64) (Candidate, int, error) {
	if radius <= 0 {
		return Candidate{}, 0, ErrNotAreaEffect
	}
	best, bestCount := -1, 0
	rSq := radius * radius
	for i, c := range cands {
		n := 0
		for _, o := range cands {
			if o.Pos.Sub(c.Pos).LenSq() <= rSq {
				n++
			}
		}
		if n > bestCount {
			best, bestCount = i, n
		}
	}
	if best < 0 {
		return Candidate{}, 0, nil
	}
	return cands[best], bestCount, nil
}

// SelectTarget applies a weapon's strategy. ok is false when nothing is eligible.
func SelectTarget(strategy defs.TargetStrategy, origin geom.Vec2, cands []Candidate, bullet defs.BulletDefinition) (Selection, bool, error) {
	switch strategy {
	case defs.TargetClosest:
		c, ok := SelectClosest(origin, cands)
		return Selection{Target: c, Point: c.Pos}, ok, nil
	case defs.TargetStrongest:
		c, ok := SelectStrongest(cands)
		return Selection{Target: c, Point: c.Pos}, ok, nil
	case defs.TargetDensest:
		if !bullet.IsAreaEffect() {
			return Selection{}, false, ErrNotAreaEffect
		}
		c, n, err := SelectDensest(cands, bullet.ExplosionRadius)
		if err != nil || n == 0 {
			return Selection{}, false, err
		}
		return Selection{Target: c, Point: c.Pos, Cluster: n}, true, nil
	default:
		return Selection{}, false, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}
