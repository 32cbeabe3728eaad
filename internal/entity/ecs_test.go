package entity

import (
	"slices"
	"testing"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/defs"
	"go-wall-defense/internal/types"
	"go-wall-defense/pkg/geom"
)

func TestIDsAreOrderedByCreation(t *testing.T) {
	w := NewWorld(100, 100)
	def := defs.DefaultEnemies()[0]
	var want []types.EntityID
	for i := 0; i < 20; i++ {
		want = append(want, w.AddEnemy(component.NewEnemy(def), geom.Vec2{X: float64(i), Y: 0}))
	}
	if !slices.Equal(w.EnemyIDs(), want) {
		t.Fatalf("EnemyIDs = %v, want %v", w.EnemyIDs(), want)
	}
}

func TestRemoveEnemyDropsComponents(t *testing.T) {
	w := NewWorld(100, 100)
	id := w.AddEnemy(component.NewEnemy(defs.DefaultEnemies()[0]), geom.Vec2{X: 1, Y: 1})
	w.SlowEffects[id] = &component.SlowEffect{Timer: 1, SlowFactor: 0.5}

	w.RemoveEnemy(id)
	if _, ok := w.Enemies[id]; ok {
		t.Error("enemy still present")
	}
	if _, ok := w.Positions[id]; ok {
		t.Error("position still present")
	}
	if _, ok := w.Velocities[id]; ok {
		t.Error("velocity still present")
	}
	if _, ok := w.SlowEffects[id]; ok {
		t.Error("slow effect still present")
	}
}

func TestTopBlocker(t *testing.T) {
	w := NewWorld(100, 100)
	if _, ok := w.TopBlocker(false); ok {
		t.Fatal("no structures should mean no blocker")
	}
	w.Wall = &component.Structure{Kind: component.StructureWall, Health: 10}
	w.Fence = &component.Structure{Kind: component.StructureFence, Health: 5}

	if s, _ := w.TopBlocker(false); s != w.Fence {
		t.Error("fence should block ground enemies")
	}
	if s, _ := w.TopBlocker(true); s != w.Wall {
		t.Error("flyers should see the wall")
	}
	w.Fence.Health = 0
	if s, _ := w.TopBlocker(false); s != w.Wall {
		t.Error("broken fence should not block")
	}
}

func TestEnemyBody(t *testing.T) {
	w := NewWorld(100, 100)
	def := defs.DefaultEnemies()[3]
	id := w.AddEnemy(component.NewEnemy(def), geom.Vec2{X: 50, Y: 20})
	body, ok := w.EnemyBody(id)
	if !ok || body.W != def.Width || body.H != def.Height || body.Center != (geom.Vec2{X: 50, Y: 20}) {
		t.Errorf("EnemyBody = %+v, %v", body, ok)
	}
	if _, ok := w.EnemyBody(999); ok {
		t.Error("unknown enemy should have no body")
	}
}
