package system

import (
	"testing"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/event"
	"go-wall-defense/pkg/geom"
)

// withStructures puts the wall at the bottom of a 1000px map (top edge 960)
// and the fence above it (top edge 920).
func withStructures(f *fixture) {
	f.world.Wall = &component.Structure{
		Kind:   component.StructureWall,
		Box:    geom.Rect{Center: geom.Vec2{X: 500, Y: 980}, W: 1000, H: 40},
		Health: 1000, MaxHealth: 1000,
	}
	f.world.Fence = &component.Structure{
		Kind:   component.StructureFence,
		Box:    geom.Rect{Center: geom.Vec2{X: 500, Y: 928}, W: 1000, H: 16},
		Health: 300, MaxHealth: 300,
	}
}

func TestGroundEnemyStopsAtFence(t *testing.T) {
	f := newFixture(t)
	withStructures(f)
	ms := NewMovementSystem(f.world, f.dispatch, 1)
	id := f.addEnemy(grunt("Orc", 30), 500, 910)

	ms.Update(1)

	e := f.world.Enemies[id]
	if got := f.world.Positions[id].Y; got != 915 {
		t.Errorf("y = %v, want 915 (touching the fence)", got)
	}
	if !e.Blocked {
		t.Error("enemy at the fence should be blocked")
	}
	if got := f.world.Fence.Health; got != 290 {
		t.Errorf("fence health = %v, want 290", got)
	}
	if got := f.world.Wall.Health; got != 1000 {
		t.Errorf("wall health = %v, want untouched", got)
	}
}

func TestFenceBreaksAndEnemyMovesOn(t *testing.T) {
	f := newFixture(t)
	withStructures(f)
	f.world.Fence.Health = 5
	ms := NewMovementSystem(f.world, f.dispatch, 1)
	id := f.addEnemy(grunt("Orc", 30), 500, 915)

	ms.Update(1)
	if f.world.Fence.Alive() {
		t.Fatal("fence should be destroyed")
	}
	if got := f.world.Fence.Health; got != 0 {
		t.Errorf("fence health = %v, want clamped to 0", got)
	}
	if got := f.events.Count(event.StructureDestroyed); got != 1 {
		t.Errorf("StructureDestroyed events = %d, want 1", got)
	}

	ms.Update(1)
	if got := f.world.Positions[id].Y; got != 920 {
		t.Errorf("y = %v, want 920 after the fence fell", got)
	}
	if f.world.Enemies[id].Blocked {
		t.Error("enemy should no longer be blocked")
	}
	if got := f.events.Count(event.StructureDestroyed); got != 1 {
		t.Errorf("StructureDestroyed dispatched %d times", got)
	}
}

func TestFlyerReachesWall(t *testing.T) {
	f := newFixture(t)
	withStructures(f)
	ms := NewMovementSystem(f.world, f.dispatch, 1)
	id := f.addEnemy(flyer("Bat", 30), 500, 950)

	ms.Update(1)

	if _, ok := f.world.Enemies[id]; ok {
		t.Fatal("enemy that reached the wall is still alive")
	}
	if got := f.world.Wall.Health; got != 990 {
		t.Errorf("wall health = %v, want 990", got)
	}
	if got := f.world.Fence.Health; got != 300 {
		t.Errorf("flyer touched the fence: health %v", got)
	}
	if got := f.events.Count(event.EnemyReachedWall); got != 1 {
		t.Errorf("EnemyReachedWall events = %d, want 1", got)
	}
	if got := f.world.Stats.Get("Bat").Killed; got != 0 {
		t.Errorf("reaching the wall counted as %d kills", got)
	}
}

func TestEnemyLeavesOpenMap(t *testing.T) {
	f := newFixture(t)
	ms := NewMovementSystem(f.world, f.dispatch, 1)
	id := f.addEnemy(grunt("Orc", 30), 500, 1001)

	ms.Update(1)

	if _, ok := f.world.Enemies[id]; ok {
		t.Error("enemy past the bottom edge should leave the field")
	}
	if got := f.events.Count(event.EnemyReachedWall); got != 1 {
		t.Errorf("EnemyReachedWall events = %d, want 1", got)
	}
}

func TestSlowedEnemyMovesSlower(t *testing.T) {
	f := newFixture(t)
	ms := NewMovementSystem(f.world, f.dispatch, 1)
	fast := f.addEnemy(grunt("A", 30), 300, 100)
	slow := f.addEnemy(grunt("B", 30), 600, 100)
	f.world.SlowEffects[slow] = &component.SlowEffect{Timer: 5, SlowFactor: 0.5}

	ms.Update(1)

	if got := f.world.Positions[fast].Y; got != 105 {
		t.Errorf("fast y = %v, want 105", got)
	}
	if got := f.world.Positions[slow].Y; got != 102.5 {
		t.Errorf("slow y = %v, want 102.5", got)
	}
}

func TestStatusEffectsExpire(t *testing.T) {
	f := newFixture(t)
	se := NewStatusEffectSystem(f.world)
	id := f.addEnemy(grunt("A", 30), 300, 100)
	f.world.SlowEffects[id] = &component.SlowEffect{Timer: 1, SlowFactor: 0.5}

	se.Update(0.5)
	if _, ok := f.world.SlowEffects[id]; !ok {
		t.Fatal("slow expired early")
	}
	se.Update(0.6)
	if _, ok := f.world.SlowEffects[id]; ok {
		t.Error("slow should have expired")
	}
}

func TestNightClock(t *testing.T) {
	f := newFixture(t)
	f.tun.NightDuration = 10
	ns := NewNightSystem(f.world, f.tun, f.dispatch)
	f.world.Stats.RecordSpawn("leftover")

	ns.Start(3)
	if f.world.Day != 3 || f.world.Stats.Day != 3 || f.world.NightTime != 0 {
		t.Fatalf("Start did not reset the night: day %d stats day %d time %v", f.world.Day, f.world.Stats.Day, f.world.NightTime)
	}
	if got := f.world.Stats.Totals().Spawned; got != 0 {
		t.Errorf("stats carried over from the previous night: %d", got)
	}

	ns.Update(4)
	ns.Update(4)
	if ns.Ended() {
		t.Fatal("night ended early")
	}
	ns.Update(4)
	if !ns.Ended() {
		t.Fatal("night should have ended")
	}
	if f.world.NightTime != 10 {
		t.Errorf("night time = %v, want clamped to 10", f.world.NightTime)
	}
	ns.Update(4)
	if got := f.events.Count(event.NightEnded); got != 1 {
		t.Errorf("NightEnded events = %d, want 1", got)
	}
}
