package system

import (
	"math"
	"testing"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/defs"
	"go-wall-defense/internal/event"
	"go-wall-defense/pkg/geom"
)

func testWeapon(strategy defs.TargetStrategy) defs.WeaponDefinition {
	return defs.WeaponDefinition{
		Name: "Test gun", FireRate: 1, Range: 50, Strategy: strategy, ShotCost: 5,
		Bullet: defs.BulletDefinition{Speed: 50, Radius: 3, HitsGround: true,
			Damage: defs.DamageDef{Amount: 10, Kind: defs.DamagePhysical}},
	}
}

func onlyProjectile(t *testing.T, f *fixture) *component.Projectile {
	t.Helper()
	ids := f.world.ProjectileIDs()
	if len(ids) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(ids))
	}
	return f.world.Projectiles[ids[0]]
}

func TestCombatFiresAndPays(t *testing.T) {
	f := newFixture(t)
	cs := NewCombatSystem(f.world, f.tun, f.dispatch)
	wid := f.world.AddWeapon(&component.Weapon{Def: testWeapon(defs.TargetClosest)}, geom.Vec2{X: 500, Y: 900})
	f.addEnemy(grunt("Orc", 30), 500, 600)

	cs.Update(0.016)

	p := onlyProjectile(t, f)
	if p.WeaponID != wid {
		t.Errorf("projectile weapon = %d, want %d", p.WeaponID, wid)
	}
	if math.Abs(p.Direction-(-math.Pi/2)) > 1e-9 {
		t.Errorf("direction = %v, want straight up", p.Direction)
	}
	if p.MaxDistance != 500 {
		t.Errorf("max distance = %v, want 500", p.MaxDistance)
	}
	if f.world.Resources != 995 {
		t.Errorf("resources = %v, want 995", f.world.Resources)
	}
	if f.world.Stats.ResourcesConsumed != 5 {
		t.Errorf("consumed = %v, want 5", f.world.Stats.ResourcesConsumed)
	}
	if f.world.Weapons[wid].FireCooldown != 1 {
		t.Errorf("cooldown = %v, want 1", f.world.Weapons[wid].FireCooldown)
	}
	if got := f.events.Count(event.ProjectileFired); got != 1 {
		t.Errorf("ProjectileFired events = %d, want 1", got)
	}

	cs.Update(0.5)
	if len(f.world.Projectiles) != 1 {
		t.Fatal("fired again before the cooldown ran out")
	}
	cs.Update(0.6)
	if len(f.world.Projectiles) != 2 {
		t.Errorf("projectiles = %d after cooldown, want 2", len(f.world.Projectiles))
	}
}

func TestCombatHoldsFire(t *testing.T) {
	tests := []struct {
		name      string
		resources float64
		enemyY    float64
	}{
		{"not enough resources", 2, 600},
		{"out of range", 1000, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.world.Resources = tt.resources
			cs := NewCombatSystem(f.world, f.tun, f.dispatch)
			f.world.AddWeapon(&component.Weapon{Def: testWeapon(defs.TargetClosest)}, geom.Vec2{X: 500, Y: 900})
			f.addEnemy(grunt("Orc", 30), 500, tt.enemyY)

			cs.Update(0.016)

			if len(f.world.Projectiles) != 0 {
				t.Error("weapon fired")
			}
			if f.world.Resources != tt.resources {
				t.Errorf("resources changed to %v", f.world.Resources)
			}
		})
	}
}

func TestCombatFaultSkipsOnlyThatWeapon(t *testing.T) {
	f := newFixture(t)
	cs := NewCombatSystem(f.world, f.tun, f.dispatch)
	broken := f.world.AddWeapon(&component.Weapon{Def: testWeapon(defs.TargetDensest)}, geom.Vec2{X: 400, Y: 900})
	working := f.world.AddWeapon(&component.Weapon{Def: testWeapon(defs.TargetClosest)}, geom.Vec2{X: 600, Y: 900})
	f.addEnemy(grunt("Orc", 30), 500, 600)

	cs.Update(0.016)

	if got := f.events.Count(event.WeaponFault); got != 1 {
		t.Fatalf("WeaponFault events = %d, want 1", got)
	}
	fault := f.events.Events[0].Data.(event.FaultData)
	if fault.WeaponID != broken {
		t.Errorf("fault from weapon %d, want %d", fault.WeaponID, broken)
	}
	if p := onlyProjectile(t, f); p.WeaponID != working {
		t.Errorf("projectile from weapon %d, want %d", p.WeaponID, working)
	}
	if f.world.Resources != 995 {
		t.Errorf("resources = %v, only one shot should be paid", f.world.Resources)
	}
}

func TestCombatLeadsMovingTarget(t *testing.T) {
	f := newFixture(t)
	cs := NewCombatSystem(f.world, f.tun, f.dispatch)
	def := testWeapon(defs.TargetClosest)
	def.Predict = true
	f.world.AddWeapon(&component.Weapon{Def: def}, geom.Vec2{X: 200, Y: 900})
	f.addEnemy(grunt("Orc", 30), 500, 600)

	cs.Update(0.016)

	// base (300,-300); the enemy walks 5/50 of the flight distance further down
	lead := 5 * math.Hypot(300, 300) / 50
	want := math.Atan2(600+lead-900, 300)
	if p := onlyProjectile(t, f); math.Abs(p.Direction-want) > 1e-9 {
		t.Errorf("direction = %v, want %v", p.Direction, want)
	}
}

func TestCombatDoesNotLeadBlockedEnemy(t *testing.T) {
	f := newFixture(t)
	cs := NewCombatSystem(f.world, f.tun, f.dispatch)
	def := testWeapon(defs.TargetClosest)
	def.Predict = true
	f.world.AddWeapon(&component.Weapon{Def: def}, geom.Vec2{X: 200, Y: 900})
	id := f.addEnemy(grunt("Orc", 30), 500, 600)
	f.world.Enemies[id].Blocked = true

	cs.Update(0.016)

	if p := onlyProjectile(t, f); math.Abs(p.Direction-(-math.Pi/4)) > 1e-9 {
		t.Errorf("direction = %v, want aim straight at the enemy", p.Direction)
	}
}
