package system

import (
	"testing"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/config"
	"go-wall-defense/internal/defs"
	"go-wall-defense/internal/entity"
	"go-wall-defense/internal/event"
	"go-wall-defense/internal/types"
	"go-wall-defense/pkg/geom"
)

// scriptedRand replays fixed Float64 values, cycling when it runs out.
type scriptedRand struct {
	values []float64
	calls  int
}

func (r *scriptedRand) Float64() float64 {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v
}

func (r *scriptedRand) Intn(n int) int { return int(r.Float64() * float64(n)) }

// testTunables has no fog and no structures unless a test adds them.
func testTunables() config.Tunables {
	tun := config.Default()
	tun.MapWidth = 1000
	tun.MapHeight = 1000
	tun.FogBottom = 0
	return tun
}

type fixture struct {
	world    *entity.World
	tun      config.Tunables
	events   *event.Recorder
	dispatch *event.Dispatcher
	resolver *ImpactResolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tun := testTunables()
	w := entity.NewWorld(tun.MapWidth, tun.MapHeight)
	w.Resources = 1000
	d := event.NewDispatcher()
	rec := &event.Recorder{}
	for _, et := range []event.EventType{
		event.EnemySpawned, event.EnemyKilled, event.EnemyReachedWall, event.ProjectileFired,
		event.ProjectileExpired, event.StructureDestroyed, event.WeaponFault, event.NightEnded,
	} {
		d.Subscribe(et, rec)
	}
	return &fixture{
		world:    w,
		tun:      tun,
		events:   rec,
		dispatch: d,
		resolver: NewImpactResolver(w, DefaultPolicies(), d),
	}
}

func (f *fixture) addEnemy(def defs.EnemyDefinition, x, y float64) types.EntityID {
	return f.world.AddEnemy(component.NewEnemy(def), geom.Vec2{X: x, Y: y})
}

func grunt(name string, maxHealth float64) defs.EnemyDefinition {
	return defs.EnemyDefinition{
		Name: name, MaxHealth: maxHealth, Width: 10, Height: 10,
		Speed: 5, Strength: 1, Damage: 10, Bounty: 2,
	}
}

func flyer(name string, maxHealth float64) defs.EnemyDefinition {
	d := grunt(name, maxHealth)
	d.Flies = true
	return d
}
