// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/config"
	"go-wall-defense/internal/defs"
	"go-wall-defense/internal/entity"
	"go-wall-defense/internal/event"
	"go-wall-defense/internal/system"
	"go-wall-defense/internal/utils"
	"go-wall-defense/pkg/geom"
)

var (
	ErrWallDestroyed   = errors.New("wall destroyed")
	ErrInvalidSpeed    = errors.New("game speed must be positive")
	ErrNightInProgress = errors.New("night in progress")
)

// Options configures a Game. Nil catalog, arsenal, rng or policies fall
// back to the built-in ones; a nil Loadout places one of every weapon.
type Options struct {
	Tunables config.Tunables
	Catalog  *defs.EnemyCatalog
	Arsenal  *defs.Arsenal
	Loadout  []Placement
	Rng      utils.RandomSource
	Policies *system.PolicySet
}

// Game holds the main game state and logic.
type Game struct {
	World           *entity.World
	Tunables        config.Tunables
	Arsenal         *defs.Arsenal
	EventDispatcher *event.Dispatcher

	NightSystem        *system.NightSystem
	SpawnSystem        *system.SpawnSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	VisualEffectSystem *system.VisualEffectSystem
	Resolver           *system.ImpactResolver

	// Game state
	gameTime      float64
	isPaused      bool
	gameSpeed     float64
	nightRunning  bool
	wallDestroyed bool
	lastNight     *component.WaveStats
}

// NewGame initializes a new game instance.
func NewGame(opts Options) (*Game, error) {
	tun := opts.Tunables
	if err := tun.Validate(); err != nil {
		return nil, err
	}
	catalog := opts.Catalog
	if catalog == nil {
		c, err := defs.NewEnemyCatalog(defs.DefaultEnemies())
		if err != nil {
			return nil, fmt.Errorf("built-in enemy catalog: %w", err)
		}
		catalog = c
	}
	arsenal := opts.Arsenal
	if arsenal == nil {
		a, err := defs.NewArsenal(defs.DefaultWeapons())
		if err != nil {
			return nil, fmt.Errorf("built-in arsenal: %w", err)
		}
		arsenal = a
	}
	rng := opts.Rng
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	policies := system.DefaultPolicies()
	if opts.Policies != nil {
		policies = *opts.Policies
	}

	world := entity.NewWorld(tun.MapWidth, tun.MapHeight)
	world.Resources = tun.StartingResources
	buildStructures(world, tun)

	eventDispatcher := event.NewDispatcher()
	resolver := system.NewImpactResolver(world, policies, eventDispatcher)
	speedScale := tun.SpeedScale()

	g := &Game{
		World:              world,
		Tunables:           tun,
		Arsenal:            arsenal,
		EventDispatcher:    eventDispatcher,
		NightSystem:        system.NewNightSystem(world, tun, eventDispatcher),
		SpawnSystem:        system.NewSpawnSystem(world, catalog, tun, rng, eventDispatcher),
		CombatSystem:       system.NewCombatSystem(world, tun, eventDispatcher),
		ProjectileSystem:   system.NewProjectileSystem(world, resolver, eventDispatcher, speedScale),
		MovementSystem:     system.NewMovementSystem(world, eventDispatcher, speedScale),
		StatusEffectSystem: system.NewStatusEffectSystem(world),
		VisualEffectSystem: system.NewVisualEffectSystem(world),
		Resolver:           resolver,
		gameSpeed:          tun.GameSpeed,
	}

	loadout := opts.Loadout
	if loadout == nil {
		loadout = DefaultLoadout(arsenal, tun)
	}
	for _, p := range loadout {
		if _, err := g.PlaceWeapon(p); err != nil {
			return nil, err
		}
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.StructureDestroyed, listener)

	return g, nil
}

// buildStructures lays the wall along the bottom of the map and the fence
// FenceGap above it. Disabled structures stay nil.
func buildStructures(w *entity.World, tun config.Tunables) {
	bottom := tun.MapHeight
	if tun.Wall.Enabled {
		w.Wall = &component.Structure{
			Kind:      component.StructureWall,
			Box:       geom.Rect{Center: geom.Vec2{X: tun.MapWidth / 2, Y: tun.MapHeight - tun.Wall.Height/2}, W: tun.MapWidth, H: tun.Wall.Height},
			Health:    tun.Wall.Health,
			MaxHealth: tun.Wall.Health,
		}
		bottom = w.Wall.TopEdge()
	}
	if tun.Fence.Enabled {
		y := bottom - tun.FenceGap - tun.Fence.Height/2
		w.Fence = &component.Structure{
			Kind:      component.StructureFence,
			Box:       geom.Rect{Center: geom.Vec2{X: tun.MapWidth / 2, Y: y}, W: tun.MapWidth, H: tun.Fence.Height},
			Health:    tun.Fence.Health,
			MaxHealth: tun.Fence.Health,
		}
	}
	if tun.FogBottom > 0 {
		w.Fog = &component.Fog{Bottom: tun.FogBottom}
	}
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.StructureDestroyed:
		if kind, ok := e.Data.(component.StructureKind); ok && kind == component.StructureWall {
			l.game.wallDestroyed = true
			slog.Warn("wall destroyed", "day", l.game.World.Day, "night_time", l.game.World.NightTime)
		}
	}
}

// StartNight begins the night of the given day. Enemies and projectiles left
// over from the previous night are cleared; structures keep their damage.
func (g *Game) StartNight(day int) error {
	if day < 1 {
		return fmt.Errorf("%w: got %d", system.ErrInvalidDay, day)
	}
	if g.wallDestroyed {
		return ErrWallDestroyed
	}
	g.World.ClearEnemies()
	g.World.ClearProjectiles()
	for _, w := range g.World.Weapons {
		w.FireCooldown = 0
	}
	g.NightSystem.Start(day)
	g.SpawnSystem.Reset()
	g.nightRunning = true
	return nil
}

// Update progresses the game state by one frame. The frame time is clamped
// to MaxDeltaTime, scaled by the game speed and fed to the systems in steps
// no longer than MaxDeltaTime.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || !g.nightRunning || g.NightOver() || deltaTime <= 0 {
		return
	}
	remaining := math.Min(deltaTime, g.Tunables.MaxDeltaTime) * g.gameSpeed
	for remaining > 1e-9 && !g.NightOver() {
		step := math.Min(remaining, g.Tunables.MaxDeltaTime)
		g.tick(step)
		remaining -= step
	}
	if g.NightOver() {
		g.nightRunning = false
		g.lastNight = g.World.Stats.Clone()
		totals := g.lastNight.Totals()
		slog.Info("night over", "day", g.World.Day, "spawned", totals.Spawned, "killed", totals.Killed,
			"wall_destroyed", g.wallDestroyed)
	}
}

// tick runs every system once, in a fixed order.
func (g *Game) tick(dt float64) {
	g.gameTime += dt
	g.NightSystem.Update(dt)
	g.SpawnSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.StatusEffectSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
}

// NightOver reports whether the night is finished: the clock ran out and no
// enemy is left, or the wall fell.
func (g *Game) NightOver() bool {
	if g.wallDestroyed {
		return true
	}
	return g.NightSystem.Ended() && len(g.World.Enemies) == 0
}

// NightRunning reports whether a night has been started and is not over yet.
func (g *Game) NightRunning() bool { return g.nightRunning }

// WallDestroyed reports whether the wall has fallen. The game cannot continue.
func (g *Game) WallDestroyed() bool { return g.wallDestroyed }

// LastNight returns the stats of the most recently finished night, or nil.
func (g *Game) LastNight() *component.WaveStats { return g.lastNight }

// SetSpeed changes the game speed multiplier.
func (g *Game) SetSpeed(multiplier float64) error {
	if !(multiplier > 0) || math.IsInf(multiplier, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, multiplier)
	}
	g.gameSpeed = multiplier
	return nil
}

func (g *Game) Speed() float64 { return g.gameSpeed }

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}
