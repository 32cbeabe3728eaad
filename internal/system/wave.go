// internal/system/wave.go
package system

import (
	"fmt"
	"log/slog"
	"math"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/config"
	"go-wall-defense/internal/defs"
	"go-wall-defense/internal/entity"
	"go-wall-defense/internal/event"
	"go-wall-defense/internal/types"
	"go-wall-defense/internal/utils"
	"go-wall-defense/pkg/geom"
)

// SpawnSystem decides once per spawn tick whether an enemy appears and which one.
type SpawnSystem struct {
	world           *entity.World
	catalog         *defs.EnemyCatalog
	tun             config.Tunables
	rng             utils.RandomSource
	eventDispatcher *event.Dispatcher
	timer           float64
}

func NewSpawnSystem(world *entity.World, catalog *defs.EnemyCatalog, tun config.Tunables,
	rng utils.RandomSource, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		catalog:         catalog,
		tun:             tun,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Reset restarts the spawn tick timer, at the start of a night.
func (s *SpawnSystem) Reset() { s.timer = 0 }

// NoSpawnThreshold is the roll a spawn attempt has to beat on the given day.
// It drops by NoSpawnStep per day and is not clamped: once it goes negative
// every roll spawns.
func (s *SpawnSystem) NoSpawnThreshold(day int) float64 {
	return s.tun.NoSpawnStart - s.tun.NoSpawnStep*float64(day-1)
}

// SpawnWeight is the non-normalized weight of one archetype. Archetypes at or
// below the day ramp linearly; stronger ones are suppressed exponentially, less
// so as the night goes on.
func SpawnWeight(strength float64, day int, elapsed, nightDuration, beta float64) float64 {
	d := float64(day)
	if strength <= d {
		return strength / d
	}
	ahead := strength - d
	return math.Exp(-beta * (1 - elapsed/nightDuration) * ahead * ahead * ahead)
}

func (s *SpawnSystem) checkPreconditions(day int, elapsed float64) error {
	if day < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDay, day)
	}
	if math.IsNaN(elapsed) || elapsed < 0 || elapsed > s.tun.NightDuration {
		return fmt.Errorf("%w: %.3f not in [0, %.3f]", ErrInvalidNightTime, elapsed, s.tun.NightDuration)
	}
	return nil
}

// Weights returns one raw weight per catalog archetype, in catalog order.
func (s *SpawnSystem) Weights(day int, elapsed float64) ([]float64, error) {
	if err := s.checkPreconditions(day, elapsed); err != nil {
		return nil, err
	}
	weights := make([]float64, s.catalog.Len())
	for i, a := range s.catalog.Archetypes {
		weights[i] = SpawnWeight(a.Strength, day, elapsed, s.tun.NightDuration, s.tun.Beta)
	}
	return weights, nil
}

// ChooseEnemy runs one spawn attempt. It returns (nil, nil) when the gate
// roll decides nothing spawns this tick.
func (s *SpawnSystem) ChooseEnemy(day int, elapsed float64) (*defs.EnemyDefinition, error) {
	if err := s.checkPreconditions(day, elapsed); err != nil {
		return nil, err
	}
	if s.rng.Float64() <= s.NoSpawnThreshold(day) {
		return nil, nil
	}
	weights, err := s.Weights(day, elapsed)
	if err != nil {
		return nil, err
	}
	idx, err := utils.ChooseWeighted(s.rng, weights)
	if err != nil {
		return nil, fmt.Errorf("sample archetype on day %d: %w", day, err)
	}
	return &s.catalog.Archetypes[idx], nil
}

// Update evaluates the spawn ticks that fall inside dt while the night lasts.
func (s *SpawnSystem) Update(deltaTime float64) {
	if s.world.NightTime >= s.tun.NightDuration {
		return
	}
	s.timer += deltaTime
	for s.timer >= s.tun.SpawnInterval {
		s.timer -= s.tun.SpawnInterval
		def, err := s.ChooseEnemy(s.world.Day, s.world.NightTime)
		if err != nil {
			slog.Warn("spawn tick skipped", "day", s.world.Day, "night_time", s.world.NightTime, "err", err)
			continue
		}
		if def != nil {
			s.spawnEnemy(*def)
		}
	}
}

func (s *SpawnSystem) spawnEnemy(def defs.EnemyDefinition) types.EntityID {
	left := def.Width / 2
	right := s.tun.MapWidth - def.Width/2
	x := s.tun.MapWidth / 2
	if right > left {
		x = left + s.rng.Float64()*(right-left)
	}
	id := s.world.AddEnemy(component.NewEnemy(def), geom.Vec2{X: x, Y: def.Height / 2})
	s.world.Stats.RecordSpawn(def.Name)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{ID: id, Name: def.Name}})
	return id
}
