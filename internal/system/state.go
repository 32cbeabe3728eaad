package system

import (
	"log/slog"
	"math"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/config"
	"go-wall-defense/internal/entity"
	"go-wall-defense/internal/event"
)

// NightSystem owns the night clock. Once the clock reaches the night
// duration spawning stops; live enemies and projectiles are left alone.
type NightSystem struct {
	world           *entity.World
	tun             config.Tunables
	eventDispatcher *event.Dispatcher
	ended           bool
}

func NewNightSystem(world *entity.World, tun config.Tunables, eventDispatcher *event.Dispatcher) *NightSystem {
	return &NightSystem{world: world, tun: tun, eventDispatcher: eventDispatcher}
}

// Start begins a night: resets the clock and opens a fresh WaveStats record.
func (s *NightSystem) Start(day int) {
	s.world.Day = day
	s.world.NightTime = 0
	s.world.Stats = component.NewWaveStats(day)
	s.ended = false
	slog.Info("night started", "day", day)
}

func (s *NightSystem) Update(deltaTime float64) {
	if s.ended {
		return
	}
	s.world.NightTime = math.Min(s.world.NightTime+deltaTime, s.tun.NightDuration)
	if s.world.NightTime >= s.tun.NightDuration {
		s.ended = true
		totals := s.world.Stats.Totals()
		slog.Info("night ended", "day", s.world.Day, "spawned", totals.Spawned, "killed", totals.Killed)
		s.eventDispatcher.Dispatch(event.Event{Type: event.NightEnded, Data: s.world.Stats})
	}
}

// Ended reports whether the clock has run out.
func (s *NightSystem) Ended() bool { return s.ended }
