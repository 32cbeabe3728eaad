// internal/state/summary_state.go
package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-wall-defense/internal/config"
	"go-wall-defense/internal/interfaces"
	"go-wall-defense/pkg/render"
)

// SummaryState shows the finished night and waits for the next one.
type SummaryState struct {
	sm       *StateMachine
	game     interfaces.Game
	renderer *render.FieldRenderer
	pressed  KeyPressed
	day      int
}

func NewSummaryState(sm *StateMachine, g interfaces.Game, r *render.FieldRenderer) *SummaryState {
	return &SummaryState{sm: sm, game: g, renderer: r, pressed: inpututil.IsKeyJustPressed}
}

func (s *SummaryState) Enter() {
	s.day = s.game.Snapshot().Day
}

// Lines is the summary text, one entry per line.
func (s *SummaryState) Lines() []string {
	var lines []string
	if s.game.WallDestroyed() {
		lines = append(lines, fmt.Sprintf("The wall fell on night %d", s.day))
	} else {
		lines = append(lines, fmt.Sprintf("Night %d survived", s.day))
	}
	if stats := s.game.LastNight(); stats != nil {
		t := stats.Totals()
		lines = append(lines, fmt.Sprintf("Spawned %d, killed %d", t.Spawned, t.Killed))
		lines = append(lines, fmt.Sprintf("Resources spent %.0f, earned %.0f", stats.ResourcesConsumed, stats.ResourcesProduced))
	}
	if !s.game.WallDestroyed() {
		lines = append(lines, "Press N for the next night")
	}
	return lines
}

func (s *SummaryState) Update(deltaTime float64) {
	if s.game.WallDestroyed() || !s.pressed(ebiten.KeyN) {
		return
	}
	if err := s.game.StartNight(s.day + 1); err != nil {
		slog.Error("cannot start the next night", "day", s.day+1, "err", err)
		return
	}
	night := NewNightState(s.sm, s.game, s.renderer)
	night.pressed = s.pressed
	s.sm.SetState(night)
}

func (s *SummaryState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game.Snapshot())
	y := config.ScreenHeight / 3
	for _, line := range s.Lines() {
		s.renderer.DrawBanner(screen, line, y)
		y += config.TextLineHeight
	}
}

func (s *SummaryState) Exit() {}
