// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wall-defense/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine *StateMachine
	night        *NightState
}

func NewPauseState(sm *StateMachine, night *NightState) *PauseState {
	return &PauseState{stateMachine: sm, night: night}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	p := s.night.pressed
	unpause := p(ebiten.KeySpace) || p(ebiten.KeyP) || p(ebiten.KeyEscape)
	if x, y, ok := s.night.click(); ok && s.night.pauseBtn.IsClicked(x, y) {
		unpause = true
	}
	if unpause {
		// снимаем паузу в самой игре перед возвратом
		s.night.game.HandlePauseClick()
		s.stateMachine.SetState(s.night)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.night.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	s.night.pauseBtn.Draw(screen)
	s.night.renderer.DrawBanner(screen, "PAUSED", config.ScreenHeight/2)
}

func (s *PauseState) Exit() {}
