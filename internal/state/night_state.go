// internal/state/night_state.go
package state

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-wall-defense/internal/config"
	"go-wall-defense/internal/interfaces"
	"go-wall-defense/internal/ui"
	"go-wall-defense/pkg/render"
)

// KeyPressed reports whether a key went down this frame.
type KeyPressed func(ebiten.Key) bool

// Click reports a left click made this frame and where it landed.
type Click func() (x, y float32, ok bool)

func leftClick() (float32, float32, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return float32(x), float32(y), true
}

var speedKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// NightState - идёт ночь, симуляция тикает каждый кадр
type NightState struct {
	sm       *StateMachine
	game     interfaces.Game
	renderer *render.FieldRenderer
	pressed  KeyPressed
	click    Click
	pauseBtn *ui.PauseButton
	speedBtn *ui.SpeedButton
}

func NewNightState(sm *StateMachine, g interfaces.Game, r *render.FieldRenderer) *NightState {
	speedColors := []color.Color{config.HealthBarColor, config.FlyerColor, config.EnemyColor}
	return &NightState{
		sm:       sm,
		game:     g,
		renderer: r,
		pressed:  inpututil.IsKeyJustPressed,
		click:    leftClick,
		pauseBtn: ui.NewPauseButton(config.ScreenWidth-100, 24, 10, config.TextLightColor, config.HealthBarColor),
		speedBtn: ui.NewSpeedButton(config.ScreenWidth-40, 24, 10, speedColors[:len(config.GameSpeeds)]),
	}
}

func (n *NightState) Enter() {
	n.pauseBtn.SetPaused(false)
}

func (n *NightState) Update(deltaTime float64) {
	if n.pressed(ebiten.KeySpace) || n.pressed(ebiten.KeyP) {
		n.pause()
		return
	}
	for i, key := range speedKeys {
		if i < len(config.GameSpeeds) && n.pressed(key) {
			n.setSpeed(i)
		}
	}
	if x, y, ok := n.click(); ok {
		switch {
		case n.pauseBtn.IsClicked(x, y):
			n.pause()
			return
		case n.speedBtn.IsClicked(x, y):
			n.setSpeed(n.speedBtn.ToggleState())
		}
	}

	n.game.Update(deltaTime)

	if n.game.NightOver() {
		n.sm.SetState(NewSummaryState(n.sm, n.game, n.renderer))
	}
}

func (n *NightState) pause() {
	n.game.HandlePauseClick()
	n.pauseBtn.TogglePause()
	n.sm.SetState(NewPauseState(n.sm, n))
}

func (n *NightState) setSpeed(i int) {
	if err := n.game.SetSpeed(config.GameSpeeds[i]); err != nil {
		slog.Warn("speed not changed", "err", err)
		return
	}
	n.speedBtn.SetState(i)
}

func (n *NightState) Draw(screen *ebiten.Image) {
	n.renderer.Draw(screen, n.game.Snapshot())
	n.pauseBtn.Draw(screen)
	n.speedBtn.Draw(screen)
}

func (n *NightState) Exit() {}
