package interfaces

import (
	"go-wall-defense/internal/app"
	"go-wall-defense/internal/component"
)

// Game is what the screen states drive. *app.Game implements it.
type Game interface {
	Update(deltaTime float64)
	StartNight(day int) error
	NightOver() bool
	WallDestroyed() bool
	HandlePauseClick()
	IsPaused() bool
	SetSpeed(multiplier float64) error
	Snapshot() app.Snapshot
	LastNight() *component.WaveStats
}

var _ Game = (*app.Game)(nil)
