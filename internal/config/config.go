// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Simulation defaults. Everything here can be overridden through Tunables.
	NightDuration      = 120.0 // seconds
	NoSpawnStart       = 0.85
	NoSpawnStep        = 0.05
	Beta               = 0.3
	SpawnInterval      = 0.25 // seconds between spawn ticks
	StructureClearance = 6.0  // pixels, measured from a structure's top edge toward the enemies
	StartingResources  = 500.0

	MapWidth  = 800.0
	MapHeight = 800.0
	FogBottom = 160.0

	WallHeight  = 40.0
	WallHealth  = 1000.0
	FenceHeight = 16.0
	FenceGap    = 24.0 // vertical gap between the fence and the wall
	FenceHealth = 300.0

	ProjectileRadius = 3.0
	WeaponSpacing    = 20.0 // minimum distance between two weapons on the wall

	FlashDuration = 0.15 // seconds an enemy blinks after a hit
	BlastDuration = 0.3  // seconds an explosion ring grows

	IndicatorOffsetX = 30
	TextCharWidth    = 7
	TextLineHeight   = 16
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GroundColor     = color.RGBA{46, 58, 40, 255}
	FogColor        = color.RGBA{120, 120, 140, 170}
	WallColor       = color.RGBA{150, 150, 150, 255}
	FenceColor      = color.RGBA{139, 90, 43, 255}
	WeaponColor     = color.RGBA{70, 130, 180, 255}
	EnemyColor      = color.RGBA{200, 60, 60, 255}
	FlyerColor      = color.RGBA{220, 160, 60, 255}
	ProjectileColor = color.RGBA{255, 230, 120, 255}
	HealthBarColor  = color.RGBA{50, 205, 50, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}

	// Множители скорости игры: x1, x2, x4
	GameSpeeds = []float64{1, 2, 4}
)
