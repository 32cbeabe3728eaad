package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTunable is returned by Validate when a value makes the simulation meaningless.
var ErrInvalidTunable = errors.New("invalid tunable")

// StructureTunables describes one horizontal blocking structure.
type StructureTunables struct {
	Enabled bool    `yaml:"enabled"`
	Height  float64 `yaml:"height"`
	Health  float64 `yaml:"health"`
}

// Tunables holds every numeric knob the simulation reads at runtime.
type Tunables struct {
	NightDuration      float64 `yaml:"night_duration"`
	NoSpawnStart       float64 `yaml:"no_spawn_start"`
	NoSpawnStep        float64 `yaml:"no_spawn_step"`
	Beta               float64 `yaml:"beta"`
	SpawnInterval      float64 `yaml:"spawn_interval"`
	StructureClearance float64 `yaml:"structure_clearance"`
	StartingResources  float64 `yaml:"starting_resources"`
	GameSpeed          float64 `yaml:"game_speed"`
	MaxDeltaTime       float64 `yaml:"max_delta_time"`

	MapWidth  float64 `yaml:"map_width"`
	MapHeight float64 `yaml:"map_height"`
	// FogBottom is the lower edge of the fog band covering the top of the map.
	// Zero disables fog.
	FogBottom float64 `yaml:"fog_bottom"`

	Wall     StructureTunables `yaml:"wall"`
	Fence    StructureTunables `yaml:"fence"`
	FenceGap float64           `yaml:"fence_gap"`
}

// Default returns the built-in tunables.
func Default() Tunables {
	return Tunables{
		NightDuration:      NightDuration,
		NoSpawnStart:       NoSpawnStart,
		NoSpawnStep:        NoSpawnStep,
		Beta:               Beta,
		SpawnInterval:      SpawnInterval,
		StructureClearance: StructureClearance,
		StartingResources:  StartingResources,
		GameSpeed:          1,
		MaxDeltaTime:       MaxDeltaTime,
		MapWidth:           MapWidth,
		MapHeight:          MapHeight,
		FogBottom:          FogBottom,
		Wall:               StructureTunables{Enabled: true, Height: WallHeight, Health: WallHealth},
		Fence:              StructureTunables{Enabled: true, Height: FenceHeight, Health: FenceHealth},
		FenceGap:           FenceGap,
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (Tunables, error) {
	t := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tunables file: %w", err)
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tunables: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	slog.Info("loaded tunables", "path", path, "night_duration", t.NightDuration, "beta", t.Beta)
	return t, nil
}

// SpeedScale converts a speed in percent of map height per second into pixels per second.
func (t Tunables) SpeedScale() float64 {
	return t.MapHeight / 100
}

// RangeToPixels converts a range in percent of map height into pixels.
func (t Tunables) RangeToPixels(percent float64) float64 {
	return percent * t.MapHeight / 100
}

// Validate rejects values that would break the simulation maths.
func (t Tunables) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"night_duration", t.NightDuration > 0},
		{"spawn_interval", t.SpawnInterval > 0},
		{"beta", t.Beta >= 0},
		{"no_spawn_step", t.NoSpawnStep >= 0},
		{"structure_clearance", t.StructureClearance >= 0},
		{"starting_resources", t.StartingResources >= 0},
		{"game_speed", t.GameSpeed > 0},
		{"max_delta_time", t.MaxDeltaTime > 0},
		{"map_width", t.MapWidth > 0},
		{"map_height", t.MapHeight > 0},
		{"fog_bottom", t.FogBottom >= 0 && t.FogBottom < t.MapHeight},
		{"wall.height", !t.Wall.Enabled || t.Wall.Height > 0},
		{"wall.health", !t.Wall.Enabled || t.Wall.Health > 0},
		{"fence.height", !t.Fence.Enabled || t.Fence.Height > 0},
		{"fence.health", !t.Fence.Enabled || t.Fence.Health > 0},
		{"fence_gap", t.FenceGap >= 0},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidTunable, c.name)
		}
	}
	if math.IsNaN(t.NoSpawnStart) || math.IsInf(t.NoSpawnStart, 0) {
		return fmt.Errorf("%w: no_spawn_start", ErrInvalidTunable)
	}
	return nil
}
