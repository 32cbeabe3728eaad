// internal/component/visual.go
package component

import "go-wall-defense/pkg/geom"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффекту осталось
	Duration float64 // Общая продолжительность эффекта
}

// Blast is the expanding ring left by an explosive hit.
type Blast struct {
	Center    geom.Vec2
	Radius    float64
	MaxRadius float64
	Timer     float64 // Сколько времени эффект уже активен
	Duration  float64
}
