package component

import "go-wall-defense/internal/defs"

// Weapon - компонент турели, управляющий атакой
type Weapon struct {
	Def          defs.WeaponDefinition
	FireCooldown float64 // Оставшееся время до следующего выстрела
}

// FireInterval returns seconds between shots.
func (w *Weapon) FireInterval() float64 {
	return 1.0 / w.Def.FireRate
}
