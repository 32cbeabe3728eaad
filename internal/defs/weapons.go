// internal/defs/weapons.go
package defs

import "fmt"

// DamageDef describes what a bullet carries into an impact.
type DamageDef struct {
	Amount      float64    `json:"amount" yaml:"amount"`
	Kind        DamageKind `json:"kind" yaml:"kind"`
	Penetration float64    `json:"penetration,omitempty" yaml:"penetration,omitempty"`
}

// SlowDef makes a surviving enemy move slower for a while.
type SlowDef struct {
	Factor   float64 `json:"factor" yaml:"factor"`     // speed multiplier, e.g. 0.5
	Duration float64 `json:"duration" yaml:"duration"` // seconds
}

// BulletDefinition is the template a weapon copies into every projectile.
type BulletDefinition struct {
	Speed           float64   `json:"speed" yaml:"speed"` // percent of map height per second
	Radius          float64   `json:"radius" yaml:"radius"`
	Damage          DamageDef `json:"damage" yaml:"damage"`
	ExplosionRadius float64   `json:"explosion_radius,omitempty" yaml:"explosion_radius,omitempty"`
	HitsAir         bool      `json:"hits_air" yaml:"hits_air"`
	HitsGround      bool      `json:"hits_ground" yaml:"hits_ground"`
	Slow            *SlowDef  `json:"slow,omitempty" yaml:"slow,omitempty"`
}

// IsAreaEffect reports whether the bullet explodes on impact.
func (b BulletDefinition) IsAreaEffect() bool { return b.ExplosionRadius > 0 }

// CanHit reports whether the bullet can strike an enemy with the given flight capability.
func (b BulletDefinition) CanHit(flies bool) bool {
	if flies {
		return b.HitsAir
	}
	return b.HitsGround
}

// WeaponDefinition holds all the static data for a specific type of weapon.
type WeaponDefinition struct {
	Name     string           `json:"name" yaml:"name"`
	FireRate float64          `json:"fire_rate" yaml:"fire_rate"` // shots per second
	Range    float64          `json:"range" yaml:"range"`         // percent of map height
	Strategy TargetStrategy   `json:"strategy" yaml:"strategy"`
	ShotCost float64          `json:"shot_cost" yaml:"shot_cost"`
	Predict  bool             `json:"predict" yaml:"predict"`
	Bullet   BulletDefinition `json:"bullet" yaml:"bullet"`
}

func (w WeaponDefinition) validate() error {
	switch {
	case w.Name == "":
		return fmt.Errorf("%w: weapon without a name", ErrInvalidDefinition)
	case w.FireRate <= 0:
		return fmt.Errorf("%w: weapon %q: fire_rate must be positive", ErrInvalidDefinition, w.Name)
	case w.Range <= 0:
		return fmt.Errorf("%w: weapon %q: range must be positive", ErrInvalidDefinition, w.Name)
	case w.ShotCost < 0:
		return fmt.Errorf("%w: weapon %q: negative shot_cost", ErrInvalidDefinition, w.Name)
	case w.Bullet.Speed <= 0:
		return fmt.Errorf("%w: weapon %q: bullet speed must be positive", ErrInvalidDefinition, w.Name)
	case w.Bullet.Radius < 0 || w.Bullet.ExplosionRadius < 0 || w.Bullet.Damage.Amount < 0:
		return fmt.Errorf("%w: weapon %q: negative bullet stat", ErrInvalidDefinition, w.Name)
	case !w.Bullet.Damage.Kind.valid():
		return fmt.Errorf("%w: weapon %q: unknown damage kind %q", ErrInvalidDefinition, w.Name, w.Bullet.Damage.Kind)
	case !w.Bullet.HitsAir && !w.Bullet.HitsGround:
		return fmt.Errorf("%w: weapon %q: bullet hits nothing", ErrInvalidDefinition, w.Name)
	}
	if s := w.Bullet.Slow; s != nil && (s.Factor < 0 || s.Factor > 1 || s.Duration <= 0) {
		return fmt.Errorf("%w: weapon %q: bad slow effect", ErrInvalidDefinition, w.Name)
	}
	// densest on a non-explosive bullet is reported by targeting, per shot
	switch w.Strategy {
	case TargetClosest, TargetStrongest, TargetDensest:
	default:
		return fmt.Errorf("%w: weapon %q: unknown strategy %q", ErrInvalidDefinition, w.Name, w.Strategy)
	}
	return nil
}

// Arsenal is the validated set of weapon definitions, keyed by name.
type Arsenal struct {
	Weapons map[string]WeaponDefinition
	order   []string
}

// NewArsenal validates weapon definitions.
func NewArsenal(defs []WeaponDefinition) (*Arsenal, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: empty arsenal", ErrInvalidDefinition)
	}
	a := &Arsenal{Weapons: make(map[string]WeaponDefinition, len(defs))}
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := a.Weapons[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate weapon %q", ErrInvalidDefinition, d.Name)
		}
		a.Weapons[d.Name] = d
		a.order = append(a.order, d.Name)
	}
	return a, nil
}

// Get looks up a weapon by name.
func (a *Arsenal) Get(name string) (WeaponDefinition, bool) {
	w, ok := a.Weapons[name]
	return w, ok
}

// Names lists weapons in definition order.
func (a *Arsenal) Names() []string {
	return append([]string(nil), a.order...)
}

// DefaultWeapons is the built-in arsenal.
func DefaultWeapons() []WeaponDefinition {
	return []WeaponDefinition{
		{
			Name: "Canon", FireRate: 0.8, Range: 70, Strategy: TargetClosest, ShotCost: 4,
			Bullet: BulletDefinition{Speed: 60, Radius: 4, HitsGround: true,
				Damage: DamageDef{Amount: 25, Kind: DamagePhysical, Penetration: 2}},
		},
		{
			Name: "Machine gun", FireRate: 6, Range: 55, Strategy: TargetClosest, ShotCost: 0.5, Predict: true,
			Bullet: BulletDefinition{Speed: 90, Radius: 2, HitsAir: true, HitsGround: true,
				Damage: DamageDef{Amount: 6, Kind: DamagePhysical}},
		},
		{
			Name: "Sniper", FireRate: 0.5, Range: 95, Strategy: TargetStrongest, ShotCost: 6, Predict: true,
			Bullet: BulletDefinition{Speed: 120, Radius: 2, HitsAir: true, HitsGround: true,
				Damage: DamageDef{Amount: 80, Kind: DamagePiercing}},
		},
		{
			Name: "Mortar", FireRate: 0.4, Range: 85, Strategy: TargetDensest, ShotCost: 10, Predict: true,
			Bullet: BulletDefinition{Speed: 40, Radius: 5, ExplosionRadius: 40, HitsGround: true,
				Damage: DamageDef{Amount: 40, Kind: DamageExplosive}},
		},
		{
			Name: "Flamethrower", FireRate: 3, Range: 25, Strategy: TargetClosest, ShotCost: 1,
			Bullet: BulletDefinition{Speed: 50, Radius: 6, HitsAir: true, HitsGround: true,
				Damage: DamageDef{Amount: 8, Kind: DamageFire}},
		},
		{
			Name: "Frost canon", FireRate: 1, Range: 50, Strategy: TargetClosest, ShotCost: 2, Predict: true,
			Bullet: BulletDefinition{Speed: 70, Radius: 3, HitsGround: true, HitsAir: true,
				Damage: DamageDef{Amount: 4, Kind: DamagePhysical},
				Slow:   &SlowDef{Factor: 0.5, Duration: 2}},
		},
	}
}
