package system

import (
	"fmt"
	"math"

	"go-wall-defense/internal/component"
	"go-wall-defense/internal/config"
	"go-wall-defense/internal/defs"
	"go-wall-defense/internal/entity"
	"go-wall-defense/internal/event"
	"go-wall-defense/internal/types"
)

// DamageSpec is an incoming hit before armor.
type DamageSpec struct {
	Amount      float64
	Kind        defs.DamageKind
	Penetration float64
}

// DamageFromDef builds a DamageSpec out of a bullet's damage definition.
func DamageFromDef(d defs.DamageDef) DamageSpec {
	return DamageSpec{Amount: d.Amount, Kind: d.Kind, Penetration: d.Penetration}
}

// ArmorPolicy turns incoming damage into effective damage. Implementations
// must never increase damage as armor grows.
type ArmorPolicy interface {
	EffectiveDamage(spec DamageSpec, armor float64) float64
}

func effectiveArmor(armor, penetration float64) float64 {
	return math.Max(0, armor-penetration)
}

// FlatArmor subtracts armor from every hit. A hit that had any damage still
// deals at least MinDamage.
type FlatArmor struct {
	MinDamage float64
}

func (p FlatArmor) EffectiveDamage(spec DamageSpec, armor float64) float64 {
	dmg := spec.Amount - effectiveArmor(armor, spec.Penetration)
	if spec.Amount > 0 && dmg < p.MinDamage {
		dmg = math.Min(p.MinDamage, spec.Amount)
	}
	return dmg
}

// PercentArmor scales damage by K/(K+armor).
type PercentArmor struct {
	K float64
}

func (p PercentArmor) EffectiveDamage(spec DamageSpec, armor float64) float64 {
	a := effectiveArmor(armor, spec.Penetration)
	if p.K+a <= 0 {
		return spec.Amount
	}
	return spec.Amount * p.K / (p.K + a)
}

// IgnoreArmor lets the full hit through.
type IgnoreArmor struct{}

func (IgnoreArmor) EffectiveDamage(spec DamageSpec, _ float64) float64 { return spec.Amount }

// PolicySet chooses an armor policy per damage kind. Kinds without an entry
// fall back to Fallback.
type PolicySet struct {
	ByKind   map[defs.DamageKind]ArmorPolicy
	Fallback ArmorPolicy
}

// DefaultPolicies is the built-in damage model.
func DefaultPolicies() PolicySet {
	return PolicySet{
		ByKind: map[defs.DamageKind]ArmorPolicy{
			defs.DamagePhysical:  FlatArmor{MinDamage: 1},
			defs.DamagePiercing:  IgnoreArmor{},
			defs.DamageExplosive: PercentArmor{K: 10},
			defs.DamageFire:      PercentArmor{K: 4},
		},
		Fallback: FlatArmor{MinDamage: 1},
	}
}

func (ps PolicySet) policy(kind defs.DamageKind) ArmorPolicy {
	if p, ok := ps.ByKind[kind]; ok && p != nil {
		return p
	}
	if ps.Fallback != nil {
		return ps.Fallback
	}
	return FlatArmor{}
}

// Impact is the result of one resolved hit.
type Impact struct {
	Survived bool
	Applied  float64
}

// ImpactResolver is the only place enemy health goes down and kills are counted.
type ImpactResolver struct {
	world           *entity.World
	policies        PolicySet
	eventDispatcher *event.Dispatcher
}

func NewImpactResolver(world *entity.World, policies PolicySet, eventDispatcher *event.Dispatcher) *ImpactResolver {
	return &ImpactResolver{world: world, policies: policies, eventDispatcher: eventDispatcher}
}

// EffectiveDamage applies the armor policy for spec.Kind. The result is never negative.
func (r *ImpactResolver) EffectiveDamage(spec DamageSpec, armor float64) float64 {
	dmg := r.policies.policy(spec.Kind).EffectiveDamage(spec, armor)
	if math.IsNaN(dmg) || dmg < 0 {
		return 0
	}
	return dmg
}

// Resolve applies one hit to an enemy. A hit that meets or exceeds the
// remaining health removes the enemy, counts the kill and pays its bounty.
func (r *ImpactResolver) Resolve(id types.EntityID, spec DamageSpec) (Impact, error) {
	enemy, ok := r.world.Enemies[id]
	if !ok {
		return Impact{}, fmt.Errorf("%w: %d", ErrEnemyNotFound, id)
	}
	dmg := r.EffectiveDamage(spec, enemy.Armor)

	if enemy.Health <= dmg {
		r.world.RemoveEnemy(id)
		r.world.Stats.RecordKill(enemy.Name)
		r.world.Stats.RecordProduced(enemy.Bounty)
		r.world.Resources += enemy.Bounty
		r.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{ID: id, Name: enemy.Name}})
		return Impact{Survived: false, Applied: dmg}, nil
	}

	enemy.Health -= dmg
	if dmg > 0 {
		r.world.DamageFlashes[id] = &component.DamageFlash{Timer: config.FlashDuration, Duration: config.FlashDuration}
	}
	return Impact{Survived: true, Applied: dmg}, nil
}
