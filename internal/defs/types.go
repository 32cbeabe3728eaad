// internal/defs/types.go
package defs

import (
	"fmt"
	"strings"
)

// DamageKind selects which armor policy reduces a hit.
type DamageKind string

const (
	DamagePhysical  DamageKind = "physical"
	DamagePiercing  DamageKind = "piercing"
	DamageExplosive DamageKind = "explosive"
	DamageFire      DamageKind = "fire"
)

func (k DamageKind) valid() bool {
	switch k {
	case DamagePhysical, DamagePiercing, DamageExplosive, DamageFire:
		return true
	}
	return false
}

// Size is the body class of an enemy. Classes are ordered from Small to Huge.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
	SizeHuge
)

var sizeNames = []string{"small", "medium", "large", "huge"}

func (s Size) String() string {
	if s < SizeSmall || s > SizeHuge {
		return fmt.Sprintf("Size(%d)", int(s))
	}
	return sizeNames[s]
}

// ParseSize turns "small".."huge" into a Size.
func ParseSize(name string) (Size, error) {
	for i, n := range sizeNames {
		if strings.EqualFold(n, name) {
			return Size(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown size %q", ErrInvalidDefinition, name)
}

func (s Size) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Size) UnmarshalText(b []byte) error {
	v, err := ParseSize(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// TargetStrategy picks how a weapon chooses among enemies in range.
type TargetStrategy string

const (
	TargetClosest   TargetStrategy = "closest"
	TargetStrongest TargetStrategy = "strongest"
	// TargetDensest aims at the enemy with the most neighbours inside the
	// bullet's explosion radius. Only valid for area-effect bullets.
	TargetDensest TargetStrategy = "densest"
)
