package system

import "go-wall-defense/pkg/geom"

// AimInput is everything the predictor needs for one shot. Speeds share one
// unit (percent of map height per second), so game speed and map scale
// cancel out and are never applied here.
type AimInput struct {
	Origin          geom.Vec2
	Target          geom.Vec2
	Heading         geom.Vec2 // unit vector of the enemy's motion
	EnemySpeed      float64
	ProjectileSpeed float64
	Predict         bool

	// HasBlocker marks that the enemy will run into a structure whose top
	// edge is BlockerTop. The prediction never goes past that edge.
	HasBlocker bool
	BlockerTop float64
	Clearance  float64
}

// PredictAim returns the vector from the origin to where the projectile
// should fly. Without prediction it is simply target minus origin.
func PredictAim(in AimInput) geom.Vec2 {
	base := in.Target.Sub(in.Origin)
	if !in.Predict || in.ProjectileSpeed <= 0 || in.EnemySpeed == 0 {
		return base
	}

	// time of flight is distance / projectile speed; the enemy keeps walking for that long
	lead := in.EnemySpeed * base.Len() / in.ProjectileSpeed
	predicted := in.Target.Add(in.Heading.Scale(lead))

	if in.HasBlocker && predicted.Y > in.BlockerTop {
		predicted.Y = in.BlockerTop - in.Clearance
	}
	return predicted.Sub(in.Origin)
}
