package system

import "errors"

var (
	// ErrInvalidDay is a precondition violation: days start at 1.
	ErrInvalidDay = errors.New("day must be >= 1")
	// ErrInvalidNightTime is a precondition violation: time outside [0, night duration].
	ErrInvalidNightTime = errors.New("night time out of range")
	// ErrNotAreaEffect is a configuration error: densest targeting needs an exploding bullet.
	ErrNotAreaEffect = errors.New("densest targeting requires an area-effect bullet")
	// ErrUnknownStrategy is a configuration error.
	ErrUnknownStrategy = errors.New("unknown targeting strategy")
	// ErrEnemyNotFound means an impact referenced an enemy that is gone.
	ErrEnemyNotFound = errors.New("enemy not found")
)
