package snake

import "time"

// DeathCause explains why a session ended.
type DeathCause string

const (
	CauseNone              DeathCause = ""
	CauseWallCollision     DeathCause = "wall-collision"
	CauseSelfCollision     DeathCause = "self-collision"
	CauseObstacleCollision DeathCause = "obstacle-collision"
	CauseBomb              DeathCause = "bomb"
)

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventItemSpawned EventKind = iota
	EventItemCollected
	EventItemExpired
	EventEffectApplied
	EventEffectExpired
	EventDied
)

func (k EventKind) String() string {
	switch k {
	case EventItemSpawned:
		return "item-spawned"
	case EventItemCollected:
		return "item-collected"
	case EventItemExpired:
		return "item-expired"
	case EventEffectApplied:
		return "effect-applied"
	case EventEffectExpired:
		return "effect-expired"
	case EventDied:
		return "died"
	default:
		return "unknown"
	}
}

// Event is a notable state change emitted by a tick. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind   EventKind
	At     time.Duration // Simulation time
	Item   Item
	Effect ActiveEffect
	Cause  DeathCause
}

// ActiveEffect is a status effect in force until an absolute simulation time.
type ActiveEffect struct {
	Kind  EffectKind
	Until time.Duration
}

// Active reports whether the effect is still in force at now.
func (e ActiveEffect) Active(now time.Duration) bool {
	return now < e.Until
}

// Remaining returns the time left at now.
func (e ActiveEffect) Remaining(now time.Duration) time.Duration {
	return max(e.Until-now, 0)
}
