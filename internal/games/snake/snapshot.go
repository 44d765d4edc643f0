package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ItemView is an item as seen by a renderer.
type ItemView struct {
	Type      ItemType
	Position  core.Point
	Remaining time.Duration // 0 for items that never expire
}

// EffectView is an active effect as seen by a renderer.
type EffectView struct {
	Kind      EffectKind
	Remaining time.Duration
}

// Snapshot is a deep copy of the observable session state. Holding one never
// aliases the live game, so it is safe to keep across ticks or compare in tests.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Cause    DeathCause
	Width    int
	Height   int
	WallMode core.WallMode
	TickRate int
	Seed     int64

	Alive   bool
	Score   int
	Length  int
	Head    core.Point
	Heading core.Direction
	Body    []core.Point

	Items     []ItemView
	Obstacles []core.Point
	Effects   []EffectView

	ApplesEaten     int
	ItemsCollected  int
	CollectedByType map[ItemType]int
	Elapsed         time.Duration
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	items := make([]ItemView, len(g.items))
	for i, it := range g.items {
		items[i] = ItemView{
			Type:      it.Type,
			Position:  it.Position,
			Remaining: it.Remaining(g.now),
		}
	}

	effects := make([]EffectView, 0, len(g.effects))
	for _, e := range g.effects {
		if !e.Active(g.now) {
			continue
		}
		effects = append(effects, EffectView{Kind: e.Kind, Remaining: e.Remaining(g.now)})
	}

	byType := make(map[ItemType]int, len(ItemTypes))
	for _, t := range ItemTypes {
		if n := g.collected[t]; n > 0 {
			byType[t] = n
		}
	}

	obstacles := make([]core.Point, len(g.obstacles))
	copy(obstacles, g.obstacles)

	return Snapshot{
		Tick:     g.ticks,
		Phase:    g.Phase(),
		Cause:    g.cause,
		Width:    g.cfg.Width,
		Height:   g.cfg.Height,
		WallMode: g.cfg.WallMode,
		TickRate: g.cfg.TickRate,
		Seed:     g.cfg.Seed,

		Alive:   g.snake.alive,
		Score:   g.snake.score,
		Length:  g.snake.Len(),
		Head:    g.snake.Head(),
		Heading: g.snake.heading,
		Body:    g.snake.Body(),

		Items:     items,
		Obstacles: obstacles,
		Effects:   effects,

		ApplesEaten:     g.applesEaten,
		ItemsCollected:  g.itemsCollected,
		CollectedByType: byType,
		Elapsed:         g.now,
	}
}

// HasEffect reports whether an effect of kind k is listed in the snapshot.
func (s Snapshot) HasEffect(k EffectKind) bool {
	for _, e := range s.Effects {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Summary is the session hand-off handed to persistence and bookkeeping once
// a game ends.
type Summary struct {
	Score          int
	Length         int
	WallMode       core.WallMode
	ApplesEaten    int
	ItemsCollected int
	Collected      map[ItemType]int
	Duration       time.Duration
	Cause          DeathCause
}

// Summary returns the hand-off record for the session as it stands.
func (s Snapshot) Summary() Summary {
	collected := make(map[ItemType]int, len(s.CollectedByType))
	for t, n := range s.CollectedByType {
		collected[t] = n
	}
	return Summary{
		Score:          s.Score,
		Length:         s.Length,
		WallMode:       s.WallMode,
		ApplesEaten:    s.ApplesEaten,
		ItemsCollected: s.ItemsCollected,
		Collected:      collected,
		Duration:       s.Elapsed,
		Cause:          s.Cause,
	}
}
