package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/rng"
)

// ItemType enumerates the spawnable items. The set is closed: every value
// has an entry in the item table.
type ItemType int

const (
	ItemApple ItemType = iota
	ItemBonus
	ItemBomb
	ItemSlow
	ItemInvincible

	itemTypeCount
)

// ItemTypes lists every item type in table order.
var ItemTypes = []ItemType{ItemApple, ItemBonus, ItemBomb, ItemSlow, ItemInvincible}

func (t ItemType) String() string {
	switch t {
	case ItemApple:
		return "apple"
	case ItemBonus:
		return "bonus"
	case ItemBomb:
		return "bomb"
	case ItemSlow:
		return "slow"
	case ItemInvincible:
		return "invincible"
	default:
		return fmt.Sprintf("item(%d)", int(t))
	}
}

// EffectKind is a timed status effect attached to the session.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectSlow
	EffectInvincible
)

func (k EffectKind) String() string {
	switch k {
	case EffectSlow:
		return "slow"
	case EffectInvincible:
		return "invincible"
	default:
		return "none"
	}
}

// ItemSpec is the static configuration of one item type.
type ItemSpec struct {
	Weight   float64       // Relative spawn probability, > 0
	TTL      time.Duration // 0 means the item never expires
	Score    int
	Growth   int
	Effect   EffectKind
	Duration time.Duration // Effect duration when Effect != EffectNone
	Lethal   bool          // Kills on pickup unless invincible
}

// itemTable is indexed by ItemType.
var itemTable = [itemTypeCount]ItemSpec{
	ItemApple: {
		Weight: 60,
		Score:  10,
		Growth: 1,
	},
	ItemBonus: {
		Weight: 20,
		TTL:    5 * time.Second,
		Score:  50,
		Growth: 2,
	},
	ItemBomb: {
		Weight: 8,
		TTL:    6 * time.Second,
		Lethal: true,
	},
	ItemSlow: {
		Weight:   7,
		TTL:      5 * time.Second,
		Score:    20,
		Effect:   EffectSlow,
		Duration: 5 * time.Second,
	},
	ItemInvincible: {
		Weight:   5,
		TTL:      7 * time.Second,
		Score:    30,
		Growth:   1,
		Effect:   EffectInvincible,
		Duration: 5 * time.Second,
	},
}

// itemWeights mirrors ItemTypes for weighted selection.
var itemWeights = func() []float64 {
	w := make([]float64, len(ItemTypes))
	for i, t := range ItemTypes {
		w[i] = itemTable[t].Weight
	}
	return w
}()

// Spec returns the static configuration of t.
func (t ItemType) Spec() ItemSpec {
	return itemTable[t]
}

// Item is a spawned entity on the grid.
type Item struct {
	Type      ItemType
	Position  core.Point
	SpawnedAt time.Duration // Simulation time of the spawn
	TTL       time.Duration
}

// Expired reports whether the item's lifetime is over at now.
// Items with a zero TTL never expire.
func (it Item) Expired(now time.Duration) bool {
	if it.TTL == 0 {
		return false
	}
	return now-it.SpawnedAt >= it.TTL
}

// Remaining returns the lifetime left at now, or 0 for items that never expire.
func (it Item) Remaining(now time.Duration) time.Duration {
	if it.TTL == 0 {
		return 0
	}
	return max(it.TTL-(now-it.SpawnedAt), 0)
}

// SpawnItem places a new item on a random free cell, choosing its type by
// weighted rarity. ok is false when the grid has no free cell.
func SpawnItem(r *rng.RNG, occupied core.Occupancy, width, height int, now time.Duration) (it Item, ok bool) {
	pos, ok := core.RandomEmptyCell(r, width, height, occupied)
	if !ok {
		return Item{}, false
	}

	t := rng.WeightedChoice(r, ItemTypes, itemWeights)
	return Item{
		Type:      t,
		Position:  pos,
		SpawnedAt: now,
		TTL:       t.Spec().TTL,
	}, true
}

// Reward is what collecting an item grants. Lethality is not part of the
// reward; the engine checks ItemSpec.Lethal separately.
type Reward struct {
	Growth   int
	Score    int
	Effect   EffectKind
	Duration time.Duration
}

// HasEffect reports whether the reward carries a status effect.
func (r Reward) HasEffect() bool {
	return r.Effect != EffectNone
}

// ResolveReward returns the reward for collecting an item of type t.
func ResolveReward(t ItemType) Reward {
	spec := t.Spec()
	return Reward{
		Growth:   spec.Growth,
		Score:    spec.Score,
		Effect:   spec.Effect,
		Duration: spec.Duration,
	}
}
