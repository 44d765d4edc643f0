// Package missions tracks player goals across sessions. Missions measure
// progress toward a numeric target; achievements are one-off unlocks. Both
// are evaluated purely from the counters a finished session reports.
package missions

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Kind is the counter a mission measures.
type Kind string

const (
	KindScore  Kind = "score"
	KindLength Kind = "length"
	KindApples Kind = "apples"
	KindItems  Kind = "items"
	KindDaily  Kind = "daily"
)

// Mission is a goal with a numeric target.
type Mission struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	Target      int
	Current     int
	Completed   bool
	Reward      int // Bonus score granted once completed
	Daily       bool
}

// DefaultMissions returns a fresh copy of the built-in missions.
func DefaultMissions() []Mission {
	return []Mission{
		{
			ID:          "score_100",
			Kind:        KindScore,
			Title:       "Score 100",
			Description: "Reach a score of 100 in a single game",
			Target:      100,
			Reward:      10,
		},
		{
			ID:          "length_20",
			Kind:        KindLength,
			Title:       "Long Snake",
			Description: "Grow your snake to length 20",
			Target:      20,
			Reward:      15,
		},
		{
			ID:          "apples_10",
			Kind:        KindApples,
			Title:       "Apple Eater",
			Description: "Eat 10 apples in one game",
			Target:      10,
			Reward:      10,
		},
		{
			ID:          "daily_1",
			Kind:        KindDaily,
			Title:       "Daily Challenge",
			Description: "Complete a game today",
			Target:      1,
			Reward:      20,
			Daily:       true,
		},
	}
}

// Progress records value for every open mission of the given kind and
// returns the updated list. Completed missions are left untouched, so
// progress never regresses. The input slice is not modified.
func Progress(missions []Mission, kind Kind, value int) []Mission {
	out := make([]Mission, len(missions))
	copy(out, missions)

	for i := range out {
		m := &out[i]
		if m.Kind != kind || m.Completed {
			continue
		}
		m.Current = value
		if m.Current >= m.Target {
			m.Completed = true
		}
	}
	return out
}

// Track applies a finished session to the mission list.
func Track(missions []Mission, sum snake.Summary) []Mission {
	missions = Progress(missions, KindScore, sum.Score)
	missions = Progress(missions, KindLength, sum.Length)
	missions = Progress(missions, KindApples, sum.ApplesEaten)
	missions = Progress(missions, KindItems, sum.ItemsCollected)
	return Progress(missions, KindDaily, 1)
}

// ResetDaily clears progress on daily missions.
func ResetDaily(missions []Mission) []Mission {
	out := make([]Mission, len(missions))
	copy(out, missions)

	for i := range out {
		if out[i].Daily {
			out[i].Current = 0
			out[i].Completed = false
		}
	}
	return out
}

// DailyResetDue reports whether now falls on a later calendar day than last.
// A zero last time means the player has never played.
func DailyResetDue(last, now time.Time) bool {
	if last.IsZero() {
		return false
	}
	ly, lm, ld := last.Date()
	ny, nm, nd := now.In(last.Location()).Date()
	return ly != ny || lm != nm || ld != nd
}

// CompletedReward sums the rewards of every completed mission.
func CompletedReward(missions []Mission) int {
	var total int
	for _, m := range missions {
		if m.Completed {
			total += m.Reward
		}
	}
	return total
}

// Merge overlays saved progress onto the built-in definitions so that
// missions added in later versions appear and removed ones drop out.
func Merge(defs, saved []Mission) []Mission {
	byID := make(map[string]Mission, len(saved))
	for _, m := range saved {
		byID[m.ID] = m
	}

	out := make([]Mission, len(defs))
	for i, d := range defs {
		if s, ok := byID[d.ID]; ok {
			d.Current = s.Current
			d.Completed = s.Completed
		}
		out[i] = d
	}
	return out
}
