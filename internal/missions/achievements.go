package missions

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Achievement IDs.
const (
	FirstGame      = "first_game"
	Score500       = "score_500"
	Score1000      = "score_1000"
	Length50       = "length_50"
	InvincibleUser = "invincible_user"
)

// Achievement is a one-off unlock.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Unlocked    bool
	UnlockedAt  time.Time
}

// DefaultAchievements returns a fresh copy of the built-in achievements, all locked.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: FirstGame, Title: "First Steps", Description: "Play your first game"},
		{ID: Score500, Title: "High Scorer", Description: "Reach a score of 500"},
		{ID: Score1000, Title: "Master Player", Description: "Reach a score of 1000"},
		{ID: Length50, Title: "Snake Master", Description: "Grow your snake to length 50"},
		{ID: InvincibleUser, Title: "Invincible", Description: "Use the invincible power-up"},
	}
}

// Earned returns the IDs of every achievement a finished session qualifies
// for, in definition order. Already unlocked ones are included; Unlock
// ignores them.
func Earned(sum snake.Summary) []string {
	ids := []string{FirstGame}
	if sum.Score >= 500 {
		ids = append(ids, Score500)
	}
	if sum.Score >= 1000 {
		ids = append(ids, Score1000)
	}
	if sum.Length >= 50 {
		ids = append(ids, Length50)
	}
	if sum.Collected[snake.ItemInvincible] > 0 {
		ids = append(ids, InvincibleUser)
	}
	return ids
}

// Unlock marks the named achievements unlocked at the given time and returns
// the updated list along with the IDs that were newly unlocked.
// The input slice is not modified.
func Unlock(achs []Achievement, at time.Time, ids ...string) (out []Achievement, unlocked []string) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	out = make([]Achievement, len(achs))
	copy(out, achs)
	for i := range out {
		a := &out[i]
		if a.Unlocked || !want[a.ID] {
			continue
		}
		a.Unlocked = true
		a.UnlockedAt = at
		unlocked = append(unlocked, a.ID)
	}
	return out, unlocked
}

// Lookup returns the definition of the achievement with the given ID.
func Lookup(id string) (Achievement, bool) {
	for _, a := range DefaultAchievements() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
