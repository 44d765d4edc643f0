package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/missions"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRanking(Ranking{Player: "ann", Score: 70, Length: 6, WallMode: "normal"}); err != nil {
		t.Fatalf("SaveRanking() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("re-Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil || high != 70 {
		t.Errorf("HighScore() = %d, %v; want 70", high, err)
	}
}

func TestTopRankings(t *testing.T) {
	store := openTestStore(t)

	games := []Ranking{
		{Player: "ann", Score: 100, Length: 8, WallMode: "normal"},
		{Player: "bob", Score: 50, Length: 5, WallMode: "wrap"},
		{Player: "ann", Score: 200, Length: 14, WallMode: "wrap"},
		{Player: "cid", Score: 100, Length: 9, WallMode: "obstacles"},
	}
	for _, g := range games {
		if _, err := store.SaveRanking(g); err != nil {
			t.Fatalf("SaveRanking() failed: %v", err)
		}
	}

	all, err := store.TopRankings("", 10)
	if err != nil {
		t.Fatalf("TopRankings() failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("Expected 4 rankings, got %d", len(all))
	}
	wantOrder := []struct {
		player string
		score  int
	}{{"ann", 200}, {"ann", 100}, {"cid", 100}, {"bob", 50}}
	for i, w := range wantOrder {
		if all[i].Player != w.player || all[i].Score != w.score {
			t.Errorf("rank %d = %s/%d, want %s/%d", i+1, all[i].Player, all[i].Score, w.player, w.score)
		}
	}

	wrap, err := store.TopRankings("wrap", 10)
	if err != nil {
		t.Fatalf("TopRankings(wrap) failed: %v", err)
	}
	if len(wrap) != 2 || wrap[0].Score != 200 {
		t.Errorf("wrap rankings = %+v", wrap)
	}
}

func TestTopRankingsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		store.SaveRanking(Ranking{Player: "p", Score: (i + 1) * 10, WallMode: "normal"})
	}

	top, err := store.TopRankings("", 0)
	if err != nil {
		t.Fatalf("TopRankings() failed: %v", err)
	}
	if len(top) != RankingLimit {
		t.Fatalf("Expected %d rankings by default, got %d", RankingLimit, len(top))
	}
	if top[0].Score != 150 || top[RankingLimit-1].Score != 60 {
		t.Errorf("unexpected window: first %d, last %d", top[0].Score, top[RankingLimit-1].Score)
	}

	three, _ := store.TopRankings("", 3)
	if len(three) != 3 {
		t.Errorf("Expected 3 rankings with limit, got %d", len(three))
	}
}

func TestRankingFieldsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC)

	want := Ranking{
		Player: "ann", Score: 120, Length: 11, WallMode: "obstacles",
		Apples: 9, Duration: 42500 * time.Millisecond, Cause: "bomb", CreatedAt: at,
	}
	id, err := store.SaveRanking(want)
	if err != nil {
		t.Fatalf("SaveRanking() failed: %v", err)
	}

	got, _ := store.TopRankings("", 1)
	if len(got) != 1 {
		t.Fatal("ranking not found")
	}
	r := got[0]
	if r.ID != id || r.Apples != 9 || r.Duration != want.Duration || r.Cause != "bomb" {
		t.Errorf("ranking = %+v", r)
	}
	if !r.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want %v", r.CreatedAt, at)
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveRanking(Ranking{Player: "a", Score: 100, WallMode: "normal"})
	store.SaveRanking(Ranking{Player: "a", Score: 300, WallMode: "normal"})

	if high, _ = store.HighScore(); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if err := store.ClearRankings(); err != nil {
		t.Fatalf("ClearRankings() failed: %v", err)
	}
	if top, _ := store.TopRankings("", 10); len(top) != 0 {
		t.Errorf("Expected 0 rankings after clear, got %d", len(top))
	}
}

func TestProfileUnknownPlayer(t *testing.T) {
	store := openTestStore(t)

	p, err := store.Profile("nobody")
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if p.Player != "nobody" || p.GamesPlayed != 0 || !p.LastPlayed.IsZero() {
		t.Errorf("Profile = %+v, want empty", p)
	}

	ms, err := store.Missions("nobody")
	if err != nil {
		t.Fatalf("Missions() failed: %v", err)
	}
	if len(ms) != len(missions.DefaultMissions()) {
		t.Errorf("Missions = %d, want defaults", len(ms))
	}
}

func TestRecordSession(t *testing.T) {
	store := openTestStore(t)
	day := time.Date(2026, 7, 4, 10, 0, 0, 0, time.UTC)

	first := snake.Summary{
		Score: 120, Length: 9, WallMode: core.WallWrap, ApplesEaten: 11,
		Collected: map[snake.ItemType]int{snake.ItemInvincible: 1},
		Duration:  30 * time.Second, Cause: snake.CauseSelfCollision,
	}
	res, err := store.RecordSession("ann", first, day)
	if err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}

	if res.Rank != 1 {
		t.Errorf("Rank = %d, want 1", res.Rank)
	}
	if res.Profile.GamesPlayed != 1 || res.Profile.HighScore != 120 || res.Profile.TotalScore != 120 {
		t.Errorf("Profile = %+v", res.Profile)
	}
	if got := ids(res.NewAchievements); !equalIDs(got, []string{missions.FirstGame, missions.InvincibleUser}) {
		t.Errorf("NewAchievements = %v", got)
	}
	if got := missionIDs(res.CompletedMissions); !equalIDs(got, []string{"score_100", "apples_10", "daily_1"}) {
		t.Errorf("CompletedMissions = %v", got)
	}

	// Same day: daily stays done, first_game is not unlocked twice.
	res, err = store.RecordSession("ann", snake.Summary{Score: 40, Length: 4}, day.Add(time.Hour))
	if err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}
	if res.Rank != 2 {
		t.Errorf("Rank = %d, want 2", res.Rank)
	}
	if len(res.NewAchievements) != 0 || len(res.CompletedMissions) != 0 {
		t.Errorf("unexpected unlocks: %v, %v", ids(res.NewAchievements), missionIDs(res.CompletedMissions))
	}
	if res.Profile.GamesPlayed != 2 || res.Profile.HighScore != 120 || res.Profile.TotalScore != 160 {
		t.Errorf("Profile = %+v", res.Profile)
	}

	// Next day: the daily mission resets and completes again.
	res, err = store.RecordSession("ann", snake.Summary{Score: 10, Length: 3}, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}
	if got := missionIDs(res.CompletedMissions); !equalIDs(got, []string{"daily_1"}) {
		t.Errorf("CompletedMissions next day = %v", got)
	}

	achs, err := store.Achievements("ann")
	if err != nil {
		t.Fatalf("Achievements() failed: %v", err)
	}
	for _, a := range achs {
		if a.ID == missions.FirstGame && (!a.Unlocked || !a.UnlockedAt.Equal(day)) {
			t.Errorf("first_game = %+v, want unlocked at %v", a, day)
		}
		if a.ID == missions.Score500 && a.Unlocked {
			t.Error("score_500 should still be locked")
		}
	}

	ms, _ := store.Missions("ann")
	for _, m := range ms {
		if m.ID == "score_100" && !m.Completed {
			t.Error("score_100 progress was lost")
		}
	}

	top, _ := store.TopRankings("wrap", 10)
	if len(top) != 1 || top[0].Player != "ann" || top[0].Cause != string(snake.CauseSelfCollision) {
		t.Errorf("wrap rankings = %+v", top)
	}

	other, _ := store.Profile("bob")
	if other.GamesPlayed != 0 {
		t.Error("profiles leaked across players")
	}
}

func ids(achs []missions.Achievement) []string {
	out := make([]string, len(achs))
	for i, a := range achs {
		out[i] = a.ID
	}
	return out
}

func missionIDs(ms []missions.Mission) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecordSessionNewBest(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2026, 7, 4, 10, 0, 0, 0, time.UTC)

	games := []struct {
		score int
		want  bool
	}{
		{score: 50, want: false}, // First game has nothing to beat
		{score: 50, want: false}, // A tie is not a new best
		{score: 80, want: true},
		{score: 10, want: false},
	}
	for i, g := range games {
		res, err := store.RecordSession("cy", snake.Summary{Score: g.score, Length: 3}, at.Add(time.Duration(i)*time.Minute))
		if err != nil {
			t.Fatalf("RecordSession() failed: %v", err)
		}
		if res.NewBest != g.want {
			t.Errorf("game %d (score %d): NewBest = %v, want %v", i+1, g.score, res.NewBest, g.want)
		}
	}
}
