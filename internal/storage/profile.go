package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/missions"
)

// Profile contains a player's lifetime totals.
type Profile struct {
	Player      string
	GamesPlayed int
	HighScore   int
	TotalScore  int64
	LastPlayed  time.Time // Zero if the player has never finished a game
}

// SessionResult describes what a finished game changed.
type SessionResult struct {
	RankingID         int64
	Rank              int // 1-based position on the overall leaderboard
	Profile           Profile
	NewBest           bool // Strictly beat the player's earlier high score
	NewAchievements   []missions.Achievement
	CompletedMissions []missions.Mission
}

// Profile returns the totals for player. Unknown players get an empty profile.
func (s *Store) Profile(player string) (Profile, error) {
	return loadProfile(s.db, player)
}

func loadProfile(q querier, player string) (Profile, error) {
	p := Profile{Player: player}
	var lastPlayed any

	err := q.QueryRow(
		`SELECT games_played, high_score, total_score, last_played
		 FROM profiles WHERE player = ?`,
		player,
	).Scan(&p.GamesPlayed, &p.HighScore, &p.TotalScore, &lastPlayed)
	if errors.Is(err, sql.ErrNoRows) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("storage: cannot query profile: %w", err)
	}

	p.LastPlayed = parseTime(lastPlayed)
	return p, nil
}

func saveProfile(q querier, p Profile) error {
	_, err := q.Exec(
		`INSERT INTO profiles (player, games_played, high_score, total_score, last_played)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(player) DO UPDATE SET
		   games_played = excluded.games_played,
		   high_score = excluded.high_score,
		   total_score = excluded.total_score,
		   last_played = excluded.last_played`,
		p.Player, p.GamesPlayed, p.HighScore, p.TotalScore, formatTime(p.LastPlayed),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	return nil
}

// Missions returns the built-in missions with player's saved progress.
func (s *Store) Missions(player string) ([]missions.Mission, error) {
	return loadMissions(s.db, player)
}

func loadMissions(q querier, player string) ([]missions.Mission, error) {
	rows, err := q.Query(
		"SELECT mission_id, current, completed FROM missions WHERE player = ?",
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query missions: %w", err)
	}
	defer rows.Close()

	var saved []missions.Mission
	for rows.Next() {
		var m missions.Mission
		if err := rows.Scan(&m.ID, &m.Current, &m.Completed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		saved = append(saved, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return missions.Merge(missions.DefaultMissions(), saved), nil
}

func saveMissions(q querier, player string, ms []missions.Mission) error {
	for _, m := range ms {
		_, err := q.Exec(
			`INSERT INTO missions (player, mission_id, current, completed)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(player, mission_id) DO UPDATE SET
			   current = excluded.current,
			   completed = excluded.completed`,
			player, m.ID, m.Current, m.Completed,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save mission %s: %w", m.ID, err)
		}
	}
	return nil
}

// Achievements returns the built-in achievements with player's unlocks applied.
func (s *Store) Achievements(player string) ([]missions.Achievement, error) {
	return loadAchievements(s.db, player)
}

func loadAchievements(q querier, player string) ([]missions.Achievement, error) {
	rows, err := q.Query(
		"SELECT achievement_id, unlocked_at FROM achievements WHERE player = ?",
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query achievements: %w", err)
	}
	defer rows.Close()

	unlocked := make(map[string]time.Time)
	for rows.Next() {
		var id string
		var at any
		if err := rows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		unlocked[id] = parseTime(at)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	achs := missions.DefaultAchievements()
	for i := range achs {
		if at, ok := unlocked[achs[i].ID]; ok {
			achs[i].Unlocked = true
			achs[i].UnlockedAt = at
		}
	}
	return achs, nil
}

func saveAchievement(q querier, player string, a missions.Achievement) error {
	_, err := q.Exec(
		`INSERT OR IGNORE INTO achievements (player, achievement_id, unlocked_at)
		 VALUES (?, ?, ?)`,
		player, a.ID, formatTime(a.UnlockedAt),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save achievement %s: %w", a.ID, err)
	}
	return nil
}

// RecordSession hands a finished game over to persistence in one
// transaction: the ranking is saved, profile totals updated, daily missions
// reset when a new day started, mission progress tracked and achievements
// unlocked.
func (s *Store) RecordSession(player string, sum snake.Summary, at time.Time) (*SessionResult, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res := &SessionResult{}

	res.RankingID, err = saveRanking(tx, Ranking{
		Player:    player,
		Score:     sum.Score,
		Length:    sum.Length,
		WallMode:  sum.WallMode.String(),
		Apples:    sum.ApplesEaten,
		Duration:  sum.Duration,
		Cause:     string(sum.Cause),
		CreatedAt: at,
	})
	if err != nil {
		return nil, err
	}
	if res.Rank, err = rankOf(tx, res.RankingID); err != nil {
		return nil, err
	}

	profile, err := loadProfile(tx, player)
	if err != nil {
		return nil, err
	}

	ms, err := loadMissions(tx, player)
	if err != nil {
		return nil, err
	}
	if missions.DailyResetDue(profile.LastPlayed, at) {
		ms = missions.ResetDaily(ms)
	}
	before := make(map[string]bool, len(ms))
	for _, m := range ms {
		before[m.ID] = m.Completed
	}
	ms = missions.Track(ms, sum)
	for _, m := range ms {
		if m.Completed && !before[m.ID] {
			res.CompletedMissions = append(res.CompletedMissions, m)
		}
	}
	if err := saveMissions(tx, player, ms); err != nil {
		return nil, err
	}

	achs, err := loadAchievements(tx, player)
	if err != nil {
		return nil, err
	}
	achs, fresh := missions.Unlock(achs, at, missions.Earned(sum)...)
	isFresh := make(map[string]bool, len(fresh))
	for _, id := range fresh {
		isFresh[id] = true
	}
	for _, a := range achs {
		if !isFresh[a.ID] {
			continue
		}
		if err := saveAchievement(tx, player, a); err != nil {
			return nil, err
		}
		res.NewAchievements = append(res.NewAchievements, a)
	}

	res.NewBest = profile.GamesPlayed > 0 && sum.Score > profile.HighScore
	profile.GamesPlayed++
	profile.HighScore = max(profile.HighScore, sum.Score)
	profile.TotalScore += int64(sum.Score)
	profile.LastPlayed = at
	if err := saveProfile(tx, profile); err != nil {
		return nil, err
	}
	res.Profile = profile

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return res, nil
}
