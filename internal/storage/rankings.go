package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// RankingLimit is the leaderboard size shown to players.
const RankingLimit = 10

// Ranking represents a single finished game on the leaderboard.
type Ranking struct {
	ID        int64
	Player    string
	Score     int
	Length    int
	WallMode  string
	Apples    int
	Duration  time.Duration
	Cause     string
	CreatedAt time.Time
}

// SaveRanking records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveRanking(r Ranking) (int64, error) {
	return saveRanking(s.db, r)
}

func saveRanking(q querier, r Ranking) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	result, err := q.Exec(
		`INSERT INTO rankings (player, score, length, wall_mode, apples, duration_ms, cause, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Score, r.Length, r.WallMode, r.Apples, r.Duration.Milliseconds(), r.Cause,
		formatTime(r.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save ranking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRankings retrieves the best games, optionally restricted to one wall
// mode (empty means all modes). Ties keep the earlier game first.
func (s *Store) TopRankings(wallMode string, limit int) ([]Ranking, error) {
	if limit <= 0 {
		limit = RankingLimit
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, length, wall_mode, apples, duration_ms, cause, created_at
		 FROM rankings
		 WHERE ? = '' OR wall_mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		wallMode, wallMode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rankings: %w", err)
	}
	defer rows.Close()

	var entries []Ranking
	for rows.Next() {
		var r Ranking
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Length, &r.WallMode,
			&r.Apples, &durationMs, &r.Cause, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		entries = append(entries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM rankings").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// rankOf returns the 1-based leaderboard position of the ranking with id.
func rankOf(q querier, id int64) (int, error) {
	var rank int
	err := q.QueryRow(
		`SELECT COUNT(*) + 1 FROM rankings r, rankings me
		 WHERE me.id = ? AND (r.score > me.score OR (r.score = me.score AND r.id < me.id))`,
		id,
	).Scan(&rank)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot compute rank: %w", err)
	}
	return rank, nil
}

// ClearRankings deletes every ranking.
func (s *Store) ClearRankings() error {
	if _, err := s.db.Exec("DELETE FROM rankings"); err != nil {
		return fmt.Errorf("storage: cannot clear rankings: %w", err)
	}
	return nil
}
