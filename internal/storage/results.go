package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome values stored in the results table.
const (
	OutcomeWin  = "win"
	OutcomeDraw = "draw"
)

// Result is one finished Tic-Tac-Toe match.
type Result struct {
	ID        int64
	MatchID   string
	GameID    string
	Outcome   string // OutcomeWin or OutcomeDraw
	Winner    string // Winning mark; empty on a draw
	Moves     int
	CreatedAt time.Time
}

// Tally aggregates results for one game.
type Tally struct {
	GameID string
	Wins   map[string]int // Keyed by mark
	Draws  int
}

// Total returns the number of matches counted.
func (t Tally) Total() int {
	n := t.Draws
	for _, w := range t.Wins {
		n += w
	}
	return n
}

// SaveResult records a match result. A missing MatchID is filled with a
// fresh UUID. Returns the row ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.MatchID == "" {
		r.MatchID = uuid.NewString()
	}
	if r.Outcome != OutcomeWin && r.Outcome != OutcomeDraw {
		return 0, fmt.Errorf("storage: invalid outcome %q", r.Outcome)
	}

	var winner sql.NullString
	if r.Outcome == OutcomeWin {
		winner = sql.NullString{String: r.Winner, Valid: true}
	}

	res, err := s.db.Exec(
		`INSERT INTO results (match_id, game_id, outcome, winner, moves)
		 VALUES (?, ?, ?, ?, ?)`,
		r.MatchID, r.GameID, r.Outcome, winner, r.Moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentResults returns up to limit results for gameID, newest first.
// A non-positive limit means 20.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, game_id, outcome, winner, moves, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var winner sql.NullString
		var createdAt any
		if err := rows.Scan(&r.ID, &r.MatchID, &r.GameID, &r.Outcome, &winner, &r.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Winner = winner.String
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// Tally counts wins per mark and draws for gameID.
func (s *Store) Tally(gameID string) (Tally, error) {
	t := Tally{GameID: gameID, Wins: make(map[string]int)}

	rows, err := s.db.Query(
		`SELECT outcome, COALESCE(winner, ''), COUNT(*)
		 FROM results
		 WHERE game_id = ?
		 GROUP BY outcome, winner`,
		gameID,
	)
	if err != nil {
		return t, fmt.Errorf("storage: cannot tally results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var outcome, winner string
		var n int
		if err := rows.Scan(&outcome, &winner, &n); err != nil {
			return t, fmt.Errorf("storage: cannot scan tally row: %w", err)
		}
		if outcome == OutcomeDraw {
			t.Draws += n
		} else {
			t.Wins[winner] += n
		}
	}
	if err := rows.Err(); err != nil {
		return t, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return t, nil
}
