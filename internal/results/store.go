package results

import (
	"context"
	"database/sql"
	"fmt"
)

// Result is one completed ladder.
type Result struct {
	GameID    string `json:"gameId"`
	Start     string `json:"start"`
	Target    string `json:"target"`
	Steps     int    `json:"steps"`
	Tier      int    `json:"tier"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Stats aggregates completed ladders.
type Stats struct {
	Completed int         `json:"completed"`
	BestSteps int         `json:"bestSteps,omitempty"`
	Tiers     map[int]int `json:"tiers"`
}

// Store writes and reads the ladder_results table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert records r. A second insert for the same game is ignored.
func (s *Store) Insert(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO ladder_results(game_id, start_word, target_word, steps, tier, elapsed_ms)
		 VALUES(?,?,?,?,?,?)`,
		r.GameID, r.Start, r.Target, r.Steps, r.Tier, r.ElapsedMs,
	)
	if err != nil {
		return fmt.Errorf("insert result %s: %w", r.GameID, err)
	}
	return nil
}

// Stats returns aggregates for one puzzle.
func (s *Store) Stats(ctx context.Context, start, target string) (Stats, error) {
	out := Stats{Tiers: map[int]int{1: 0, 2: 0, 3: 0, 4: 0}}
	rows, err := s.db.QueryContext(ctx,
		`SELECT tier, COUNT(1), MIN(steps)
		 FROM ladder_results
		 WHERE start_word=? AND target_word=?
		 GROUP BY tier`, start, target,
	)
	if err != nil {
		return out, err
	}
	defer rows.Close()
	for rows.Next() {
		var tier, n, best int
		if err := rows.Scan(&tier, &n, &best); err != nil {
			return out, err
		}
		out.Tiers[tier] = n
		out.Completed += n
		if out.BestSteps == 0 || best < out.BestSteps {
			out.BestSteps = best
		}
	}
	return out, rows.Err()
}
