package history

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timeLayout sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Run is one finished solve.
type Run struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"` // "session", "simulate" or "cli"
	Answer    string    `json:"answer,omitempty"`
	Guesses   []string  `json:"guesses"`
	Outcome   string    `json:"outcome"`
	Rounds    int       `json:"rounds"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats aggregates every recorded run.
type Stats struct {
	Played         int     `json:"played"`
	Solved         int     `json:"solved"`
	Exhausted      int     `json:"exhausted"`
	Contradictions int     `json:"contradictions"`
	MeanRounds     float64 `json:"meanRounds"` // over solved runs
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Insert records a run, assigning an ID when empty.
func (s *Store) Insert(ctx context.Context, r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs(id, source, answer, guesses, outcome, rounds, created_at)
		VALUES(?,?,?,?,?,?,?)`,
		r.ID, r.Source, r.Answer, strings.Join(r.Guesses, ","), r.Outcome, r.Rounds,
		r.CreatedAt.UTC().Format(timeLayout),
	)
	return r.ID, err
}

// Recent returns up to limit runs, newest first. Default limit is 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, answer, guesses, outcome, rounds, created_at
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		var r Run
		var guesses, created string
		if err := rows.Scan(&r.ID, &r.Source, &r.Answer, &guesses, &r.Outcome, &r.Rounds, &created); err != nil {
			return nil, err
		}
		if guesses != "" {
			r.Guesses = strings.Split(guesses, ",")
		}
		r.CreatedAt, _ = time.Parse(timeLayout, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats aggregates outcomes across all runs.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	var mean sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(1),
		       COALESCE(SUM(outcome = 'solved'), 0),
		       COALESCE(SUM(outcome = 'exhausted'), 0),
		       COALESCE(SUM(outcome = 'contradiction'), 0),
		       AVG(CASE WHEN outcome = 'solved' THEN rounds END)
		FROM runs`,
	).Scan(&st.Played, &st.Solved, &st.Exhausted, &st.Contradictions, &mean)
	if err != nil {
		return Stats{}, err
	}
	st.MeanRounds = mean.Float64
	return st, nil
}
