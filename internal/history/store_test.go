package history

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Ensure single connection to avoid separate in-memory DBs per connection.
	db.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestInsertAndRecent(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	id1, err := s.Insert(ctx, Run{Source: "simulate", Answer: "slate", Guesses: []string{"arise", "slate"}, Outcome: "solved", Rounds: 2, CreatedAt: base})
	require.NoError(t, err)
	assert.NotEmpty(t, id1)
	_, err = s.Insert(ctx, Run{ID: "fixed", Source: "session", Outcome: "contradiction", Rounds: 1, CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)

	runs, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "fixed", runs[0].ID)
	assert.Nil(t, runs[0].Guesses)
	assert.Equal(t, id1, runs[1].ID)
	assert.Equal(t, []string{"arise", "slate"}, runs[1].Guesses)
	assert.True(t, base.Equal(runs[1].CreatedAt))

	runs, err = s.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)

	for _, r := range []Run{
		{Source: "simulate", Outcome: "solved", Rounds: 2},
		{Source: "simulate", Outcome: "solved", Rounds: 4},
		{Source: "simulate", Outcome: "exhausted", Rounds: 6},
		{Source: "session", Outcome: "contradiction", Rounds: 3},
	} {
		_, err := s.Insert(ctx, r)
		require.NoError(t, err)
	}

	st, err = s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Played: 4, Solved: 2, Exhausted: 1, Contradictions: 1, MeanRounds: 3}, st)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Insert(context.Background(), Run{Source: "simulate", Outcome: "solved", Rounds: 3})
	require.NoError(t, err)
	st, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, st.Played)
}
