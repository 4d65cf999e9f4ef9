package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessiontest?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS session (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  expires_at INTEGER NOT NULL
);
DELETE FROM session;
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_SetGetClear(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	got, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	require.NoError(t, repo.SetActive(ctx, "Ana"))

	got, err = repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got)

	require.NoError(t, repo.ClearActive(ctx))

	got, err = repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SetActive(ctx, "Ana"))
	require.NoError(t, repo.SetActive(ctx, "Bo"))

	got, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bo", got)
}

func TestSQLiteRepository_ExpiredReadsBackAbsent(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	start := time.Now()
	repo.now = func() time.Time { return start }
	require.NoError(t, repo.SetActive(ctx, "Ana"))

	// just before expiry the marker is still there
	repo.now = func() time.Time { return start.Add(TTL - time.Second) }
	got, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got)

	// past expiry it reads back as absent and the row is gone
	repo.now = func() time.Time { return start.Add(TTL + time.Second) }
	got, err = repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	repo.now = func() time.Time { return start }
	got, err = repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", got, "expired row should have been deleted")
}
