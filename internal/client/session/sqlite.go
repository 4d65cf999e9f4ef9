// Package session stores the active-user marker in the local SQLite
// database with a fixed time-to-live, enforced by the store itself:
// expired entries read back as absent.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/dbx"
)

const activeUserKey = "session.active_user"

// TTL is the validity window of the marker. Matches the 24-hour max-age the
// browser version of this console gave its session cookie.
const TTL = 24 * time.Hour

type SQLiteRepository struct {
	db dbx.DBTX

	// now is a test seam for expiry checks.
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) SetActive(ctx context.Context, name string) error {
	expiresAt := r.now().Add(TTL).Unix()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
	`, activeUserKey, name, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to set active user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetActive(ctx context.Context) (string, error) {
	var (
		name      string
		expiresAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT value, expires_at FROM session WHERE key = ?`, activeUserKey).Scan(&name, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get active user: %w", err)
	}

	if r.now().Unix() >= expiresAt {
		// lazy cleanup: an expired marker is absent
		_, _ = r.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, activeUserKey)
		return "", nil
	}
	return name, nil
}

func (r *SQLiteRepository) ClearActive(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, activeUserKey)
	if err != nil {
		return fmt.Errorf("failed to clear active user: %w", err)
	}
	return nil
}
