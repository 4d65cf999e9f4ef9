// Package mirror is the on-device cache of the user collection: the last
// snapshot accepted from either source, serialized as JSON into a key-value
// table in the local SQLite database.
package mirror

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/dbx"
)

// snapshotKey is the single fixed key the collection lives under.
const snapshotKey = "users.snapshot"

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, users []models.User) error {
	payload, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cache (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, snapshotKey, payload)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]models.User, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM cache WHERE key = ?`, snapshotKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(payload, &users); err != nil {
		// corrupt payload reads back as no data
		return nil, nil
	}
	return users, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cache WHERE key = ?`, snapshotKey)
	if err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
