// Package storage opens the client's local SQLite database, applies
// migrations, and hands out the repositories backed by it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/userdesk/internal/client/migrations"
	"github.com/dmitrijs2005/userdesk/internal/client/mirror"
	"github.com/dmitrijs2005/userdesk/internal/client/session"
)

type Repositories struct {
	Mirror  mirror.Repository
	Session session.Repository

	db *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	return &Repositories{
		Mirror:  mirror.NewSQLiteRepository(db),
		Session: session.NewSQLiteRepository(db),
		db:      db,
	}, nil
}

func (r *Repositories) Close() error {
	return r.db.Close()
}
