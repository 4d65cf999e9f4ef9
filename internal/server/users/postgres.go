package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userdesk/internal/common"
	"github.com/dmitrijs2005/userdesk/internal/dbx"
)

// PostgresRepository implements Repository over a DBTX (either *sql.DB or
// *sql.Tx). The seq column preserves insertion order across restarts.
type PostgresRepository struct {
	db dbx.DBTX
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]User, error) {
	query := `SELECT id, name, email, phone FROM users ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, u User) (*User, error) {
	u.ID = uuid.NewString()

	query := `INSERT INTO users (id, name, email, phone) VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Email, u.Phone); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &u, nil
}

func (r *PostgresRepository) Update(ctx context.Context, u User) (*User, error) {
	query := `UPDATE users SET name = $2, email = $3, phone = $4 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Email, u.Phone)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if ra == 0 {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}
