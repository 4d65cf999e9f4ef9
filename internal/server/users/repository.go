package users

import "context"

// Repository describes storage for user records. List must return records in
// insertion order: the client treats the remote ordering as authoritative.
type Repository interface {
	// List returns all users, oldest first.
	List(ctx context.Context) ([]User, error)

	// Create stores u under a freshly assigned id and returns the stored record.
	Create(ctx context.Context, u User) (*User, error)

	// Update replaces the record with id u.ID. Returns common.ErrorNotFound
	// when no such record exists.
	Update(ctx context.Context, u User) (*User, error)

	// Delete removes the record by id. Returns common.ErrorNotFound when no
	// such record exists.
	Delete(ctx context.Context, id string) error
}
