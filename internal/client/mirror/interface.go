package mirror

import (
	"context"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// Repository persists the most recently accepted collection snapshot under a
// single fixed key. The whole collection is serialized and overwritten on
// every Save; there are no partial-record updates.
type Repository interface {
	// Save overwrites the stored snapshot with the given collection.
	Save(ctx context.Context, users []models.User) error

	// Load returns the stored snapshot. An absent or corrupt payload reads
	// back as an empty collection, never as an error.
	Load(ctx context.Context) ([]models.User, error)

	// Clear removes the stored snapshot.
	Clear(ctx context.Context) error
}
