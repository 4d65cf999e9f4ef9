package session

import "context"

// Repository persists the active-user marker: the name of the most recently
// created user, valid for 24 hours. It is purely informational and is never
// consulted for any access-control decision.
type Repository interface {
	// SetActive stores name with a fresh expiry window.
	SetActive(ctx context.Context, name string) error

	// GetActive returns the stored name, or "" when absent or expired.
	GetActive(ctx context.Context) (string, error)

	// ClearActive removes the marker.
	ClearActive(ctx context.Context) error
}
