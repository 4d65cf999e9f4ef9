package users

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userdesk/internal/common"
)

// InMemoryRepository keeps users in an ordered slice. The default backend
// for development and tests; nothing survives a restart.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store []User
}

var _ Repository = (*InMemoryRepository)(nil)

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	r := &InMemoryRepository{}
	r.store = append(r.store, seed...)
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]User, len(r.store))
	copy(result, r.store)
	return result, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, u User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = uuid.NewString()
	r.store = append(r.store, u)

	stored := u
	return &stored, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, u User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.store {
		if r.store[i].ID == u.ID {
			r.store[i] = u
			stored := u
			return &stored, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.store {
		if r.store[i].ID == id {
			r.store = append(r.store[:i], r.store[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}
