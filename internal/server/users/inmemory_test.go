package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userdesk/internal/common"
)

func TestInMemoryRepository_CreateAssignsIDAndPreservesOrder(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	ctx := context.Background()

	a, err := repo.Create(ctx, User{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)

	b, err := repo.Create(ctx, User{Name: "Bo", Email: "bo@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, "Bo", list[1].Name)
}

func TestInMemoryRepository_Update(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, User{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, User{ID: created.ID, Name: "Anna", Email: "anna@example.com", Phone: "555"})
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.Name)

	list, _ := repo.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "Anna", list[0].Name)
	assert.Equal(t, "555", list[0].Phone)
}

func TestInMemoryRepository_UpdateUnknownID(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	_, err := repo.Update(context.Background(), User{ID: "nope", Name: "X", Email: "x@example.com"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemoryRepository_Delete(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	ctx := context.Background()

	a, _ := repo.Create(ctx, User{Name: "Ana", Email: "ana@example.com"})
	b, _ := repo.Create(ctx, User{Name: "Bo", Email: "bo@example.com"})

	require.NoError(t, repo.Delete(ctx, a.ID))

	list, _ := repo.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	assert.ErrorIs(t, repo.Delete(ctx, a.ID), common.ErrorNotFound)
}

func TestInMemoryRepository_ListReturnsCopy(t *testing.T) {
	repo := NewInMemoryRepository([]User{{ID: "1", Name: "Ana", Email: "ana@example.com"}})
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Name = "mutated"

	again, _ := repo.List(ctx)
	assert.Equal(t, "Ana", again[0].Name)
}
