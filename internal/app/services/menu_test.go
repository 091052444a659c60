package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-up/internal/app/core"
	"order-up/internal/domain/dto"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestMenuListEmptyCollection(t *testing.T) {
	svc := NewMenuService(newMemStore(), testLogger())

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items, "an uncreated collection lists as [], not null")
	assert.Empty(t, items)
}

func TestMenuAddAssignsID(t *testing.T) {
	svc := NewMenuService(newMemStore(), testLogger())

	first, err := svc.Add(context.Background(), dto.MenuItemRequest{
		Name:     strPtr("Steak"),
		Price:    floatPtr(25),
		Category: strPtr("Steaks"),
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, "Steak", first.Name)
	assert.Equal(t, 25.0, first.Price)

	second, err := svc.Add(context.Background(), dto.MenuItemRequest{Name: strPtr("Cola")})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0], "insertion order is preserved")
	assert.Equal(t, second, items[1])
}

func TestMenuUpdateMergesAndPreservesID(t *testing.T) {
	svc := NewMenuService(newMemStore(), testLogger())

	item, err := svc.Add(context.Background(), dto.MenuItemRequest{
		Name:        strPtr("Steak"),
		Description: strPtr("ribeye"),
		Price:       floatPtr(25),
		Category:    strPtr("Steaks"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), item.ID, dto.MenuItemRequest{Price: floatPtr(30)})
	require.NoError(t, err)
	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, 30.0, updated.Price)
	assert.Equal(t, "Steak", updated.Name, "absent fields are untouched")
	assert.Equal(t, "ribeye", updated.Description)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, updated, items[0])
}

func TestMenuUpdateNotFound(t *testing.T) {
	svc := NewMenuService(newMemStore(), testLogger())

	_, err := svc.Update(context.Background(), 12345, dto.MenuItemRequest{Price: floatPtr(30)})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestMenuRemove(t *testing.T) {
	st := newMemStore()
	svc := NewMenuService(st, testLogger())

	item, err := svc.Add(context.Background(), dto.MenuItemRequest{Name: strPtr("Soup")})
	require.NoError(t, err)
	keep, err := svc.Add(context.Background(), dto.MenuItemRequest{Name: strPtr("Salad")})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), item.ID))
	assert.Equal(t, 1, st.count(core.CollectionMenu))

	// Removing an id that no longer exists reports not-found and leaves the
	// collection unchanged.
	err = svc.Remove(context.Background(), item.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, 1, st.count(core.CollectionMenu))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ID)
}

func TestMenuStoreFailurePropagates(t *testing.T) {
	st := newMemStore()
	st.failSave = true
	svc := NewMenuService(st, testLogger())

	_, err := svc.Add(context.Background(), dto.MenuItemRequest{Name: strPtr("Soup")})
	assert.ErrorIs(t, err, core.ErrStoreFailure)
}
