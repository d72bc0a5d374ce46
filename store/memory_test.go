package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alstn2468/Redux-ToDo-Web-Backend/models"
	"github.com/alstn2468/Redux-ToDo-Web-Backend/store"
)

func TestMemory_CreateAssignsAscendingIDs(t *testing.T) {
	m := store.NewMemory()

	first, err := m.Create("Todo Text 1")
	require.NoError(t, err)
	second, err := m.Create("Todo Text 2")
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.False(t, first.IsCompleted)

	todos, err := m.List()
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "Todo Text 1", todos[0].Text)
	assert.Equal(t, "Todo Text 2", todos[1].Text)
}

func TestMemory_GetAndUpdate(t *testing.T) {
	m := store.NewMemory()
	created, err := m.Create("Todo Text 1")
	require.NoError(t, err)

	created.Text = "Edit Text"
	created.IsCompleted = true
	require.NoError(t, m.Update(created))

	got, err := m.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edit Text", got.Text)
	assert.True(t, got.IsCompleted)

	_, err = m.Get(99)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, m.Update(models.Todo{ID: 99}), store.ErrNotFound)
}

func TestMemory_Delete(t *testing.T) {
	m := store.NewMemory()
	created, err := m.Create("Todo Text 1")
	require.NoError(t, err)

	require.NoError(t, m.Delete(created.ID))
	assert.ErrorIs(t, m.Delete(created.ID), store.ErrNotFound)
}

func TestMemory_DeleteAllIsIdempotent(t *testing.T) {
	m := store.NewMemory()
	require.NoError(t, m.DeleteAll())

	for _, text := range []string{"Todo Text 1", "Todo Text 2", "Todo Text 3", "Todo Text 4"} {
		_, err := m.Create(text)
		require.NoError(t, err)
	}

	require.NoError(t, m.DeleteAll())
	todos, err := m.List()
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestMemory_Users(t *testing.T) {
	m := store.NewMemory()

	u, err := m.CreateUser("alstn2468", "hash")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)

	_, err = m.CreateUser("alstn2468", "other")
	assert.ErrorIs(t, err, store.ErrUsernameTaken)

	got, err := m.UserByUsername("alstn2468")
	require.NoError(t, err)
	assert.Equal(t, "hash", got.PasswordHash)

	_, err = m.UserByUsername("nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
