package repositories

import (
	"testing"

	"chatflow/src/models"
	"chatflow/src/services/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_LoadMissing(t *testing.T) {
	repo := NewProfileRepository(storage.NewMemoryStore(), nil)
	user, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestProfileRepository_SaveLoadClear(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewProfileRepository(store, nil)
	want := models.User{ID: "1", Username: "alice", Email: "alice@example.com", AvatarRef: "avatar"}

	require.NoError(t, repo.Save(want))
	raw, err := store.Get(ProfileKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","username":"alice","email":"alice@example.com","avatar":"avatar"}`, string(raw))

	got, err := repo.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	require.NoError(t, repo.Clear())
	got, err = repo.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileRepository_CorruptValueIsDiscarded(t *testing.T) {
	tests := map[string]string{
		"truncated json":   "{not json",
		"null":             "null",
		"empty object":     "{}",
		"array":            "[]",
		"missing id":       `{"username":"alice"}`,
		"missing username": `{"id":"1"}`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			require.NoError(t, store.Put(ProfileKey, []byte(raw)))
			repo := NewProfileRepository(store, nil)

			user, err := repo.Load()
			require.NoError(t, err)
			assert.Nil(t, user)

			_, err = store.Get(ProfileKey)
			assert.True(t, storage.IsNotFound(err))
		})
	}
}
