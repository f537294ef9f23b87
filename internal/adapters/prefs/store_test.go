package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/prefs"
)

func TestStore_GetMissing(t *testing.T) {
	store := prefs.NewStore()

	v, ok, err := store.Get(t.TempDir(), "Game.kiln.LastCollection")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestStore_SetGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	store := prefs.NewStore()

	require.NoError(t, store.Set(dir, "Game.kiln.LastCollection", "nightly-id"))
	require.NoError(t, store.Set(dir, "Other.kiln.LastCollection", "release-id"))
	require.NoError(t, store.Set(dir, "Game.kiln.LastCollection", "weekly-id"))

	v, ok, err := store.Get(dir, "Game.kiln.LastCollection")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "weekly-id", v)

	v, ok, err = store.Get(dir, "Other.kiln.LastCollection")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "release-id", v)
}

func TestStore_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, prefs.FileName), []byte("[1,2"), 0o600))

	store := prefs.NewStore()
	_, _, err := store.Get(dir, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse preferences")

	err = store.Set(dir, "k", "v")
	require.Error(t, err)
}
