package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/fs"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func collect(t *testing.T, root string, seq func(func(string) bool)) map[string]bool {
	t.Helper()
	files := make(map[string]bool)
	for path := range seq {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		files[filepath.ToSlash(rel)] = true
	}
	return files
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".git/config")
	writeFile(t, root, "Library/cache.bin")
	writeFile(t, root, "ignored/file")
	writeFile(t, root, "Assets/Main.unity")
	writeFile(t, root, "README.md")

	files := collect(t, root, fs.NewWalker().WalkFiles(root, []string{"ignored"}))

	assert.Equal(t, map[string]bool{
		"Assets/Main.unity": true,
		"README.md":         true,
	}, files)
}

func TestWalker_FilesWithSuffix(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Client.profile.yaml")
	writeFile(t, root, "nested/Server.profile.yaml")
	writeFile(t, root, "Nightly.collection.yaml")

	files := collect(t, root, fs.NewWalker().FilesWithSuffix(root, ".profile.yaml"))

	assert.Equal(t, map[string]bool{
		"Client.profile.yaml":        true,
		"nested/Server.profile.yaml": true,
	}, files)
}

func TestWalker_EarlyStop(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt")
	writeFile(t, root, "b.txt")

	count := 0
	for range fs.NewWalker().WalkFiles(root, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
