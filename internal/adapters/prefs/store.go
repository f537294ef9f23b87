// Package prefs implements the operator preference store as a JSON object in
// the workspace state directory.
package prefs

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileName is the name of the preference file inside the state directory.
const FileName = "preferences.json"

var _ ports.PreferenceStore = (*Store)(nil)

// Store implements ports.PreferenceStore using a flat JSON file.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new preference Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the value stored under key.
func (s *Store) Get(dir, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load(dir)
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key, keeping every other key.
func (s *Store) Set(dir, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load(dir)
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal preferences")
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", dir)
	}

	path := filepath.Join(dir, FileName)
	//nolint:gosec // Path is built from the configured state directory
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}

func (s *Store) load(dir string) (map[string]string, error) {
	path := filepath.Join(dir, FileName)
	values := make(map[string]string)

	//nolint:gosec // Path is built from the configured state directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}
	if len(data) == 0 {
		return values, nil
	}

	if err := json.Unmarshal(data, &values); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse preferences"), "path", path)
	}
	return values, nil
}
