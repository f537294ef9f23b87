// Package settings implements the global build-settings surface as a JSON
// file in the workspace state directory.
package settings

import (
	"bytes"
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

// FileName is the name of the settings file inside the state directory.
const FileName = "build-settings.json"

var _ ports.BuildSettings = (*File)(nil)

// File implements ports.BuildSettings on top of a JSON file.
type File struct {
	mu sync.Mutex
}

// New creates a new File settings surface.
func New() *File {
	return &File{}
}

// Keys of the settings document. Other keys are owned by the environment and
// are carried through every Apply untouched.
const (
	keySymbols   = "define_symbols"
	keySubtarget = "subtarget"
)

// Path returns the settings file path for dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Capture reads the current state. A missing file is the pristine state:
// no symbols and the player subtarget. The subtarget is returned exactly as
// stored so that restoring it writes back the same value.
func (f *File) Capture(dir string) (domain.GlobalBuildState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := Path(dir)
	doc, found, err := readDocument(path)
	if err != nil {
		return domain.GlobalBuildState{}, err
	}
	if !found {
		return domain.GlobalBuildState{Subtarget: domain.SubtargetPlayer}, nil
	}

	symbols, err := stringField(doc, keySymbols, path)
	if err != nil {
		return domain.GlobalBuildState{}, err
	}
	subtarget, err := stringField(doc, keySubtarget, path)
	if err != nil {
		return domain.GlobalBuildState{}, err
	}

	return domain.GlobalBuildState{
		Symbols:   symbols,
		Subtarget: domain.Subtarget(subtarget),
	}, nil
}

// Apply replaces the stored state. The file is replaced atomically so a
// reader never sees a partial write. An empty field removes its key.
func (f *File) Apply(dir string, state domain.GlobalBuildState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := Path(dir)
	doc, _, err := readDocument(path)
	if err != nil || doc == nil {
		// An unreadable document cannot be preserved; it is replaced.
		doc = make(map[string]json.RawMessage)
	}
	if err := setField(doc, keySymbols, state.Symbols); err != nil {
		return err
	}
	if err := setField(doc, keySubtarget, string(state.Subtarget)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build settings")
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, FileName+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Already renamed on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	return nil
}

func readDocument(path string) (map[string]json.RawMessage, bool, error) {
	//nolint:gosec // Path is built from the configured state directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	doc := make(map[string]json.RawMessage)
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, true, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, true, zerr.With(zerr.Wrap(err, "failed to parse build settings"), "path", path)
	}
	return doc, true, nil
}

func stringField(doc map[string]json.RawMessage, key, path string) (string, error) {
	raw, ok := doc[key]
	if !ok {
		return "", nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, "failed to parse build settings"), "path", path), "key", key)
	}
	return v, nil
}

func setField(doc map[string]json.RawMessage, key, value string) error {
	if value == "" {
		delete(doc, key)
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build settings")
	}
	doc[key] = raw
	return nil
}
