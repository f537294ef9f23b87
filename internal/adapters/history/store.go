// Package history stores the last build record of every profile.
package history

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// DirName is the history directory inside the state directory.
const DirName = "history"

var _ ports.BuildRecordStore = (*Store)(nil)

// Store implements ports.BuildRecordStore using a file-per-profile strategy.
type Store struct{}

// NewStore creates a new build record Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the build record for a given profile.
func (s *Store) Get(dir, profileID string) (*domain.BuildRecord, error) {
	return s.read(s.getFilename(dir, profileID))
}

// Put stores the build record.
func (s *Store) Put(dir string, record domain.BuildRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build record")
	}

	filename := s.getFilename(dir, record.ProfileID)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filepath.Dir(filename))
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}

	return nil
}

// RecordBatch stores the outcome of every built profile in result.
func (s *Store) RecordBatch(dir string, result domain.BatchResult, at time.Time) error {
	records := make([]domain.BuildRecord, 0, len(result.Succeeded)+len(result.Failed))
	for _, o := range result.Succeeded {
		records = append(records, RecordFor(o))
	}
	for _, f := range result.Failed {
		records = append(records, FailureRecord(f))
	}

	var errs []error
	for _, rec := range records {
		rec.Timestamp = at.UTC()
		if err := s.Put(dir, rec); err != nil {
			errs = append(errs, zerr.With(err, "profile_id", rec.ProfileID))
		}
	}
	return errors.Join(errs...)
}

// All returns every stored record ordered by profile name.
func (s *Store) All(dir string) ([]domain.BuildRecord, error) {
	root := filepath.Join(dir, DirName)
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", root)
	}

	records := make([]domain.BuildRecord, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		rec, err := s.read(filepath.Join(root, e.Name()))
		if err != nil {
			return nil, err
		}
		if rec != nil {
			records = append(records, *rec)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].ProfileName != records[j].ProfileName {
			return records[i].ProfileName < records[j].ProfileName
		}
		return records[i].ProfileID < records[j].ProfileID
	})
	return records, nil
}

func (s *Store) read(filename string) (*domain.BuildRecord, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var rec domain.BuildRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal build record"), "path", filename)
	}
	return &rec, nil
}

func (s *Store) getFilename(dir, profileID string) string {
	hash := sha256.Sum256([]byte(profileID))
	return filepath.Join(dir, DirName, hex.EncodeToString(hash[:])+".json")
}
