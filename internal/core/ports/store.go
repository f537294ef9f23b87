package ports

import (
	"time"

	"go.trai.ch/kiln/internal/core/domain"
)

// BuildRecordStore defines the interface for storing and retrieving the last build of each profile.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get retrieves the record for a profile.
	// Returns nil, nil if not found.
	Get(dir, profileID string) (*domain.BuildRecord, error)

	// RecordBatch stores one record per built profile of result, stamped with
	// at, replacing previous records of the same profiles. Successes are
	// written before failures. A failed write does not stop the others.
	RecordBatch(dir string, result domain.BatchResult, at time.Time) error

	// All returns every record ordered by profile name.
	All(dir string) ([]domain.BuildRecord, error)
}
