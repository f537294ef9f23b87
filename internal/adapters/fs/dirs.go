package fs

import (
	"os"

	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputDirs = (*OutputDirs)(nil)

const dirPerm = 0o750

// OutputDirs creates output directories on the local file system.
type OutputDirs struct{}

// NewOutputDirs creates a new OutputDirs.
func NewOutputDirs() *OutputDirs {
	return &OutputDirs{}
}

// EnsureDir creates dir and any missing parents.
func (d *OutputDirs) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", dir)
	}
	return nil
}
