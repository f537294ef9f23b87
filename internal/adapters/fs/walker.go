// Package fs provides file system adapters for scenes, output directories and
// asset discovery.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// skippedDirs are never descended into. Library and Temp are editor caches.
var skippedDirs = map[string]bool{
	".git":    true,
	".jj":     true,
	"Library": true,
	"Temp":    true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root, skipping VCS metadata, editor caches
// and entries matching ignores. Yielded paths include root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip, action := w.shouldSkip(d, ignores); skip {
				return action
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// FilesWithSuffix yields the files under root whose name ends in suffix.
func (w *Walker) FilesWithSuffix(root, suffix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.WalkFiles(root, nil) {
			if !strings.HasSuffix(filepath.Base(path), suffix) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

// shouldSkip reports whether d is excluded. The returned action is
// filepath.SkipDir for directories and nil for files.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && skippedDirs[name] {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
