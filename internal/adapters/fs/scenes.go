package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SceneResolver = (*SceneResolver)(nil)

// SceneExtension is the file extension of scene assets.
const SceneExtension = ".unity"

// SceneResolver resolves scene references against the project tree.
type SceneResolver struct{}

// NewSceneResolver creates a new SceneResolver.
func NewSceneResolver() *SceneResolver {
	return &SceneResolver{}
}

// ResolveScene checks that ref names an existing scene file under root and
// returns it in the slash-separated form the backend expects.
func (r *SceneResolver) ResolveScene(root string, ref domain.SceneRef) (string, error) {
	rel := strings.TrimSpace(string(ref))
	if rel == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrSceneNotFound, "empty scene reference"), "root", root)
	}
	rel = filepath.ToSlash(filepath.Clean(filepath.FromSlash(rel)))
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", zerr.With(zerr.Wrap(domain.ErrSceneNotFound, "scene outside project"), "scene", string(ref))
	}
	if filepath.Ext(rel) != SceneExtension {
		return "", zerr.With(zerr.Wrap(domain.ErrSceneNotFound, "not a scene asset"), "scene", string(ref))
	}

	path := filepath.Join(root, filepath.FromSlash(rel))
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrSceneNotFound, "scene missing"), "path", path)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to stat scene"), "path", path)
	}
	if info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrSceneNotFound, "scene is a directory"), "path", path)
	}

	return rel, nil
}
