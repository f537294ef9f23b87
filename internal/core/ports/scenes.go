package ports

import "go.trai.ch/kiln/internal/core/domain"

// SceneResolver maps scene references to build-relative paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=scenes.go -destination=mocks/mock_scenes.go -package=mocks
type SceneResolver interface {
	// ResolveScene returns the path the backend expects for ref, which is
	// relative to the project root.
	ResolveScene(root string, ref domain.SceneRef) (string, error)
}

// OutputDirs prepares output locations before a build.
type OutputDirs interface {
	// EnsureDir creates dir and its parents. It is a no-op when dir exists.
	EnsureDir(dir string) error
}
