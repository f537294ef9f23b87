// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/kiln/internal/core/domain"

// BuildSettings is the environment-wide build-settings surface: the active
// preprocessor symbols and the build subtarget shared by every build.
//
// The surface lives in the workspace state directory passed as dir. Only the
// orchestrator writes it while a batch runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type BuildSettings interface {
	// Capture reads the current symbols and subtarget.
	Capture(dir string) (domain.GlobalBuildState, error)

	// Apply overwrites the symbols and subtarget with the given state.
	Apply(dir string, state domain.GlobalBuildState) error
}
