package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// Backend performs the platform compile/link/package step for one profile.
//
// Implementations are assumed non-reentrant: they read the same global build
// settings the orchestrator writes, so calls must never overlap.
//
//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Backend interface {
	// Build produces the player described by req or returns the backend's error.
	Build(ctx context.Context, req domain.BuildRequest) (domain.Artifact, error)
}
