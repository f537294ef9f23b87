package ports

import "go.trai.ch/kiln/internal/core/domain"

// AssetRepository persists profiles and collections under an assets directory.
//
// Identifiers accepted by the Load methods are an asset ID, a path relative to
// dir, or a name that matches exactly one asset.
//
//go:generate go run go.uber.org/mock/mockgen -source=assets.go -destination=mocks/mock_assets.go -package=mocks
type AssetRepository interface {
	// LoadCollection loads a collection and resolves its profile references.
	// References to missing profiles come back as domain.Unresolved.
	LoadCollection(dir, identifier string) (*domain.Collection, error)

	// ListCollections loads every collection under dir, ordered by name.
	ListCollections(dir string) ([]*domain.Collection, error)

	// SaveCollection writes a collection back to its asset file.
	SaveCollection(dir string, c *domain.Collection) error

	// CreateCollection creates a new, empty collection asset at path.
	CreateCollection(dir, path, name string) (*domain.Collection, error)

	// LoadProfile loads a single profile.
	LoadProfile(dir, identifier string) (*domain.Profile, error)

	// SaveProfile writes a profile back to its asset file.
	SaveProfile(dir string, p *domain.Profile) error

	// CreateProfile creates a new profile asset with default settings at path.
	CreateProfile(dir, path, name string) (*domain.Profile, error)

	// DiscoverProfiles lists profiles whose name contains query (case-insensitive).
	// Profiles with Exposed=false are only listed when includeHidden is set.
	DiscoverProfiles(dir, query string, includeHidden bool) ([]*domain.Profile, error)
}
