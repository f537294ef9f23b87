// Package assets stores profiles and collections as YAML files under the
// workspace assets directory.
package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	kilnfs "go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var _ ports.AssetRepository = (*Repository)(nil)

// Repository implements ports.AssetRepository on the local file system.
type Repository struct {
	walker   *kilnfs.Walker
	logger   ports.Logger
	validate *validator.Validate
	mu       sync.Mutex
}

// NewRepository creates a new Repository.
func NewRepository(walker *kilnfs.Walker, logger ports.Logger) *Repository {
	return &Repository{
		walker:   walker,
		logger:   logger,
		validate: validator.New(),
	}
}

type indexed[T any] struct {
	path  string
	asset T
}

// index is a snapshot of every valid asset of one kind under a directory.
type index[T any] struct {
	dir   string
	items []indexed[T]
}

func scan[T any](
	r *Repository,
	dir, suffix string,
	decode func(path string) (T, error),
) (*index[T], error) {
	var paths []string
	for path := range r.walker.FilesWithSuffix(dir, suffix) {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	results := make([]T, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			results[i], errs[i] = decode(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	idx := &index[T]{dir: dir}
	for i, path := range paths {
		if errs[i] != nil {
			r.logger.Warn("skipping invalid asset", "path", path, "error", errs[i].Error())
			continue
		}
		idx.items = append(idx.items, indexed[T]{path: path, asset: results[i]})
	}
	return idx, nil
}

// lookup resolves identifier by ID, then by path, then by unique name.
func (idx *index[T]) lookup(
	identifier, suffix string,
	idOf func(T) string,
	nameOf func(T) string,
) (indexed[T], error) {
	for _, it := range idx.items {
		if idOf(it.asset) == identifier {
			return it, nil
		}
	}

	for _, candidate := range []string{identifier, identifier + suffix} {
		path := candidate
		if !filepath.IsAbs(path) {
			path = filepath.Join(idx.dir, filepath.FromSlash(path))
		}
		path = filepath.Clean(path)
		for _, it := range idx.items {
			if filepath.Clean(it.path) == path {
				return it, nil
			}
		}
	}

	var matches []indexed[T]
	for _, it := range idx.items {
		if nameOf(it.asset) == identifier {
			matches = append(matches, it)
		}
	}
	switch len(matches) {
	case 0:
		var zero indexed[T]
		return zero, zerr.With(domain.ErrAssetNotFound, "identifier", identifier)
	case 1:
		return matches[0], nil
	default:
		paths := make([]string, len(matches))
		for i, m := range matches {
			paths[i] = m.path
		}
		var zero indexed[T]
		return zero, zerr.With(zerr.With(domain.ErrAmbiguousAsset, "identifier", identifier),
			"candidates", strings.Join(paths, ", "))
	}
}

func (idx *index[T]) byID(id string, idOf func(T) string) (indexed[T], bool) {
	for _, it := range idx.items {
		if idOf(it.asset) == id {
			return it, true
		}
	}
	return indexed[T]{}, false
}

func profileID(p *domain.Profile) string   { return p.ID.String() }
func profileName(p *domain.Profile) string { return p.Name }

func collectionID(c *CollectionFile) string   { return c.ID }
func collectionName(c *CollectionFile) string { return c.Name }

func (r *Repository) profiles(dir string) (*index[*domain.Profile], error) {
	return scan(r, dir, ProfileSuffix, r.readProfile)
}

func (r *Repository) collections(dir string) (*index[*CollectionFile], error) {
	return scan(r, dir, CollectionSuffix, r.readCollection)
}

func (r *Repository) readProfile(path string) (*domain.Profile, error) {
	var f ProfileFile
	if err := r.readYAML(path, &f); err != nil {
		return nil, err
	}
	p, err := profileFromFile(&f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return p, nil
}

func (r *Repository) readCollection(path string) (*CollectionFile, error) {
	var f CollectionFile
	if err := r.readYAML(path, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *Repository) readYAML(path string, target any) error {
	//nolint:gosec // Path comes from walking the configured assets directory
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read asset"), "path", path)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidAsset.Error()), "path", path)
	}
	if err := r.validate.Struct(target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidAsset.Error()), "path", path)
	}
	return nil
}

func (r *Repository) writeYAML(path string, value any) error {
	if err := r.validate.Struct(value); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidAsset.Error()), "path", path)
	}
	data, err := yaml.Marshal(value)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode asset"), "path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create asset directory"), "path", filepath.Dir(path))
	}
	//nolint:gosec // Path is inside the configured assets directory
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write asset"), "path", path)
	}
	return nil
}

// LoadProfile loads a single profile.
func (r *Repository) LoadProfile(dir, identifier string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, err := r.profiles(dir)
	if err != nil {
		return nil, err
	}
	it, err := idx.lookup(identifier, ProfileSuffix, profileID, profileName)
	if err != nil {
		return nil, err
	}
	return it.asset, nil
}

// SaveProfile writes p back to the file it was loaded from.
func (r *Repository) SaveProfile(dir string, p *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, err := r.profiles(dir)
	if err != nil {
		return err
	}
	it, ok := idx.byID(p.ID.String(), profileID)
	if !ok {
		return zerr.With(domain.ErrAssetNotFound, "identifier", p.ID.String())
	}
	return r.writeYAML(it.path, profileToFile(p))
}

// CreateProfile creates a profile with default settings. The profile suffix
// is appended to path when missing; an empty name is taken from the file name.
func (r *Repository) CreateProfile(dir, path, name string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	target, name, err := newAssetPath(dir, path, name, ProfileSuffix)
	if err != nil {
		return nil, err
	}

	p := domain.NewProfile(domain.AssetID(uuid.New().String()), name)
	if err := r.writeYAML(target, profileToFile(p)); err != nil {
		return nil, err
	}
	return p, nil
}

// DiscoverProfiles lists profiles by name, filtered by query and exposure.
func (r *Repository) DiscoverProfiles(dir, query string, includeHidden bool) ([]*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, err := r.profiles(dir)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	var found []*domain.Profile
	for _, it := range idx.items {
		if !it.asset.Exposed && !includeHidden {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(it.asset.Name), query) {
			continue
		}
		found = append(found, it.asset)
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found, nil
}

// LoadCollection loads a collection and resolves its entries.
func (r *Repository) LoadCollection(dir, identifier string) (*domain.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	colls, err := r.collections(dir)
	if err != nil {
		return nil, err
	}
	it, err := colls.lookup(identifier, CollectionSuffix, collectionID, collectionName)
	if err != nil {
		return nil, err
	}

	byID, err := r.profilesByID(dir)
	if err != nil {
		return nil, err
	}
	return collectionFromFile(it.asset, byID), nil
}

// ListCollections loads every collection under dir, ordered by name.
func (r *Repository) ListCollections(dir string) ([]*domain.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	colls, err := r.collections(dir)
	if err != nil {
		return nil, err
	}
	byID, err := r.profilesByID(dir)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Collection, 0, len(colls.items))
	for _, it := range colls.items {
		out = append(out, collectionFromFile(it.asset, byID))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// SaveCollection writes c back to the file it was loaded from.
func (r *Repository) SaveCollection(dir string, c *domain.Collection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	colls, err := r.collections(dir)
	if err != nil {
		return err
	}
	it, ok := colls.byID(c.ID.String(), collectionID)
	if !ok {
		return zerr.With(domain.ErrAssetNotFound, "identifier", c.ID.String())
	}
	return r.writeYAML(it.path, collectionToFile(c))
}

// CreateCollection creates an empty collection asset.
func (r *Repository) CreateCollection(dir, path, name string) (*domain.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	target, name, err := newAssetPath(dir, path, name, CollectionSuffix)
	if err != nil {
		return nil, err
	}

	c := domain.NewCollection(domain.AssetID(uuid.New().String()), name)
	if err := r.writeYAML(target, collectionToFile(c)); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) profilesByID(dir string) (map[domain.AssetID]*domain.Profile, error) {
	idx, err := r.profiles(dir)
	if err != nil {
		return nil, err
	}
	byID := make(map[domain.AssetID]*domain.Profile, len(idx.items))
	for _, it := range idx.items {
		byID[it.asset.ID] = it.asset
	}
	return byID, nil
}

// newAssetPath resolves the file a new asset is written to and its name.
func newAssetPath(dir, path, name, suffix string) (string, string, error) {
	if strings.TrimSpace(path) == "" {
		return "", "", zerr.Wrap(domain.ErrInvalidAsset, "asset path is empty")
	}
	if !strings.HasSuffix(path, suffix) {
		path += suffix
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, filepath.FromSlash(path))
	}
	path = filepath.Clean(path)

	if _, err := os.Stat(path); err == nil {
		return "", "", zerr.With(domain.ErrAssetExists, "path", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", "", zerr.With(zerr.Wrap(err, "failed to stat asset"), "path", path)
	}

	if strings.TrimSpace(name) == "" {
		name = strings.TrimSuffix(filepath.Base(path), suffix)
	}
	return path, name, nil
}
