package app

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// ListCollections prints every collection in the assets directory.
func (a *App) ListCollections(_ context.Context) error {
	ws, err := a.workspace()
	if err != nil {
		return err
	}

	collections, err := a.assets.ListCollections(ws.AssetsDir)
	if err != nil {
		return zerr.Wrap(err, "failed to list collections")
	}
	a.reporter.Collections(collections, ws.ActivePolicy)
	return nil
}

// ShowCollection prints one collection's entries and its ready-to-build count.
func (a *App) ShowCollection(_ context.Context, identifier string) error {
	ws, c, err := a.loadCollection(identifier)
	if err != nil {
		return err
	}
	a.reporter.Collection(c, ws.ActivePolicy)
	return nil
}

// NewCollection creates an empty collection asset at path.
func (a *App) NewCollection(_ context.Context, path, name string) error {
	ws, err := a.workspace()
	if err != nil {
		return err
	}

	c, err := a.assets.CreateCollection(ws.AssetsDir, path, name)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create collection"), "path", path)
	}
	a.logger.Info("created collection", "collection", c.Name, "id", c.ID.String())
	return nil
}

// AddToCollection appends the given profiles to a collection, in order.
// Without profiles a single empty slot is appended.
func (a *App) AddToCollection(_ context.Context, identifier string, profiles []string) error {
	ws, c, err := a.loadCollection(identifier)
	if err != nil {
		return err
	}

	if len(profiles) == 0 {
		c.AddPlaceholder()
	}
	for _, ref := range profiles {
		p, err := a.assets.LoadProfile(ws.AssetsDir, ref)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to load profile"), "profile", ref)
		}
		c.Add(p)
	}

	return a.saveCollection(ws, c)
}

// RemoveFromCollection deletes the entry at the 1-based position.
func (a *App) RemoveFromCollection(_ context.Context, identifier string, position int) error {
	ws, c, err := a.loadCollection(identifier)
	if err != nil {
		return err
	}

	if err := c.Remove(position - 1); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to remove entry"), "collection", c.Name), "position", position)
	}
	return a.saveCollection(ws, c)
}

// PruneCollection removes dangling and repeated entries from a collection.
func (a *App) PruneCollection(_ context.Context, identifier string) error {
	ws, c, err := a.loadCollection(identifier)
	if err != nil {
		return err
	}

	removed := c.Prune()
	if removed == 0 {
		a.logger.Info("nothing to prune", "collection", c.Name)
		return nil
	}
	if err := a.saveCollection(ws, c); err != nil {
		return err
	}
	a.logger.Info("pruned collection", "collection", c.Name, "removed", removed)
	return nil
}

// UseCollection makes a collection the default for `run` without arguments.
func (a *App) UseCollection(_ context.Context, identifier string) error {
	ws, c, err := a.loadCollection(identifier)
	if err != nil {
		return err
	}

	if err := a.prefs.Set(ws.StateDir, lastCollectionKey(ws), c.ID.String()); err != nil {
		return zerr.Wrap(err, "failed to store last collection")
	}
	a.logger.Info("default collection set", "collection", c.Name)
	return nil
}

func (a *App) loadCollection(identifier string) (*domain.Workspace, *domain.Collection, error) {
	ws, err := a.workspace()
	if err != nil {
		return nil, nil, err
	}

	c, err := a.assets.LoadCollection(ws.AssetsDir, identifier)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to load collection"), "collection", identifier)
	}
	return ws, c, nil
}

func (a *App) saveCollection(ws *domain.Workspace, c *domain.Collection) error {
	if err := a.assets.SaveCollection(ws.AssetsDir, c); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to save collection"), "collection", c.Name)
	}
	return nil
}
