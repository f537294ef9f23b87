package app

import (
	"context"
	"errors"
	"slices"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/engine/resolve"
	"go.trai.ch/zerr"
)

// ListProfiles prints the profiles whose name contains query. Hidden
// profiles are listed only when all is set.
func (a *App) ListProfiles(_ context.Context, query string, all bool) error {
	ws, err := a.workspace()
	if err != nil {
		return err
	}

	profiles, err := a.assets.DiscoverProfiles(ws.AssetsDir, query, all)
	if err != nil {
		return zerr.Wrap(err, "failed to discover profiles")
	}
	a.reporter.Profiles(profiles)
	return nil
}

// NewProfile creates a profile asset with default settings at path.
func (a *App) NewProfile(_ context.Context, path, name string) error {
	ws, err := a.workspace()
	if err != nil {
		return err
	}

	p, err := a.assets.CreateProfile(ws.AssetsDir, path, name)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create profile"), "path", path)
	}
	a.logger.Info("created profile", "profile", p.Name, "id", p.ID.String())
	return nil
}

// ToggleProfile flips a profile's active flag.
func (a *App) ToggleProfile(_ context.Context, identifier string) error {
	ws, p, err := a.loadProfile(identifier)
	if err != nil {
		return err
	}

	p.Active = !p.Active
	if err := a.saveProfile(ws, p); err != nil {
		return err
	}
	a.logger.Info("profile toggled", "profile", p.Name, "active", p.Active)
	return nil
}

// ImportSymbols replaces a profile's extra symbols with the symbols currently
// defined in the global build settings. The mode symbols are left out since
// the profile's flags add them again.
func (a *App) ImportSymbols(_ context.Context, identifier string) error {
	ws, p, err := a.loadProfile(identifier)
	if err != nil {
		return err
	}

	state, err := a.settings.Capture(ws.StateDir)
	if err != nil {
		return errors.Join(domain.ErrGlobalStateCapture, err)
	}

	symbols := slices.DeleteFunc(resolve.SplitSymbols(state.Symbols), func(s string) bool {
		return s == resolve.ClientSymbol || s == resolve.ServerSymbol
	})
	p.DefineSymbols = symbols
	if err := a.saveProfile(ws, p); err != nil {
		return err
	}
	a.logger.Info("imported symbols", "profile", p.Name, "count", len(symbols))
	return nil
}

// ValidateProfile checks that a profile can be built: it lists scenes, every
// scene resolves, and its mode flags make sense together. Mode conflicts are
// warnings; missing scenes are errors.
func (a *App) ValidateProfile(_ context.Context, identifier string) error {
	ws, p, err := a.loadProfile(identifier)
	if err != nil {
		return err
	}

	if p.Modes.Headless && p.Modes.Client {
		a.logger.Warn("headless profile also defines the client symbol", "profile", p.Name)
	}
	if p.Modes.Client && p.Modes.Server {
		a.logger.Warn("profile defines both client and server symbols", "profile", p.Name)
	}

	var errs []error
	if len(p.Scenes) == 0 {
		errs = append(errs, zerr.With(domain.ErrEmptySceneList, "profile", p.Name))
	}
	for _, ref := range p.Scenes {
		if _, err := a.scenes.ResolveScene(ws.ProjectRoot, ref); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(domain.ErrInvalidAsset, errors.Join(errs...))
	}

	a.logger.Info("profile is valid",
		"profile", p.Name,
		"symbols", resolve.Symbols("", p),
		"output", resolve.OutputPath(p, ws.ProductName, ws.ProjectRoot, ws.Platform),
	)
	return nil
}

func (a *App) loadProfile(identifier string) (*domain.Workspace, *domain.Profile, error) {
	ws, err := a.workspace()
	if err != nil {
		return nil, nil, err
	}

	p, err := a.assets.LoadProfile(ws.AssetsDir, identifier)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to load profile"), "profile", identifier)
	}
	return ws, p, nil
}

func (a *App) saveProfile(ws *domain.Workspace, p *domain.Profile) error {
	if err := a.assets.SaveProfile(ws.AssetsDir, p); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to save profile"), "profile", p.Name)
	}
	return nil
}
