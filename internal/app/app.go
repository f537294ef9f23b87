// Package app implements the application layer for kiln.
package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// LastCollectionKey is the preference key suffix holding the collections of
// the last batch. The full key is prefixed with the product name.
const LastCollectionKey = "kiln.LastCollection"

// lastCollectionSeparator joins several collection IDs in one preference value.
const lastCollectionSeparator = ","

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	assets       ports.AssetRepository
	prefs        ports.PreferenceStore
	store        ports.BuildRecordStore
	settings     ports.BuildSettings
	scenes       ports.SceneResolver
	orchestrator *orchestrator.Orchestrator
	reporter     ports.Reporter
	logger       ports.Logger

	workDir string
	now     func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	assets ports.AssetRepository,
	prefs ports.PreferenceStore,
	store ports.BuildRecordStore,
	settings ports.BuildSettings,
	scenes ports.SceneResolver,
	orch *orchestrator.Orchestrator,
	reporter ports.Reporter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		assets:       assets,
		prefs:        prefs,
		store:        store,
		settings:     settings,
		scenes:       scenes,
		orchestrator: orch,
		reporter:     reporter,
		logger:       log,
		now:          time.Now,
	}
}

// WithWorkDir sets the directory the workspace config is searched from.
// It defaults to the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithClock replaces the time source used for build records.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// SetVerbose switches the logger to debug output when it supports levels.
func (a *App) SetVerbose(verbose bool) {
	leveled, ok := a.logger.(interface{ SetLevel(slog.Level) })
	if !ok {
		return
	}
	if verbose {
		leveled.SetLevel(slog.LevelDebug)
		return
	}
	leveled.SetLevel(slog.LevelInfo)
}

func (a *App) workspace() (*domain.Workspace, error) {
	dir := a.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to determine working directory")
		}
		dir = wd
	}

	ws, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return ws, nil
}

func lastCollectionKey(ws *domain.Workspace) string {
	return ws.ProductName + "." + LastCollectionKey
}

// RunBatch builds the active profiles of the given collections in order.
// Without identifiers the collections of the previous batch are used.
//
// It returns an error wrapping domain.ErrBatchFailed when any profile failed
// and one wrapping domain.ErrGlobalStateRestore when the build settings could
// not be restored; the latter takes precedence.
func (a *App) RunBatch(ctx context.Context, identifiers []string) error {
	ws, err := a.workspace()
	if err != nil {
		return err
	}

	if len(identifiers) == 0 {
		identifiers, err = a.lastCollections(ws)
		if err != nil {
			return err
		}
	}

	collections := make([]*domain.Collection, 0, len(identifiers))
	for _, id := range identifiers {
		c, err := a.assets.LoadCollection(ws.AssetsDir, id)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to load collection"), "collection", id)
		}
		collections = append(collections, c)
	}

	result, runErr := a.orchestrator.RunBatch(ctx, ws, collections)
	var restoreErr error
	if runErr != nil {
		if !errors.Is(runErr, domain.ErrGlobalStateRestore) {
			return zerr.Wrap(runErr, "batch did not start")
		}
		restoreErr = runErr
	}

	a.recordHistory(ws, result)
	a.rememberCollections(ws, collections)
	a.reporter.Batch(result, restoreErr)

	if restoreErr != nil {
		return restoreErr
	}
	if result.HasFailures() {
		failures := make([]error, 0, len(result.Failed))
		for _, f := range result.Failed {
			failures = append(failures, zerr.With(zerr.Wrap(f.Err, f.ProfileName), "kind", string(f.Kind)))
		}
		return errors.Join(domain.ErrBatchFailed, errors.Join(failures...))
	}
	return nil
}

func (a *App) lastCollections(ws *domain.Workspace) ([]string, error) {
	value, ok, err := a.prefs.Get(ws.StateDir, lastCollectionKey(ws))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read last collection")
	}
	if !ok || value == "" {
		return nil, domain.ErrNoCollections
	}
	return strings.Split(value, lastCollectionSeparator), nil
}

// rememberCollections stores the batch's collections as the default for the
// next run. Failures are logged; the batch outcome does not depend on them.
func (a *App) rememberCollections(ws *domain.Workspace, collections []*domain.Collection) {
	ids := make([]string, 0, len(collections))
	for _, c := range collections {
		ids = append(ids, c.ID.String())
	}
	if err := a.prefs.Set(ws.StateDir, lastCollectionKey(ws), strings.Join(ids, lastCollectionSeparator)); err != nil {
		a.logger.Warn("failed to remember last collection", "error", err.Error())
	}
}

func (a *App) recordHistory(ws *domain.Workspace, result domain.BatchResult) {
	if len(result.Succeeded) == 0 && len(result.Failed) == 0 {
		return
	}
	if err := a.store.RecordBatch(ws.StateDir, result, a.now()); err != nil {
		a.logger.Warn("failed to record build history", "error", err.Error())
	}
}

// History prints the last recorded build of every profile.
func (a *App) History(_ context.Context) error {
	ws, err := a.workspace()
	if err != nil {
		return err
	}

	records, err := a.store.All(ws.StateDir)
	if err != nil {
		return zerr.Wrap(err, "failed to read build history")
	}
	a.reporter.History(records)
	return nil
}
