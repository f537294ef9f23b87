// Package orchestrator runs batches of build profiles against a shared,
// non-reentrant build backend.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/resolve"
	"go.trai.ch/zerr"
)

// State is the phase of the batch currently executing.
type State string

const (
	// StateIdle means no batch is running.
	StateIdle State = "Idle"
	// StateCapturing means the global build settings are being read.
	StateCapturing State = "CapturingGlobalState"
	// StateRunning means profiles are being built.
	StateRunning State = "RunningProfiles"
	// StateRestoring means the captured settings are being written back.
	StateRestoring State = "RestoringGlobalState"
	// StateDone means the last batch finished.
	StateDone State = "Done"
)

// Orchestrator builds the active profiles of one or more collections in order.
//
// The global build settings are captured once when a batch starts and written
// back once when it ends, on every exit path. Each profile build is isolated:
// its failure is recorded and the batch moves on.
type Orchestrator struct {
	settings  ports.BuildSettings
	backend   ports.Backend
	scenes    ports.SceneResolver
	dirs      ports.OutputDirs
	telemetry ports.Telemetry
	logger    ports.Logger

	// running is held for the whole batch; the backend must never see two.
	running sync.Mutex

	mu      sync.RWMutex
	state   State
	profile int
}

// New creates an Orchestrator.
func New(
	settings ports.BuildSettings,
	backend ports.Backend,
	scenes ports.SceneResolver,
	dirs ports.OutputDirs,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		settings:  settings,
		backend:   backend,
		scenes:    scenes,
		dirs:      dirs,
		telemetry: telemetry,
		logger:    logger,
		state:     StateIdle,
	}
}

// State returns the current phase and, while running, the zero-based index of
// the profile being built within the batch.
func (o *Orchestrator) State() (State, int) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state, o.profile
}

func (o *Orchestrator) setState(s State, profile int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = s
	o.profile = profile
}

// RunBatch builds every effectively active profile of collections, in order.
//
// The returned result is always populated with whatever ran. The error is
// non-nil only when the batch could not start (settings capture failed,
// another batch running) or when restoring the captured settings failed, in
// which case it wraps domain.ErrGlobalStateRestore. Per-profile failures are
// reported in the result, never as an error.
//
// Cancelling ctx stops the batch between profiles; a backend call in flight
// always runs to completion.
func (o *Orchestrator) RunBatch(
	ctx context.Context,
	ws *domain.Workspace,
	collections []*domain.Collection,
) (result domain.BatchResult, err error) {
	if !o.running.TryLock() {
		return domain.BatchResult{}, domain.ErrBatchInProgress
	}
	defer o.running.Unlock()

	o.setState(StateCapturing, 0)
	baseline, err := o.settings.Capture(ws.StateDir)
	if err != nil {
		o.setState(StateDone, 0)
		return domain.BatchResult{}, errors.Join(domain.ErrGlobalStateCapture, err)
	}
	result.Baseline = baseline

	run := &batchRun{
		o:        o,
		ws:       ws,
		baseline: baseline,
		claimed:  make(map[string]domain.AssetID),
		result:   &result,
	}

	defer func() {
		o.setState(StateRestoring, run.index)
		if restoreErr := o.settings.Apply(ws.StateDir, baseline); restoreErr != nil {
			wrapped := zerr.With(
				zerr.With(zerr.Wrap(restoreErr, "restore global build settings"), "symbols", baseline.Symbols),
				"subtarget", string(baseline.Subtarget),
			)
			o.logger.Error(wrapped, "severity", "fatal")
			err = errors.Join(domain.ErrGlobalStateRestore, wrapped)
		}
		o.setState(StateDone, run.index)
	}()

	run.execute(ctx, collections)

	return result, nil
}

// batchRun holds the state of one RunBatch call.
type batchRun struct {
	o        *Orchestrator
	ws       *domain.Workspace
	baseline domain.GlobalBuildState
	claimed  map[string]domain.AssetID
	result   *domain.BatchResult
	index    int
}

func (r *batchRun) execute(ctx context.Context, collections []*domain.Collection) {
	for _, c := range collections {
		if c == nil {
			continue
		}
		for i, entry := range c.Entries {
			if ctx.Err() != nil {
				r.result.Aborted = true
				r.skip(c, i, entry.Ref, domain.SkipAborted)
				continue
			}

			ref, ok := entry.Ref.(domain.Resolved)
			if !ok || ref.Profile == nil {
				r.o.logger.Warn("skipping dangling profile reference",
					"collection", c.Name, "index", i, "target", targetID(entry.Ref))
				r.skip(c, i, entry.Ref, domain.SkipDangling)
				continue
			}

			if !entry.EffectiveActive(r.ws.ActivePolicy) {
				r.skip(c, i, entry.Ref, domain.SkipInactive)
				continue
			}

			r.o.setState(StateRunning, r.index)
			r.buildProfile(ctx, ref.Profile)
			r.index++
		}
	}
}

func (r *batchRun) skip(c *domain.Collection, index int, ref domain.ProfileRef, reason domain.SkipReason) {
	s := domain.ProfileSkip{
		Collection: c.Name,
		Index:      index,
		ProfileID:  targetID(ref),
		Reason:     reason,
	}
	if res, ok := ref.(domain.Resolved); ok && res.Profile != nil {
		s.ProfileName = res.Profile.Name
	}
	r.result.Skipped = append(r.result.Skipped, s)
}

func targetID(ref domain.ProfileRef) domain.AssetID {
	if ref == nil {
		return ""
	}
	return ref.TargetID()
}

func (r *batchRun) buildProfile(ctx context.Context, p *domain.Profile) {
	vctx, vertex := r.o.telemetry.Record(ctx, p.Name)

	outcome, kind, err := r.safeBuild(vctx, vertex, p)
	if err != nil {
		vertex.Complete(err)
		r.o.logger.Error(err,
			"profile_id", p.ID.String(),
			"profile_name", p.Name,
			"kind", string(kind),
		)
		r.result.Failed = append(r.result.Failed, domain.ProfileFailure{
			ProfileID:   p.ID,
			ProfileName: p.Name,
			Kind:        kind,
			Err:         err,
		})
		return
	}

	vertex.Complete(nil)
	r.o.logger.Info("profile built",
		"profile_id", p.ID.String(),
		"profile_name", p.Name,
		"output", outcome.Artifact.Path,
	)
	r.result.Succeeded = append(r.result.Succeeded, outcome)
}

// safeBuild turns a panic inside one profile into a recorded failure.
func (r *batchRun) safeBuild(
	ctx context.Context,
	vertex ports.Vertex,
	p *domain.Profile,
) (outcome domain.ProfileOutcome, kind domain.FailureKind, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			outcome = domain.ProfileOutcome{}
			kind = domain.FailurePanic
			err = zerr.With(zerr.Wrap(domain.ErrProfilePanicked, fmt.Sprint(rec)), "profile_id", p.ID.String())
		}
	}()
	return r.build(ctx, vertex, p)
}

func (r *batchRun) build(
	ctx context.Context,
	vertex ports.Vertex,
	p *domain.Profile,
) (domain.ProfileOutcome, domain.FailureKind, error) {
	symbols := resolve.Symbols(r.baseline.Symbols, p)
	applied := domain.GlobalBuildState{Symbols: symbols, Subtarget: p.Subtarget()}
	if err := r.o.settings.Apply(r.ws.StateDir, applied); err != nil {
		return domain.ProfileOutcome{}, domain.FailureSettingsApply, zerr.Wrap(err, "apply profile build settings")
	}
	vertex.Log(domain.LogLevelInfo, "symbols: "+symbols)
	vertex.Log(domain.LogLevelInfo, "subtarget: "+string(applied.Subtarget))

	options := p.Options()

	if len(p.Scenes) == 0 {
		return domain.ProfileOutcome{}, domain.FailureEmptySceneList,
			zerr.With(zerr.Wrap(domain.ErrEmptySceneList, "resolve scenes"), "profile_id", p.ID.String())
	}
	scenes := make([]string, 0, len(p.Scenes))
	for _, ref := range p.Scenes {
		path, err := r.o.scenes.ResolveScene(r.ws.ProjectRoot, ref)
		if err != nil {
			return domain.ProfileOutcome{}, domain.FailureSceneResolution,
				zerr.With(zerr.Wrap(err, "resolve scene"), "scene", string(ref))
		}
		scenes = append(scenes, path)
	}

	output := resolve.OutputPath(p, r.ws.ProductName, r.ws.ProjectRoot, r.ws.Platform)
	key := filepath.Clean(output)
	if owner, taken := r.claimed[key]; taken {
		return domain.ProfileOutcome{}, domain.FailurePathCollision,
			zerr.With(
				zerr.With(zerr.Wrap(domain.ErrPathCollision, "resolve output path"), "path", output),
				"claimed_by", owner.String(),
			)
	}
	r.claimed[key] = p.ID

	if err := r.o.dirs.EnsureDir(filepath.Dir(output)); err != nil {
		return domain.ProfileOutcome{}, domain.FailureOutputDir,
			zerr.With(zerr.Wrap(err, "create output directory"), "path", filepath.Dir(output))
	}

	req := domain.BuildRequest{
		Workspace:        r.ws,
		Scenes:           scenes,
		OutputPath:       output,
		Platform:         r.ws.Platform,
		Options:          options,
		ScriptingBackend: p.ScriptingBackend,
		APICompatibility: p.APICompatibility,
	}

	// Once issued a build runs to completion; cancellation is only honoured
	// between profiles.
	start := time.Now()
	artifact, err := r.o.backend.Build(context.WithoutCancel(ctx), req)
	if err != nil {
		// The backend's message is reported verbatim.
		return domain.ProfileOutcome{}, domain.FailureBackend, err
	}
	if artifact.Path == "" {
		artifact.Path = output
	}
	if artifact.Duration == 0 {
		artifact.Duration = time.Since(start)
	}

	return domain.ProfileOutcome{
		ProfileID:   p.ID,
		ProfileName: p.Name,
		Symbols:     symbols,
		Request:     req,
		Artifact:    artifact,
	}, "", nil
}
