package domain

import "time"

// FailureKind classifies why a profile did not produce an artifact.
type FailureKind string

const (
	// FailureEmptySceneList means the profile lists no scenes.
	FailureEmptySceneList FailureKind = "EmptySceneList"
	// FailureSceneResolution means a scene reference could not be resolved.
	FailureSceneResolution FailureKind = "SceneResolution"
	// FailurePathCollision means an earlier profile in the batch already claimed the output path.
	FailurePathCollision FailureKind = "PathCollisionRisk"
	// FailureOutputDir means the output directory could not be created.
	FailureOutputDir FailureKind = "OutputDirectory"
	// FailureSettingsApply means the global settings surface rejected the profile's values.
	FailureSettingsApply FailureKind = "SettingsApplyFailure"
	// FailureBackend means the platform backend reported an error.
	FailureBackend FailureKind = "BackendBuildFailure"
	// FailurePanic means the profile's build panicked and was recovered.
	FailurePanic FailureKind = "Panic"
)

// SkipReason explains why an entry was not built.
type SkipReason string

const (
	// SkipDangling marks an entry whose reference does not resolve.
	SkipDangling SkipReason = "DanglingReference"
	// SkipInactive marks an entry whose effective active flag is false.
	SkipInactive SkipReason = "Inactive"
	// SkipAborted marks entries not reached because the batch was cancelled.
	SkipAborted SkipReason = "Aborted"
)

// BuildRequest is everything the backend needs for one profile.
type BuildRequest struct {
	// Workspace is the project the build runs in.
	Workspace        *Workspace
	Scenes           []string
	OutputPath       string
	Platform         Platform
	Options          BuildOptions
	ScriptingBackend ScriptingBackend
	APICompatibility APICompatibility
}

// Artifact describes a successful backend build.
type Artifact struct {
	Path     string
	Duration time.Duration
}

// ProfileOutcome records a successful profile build.
type ProfileOutcome struct {
	ProfileID   AssetID
	ProfileName string
	Symbols     string
	Request     BuildRequest
	Artifact    Artifact
}

// ProfileFailure records a failed profile build.
type ProfileFailure struct {
	ProfileID   AssetID
	ProfileName string
	Kind        FailureKind
	Err         error
}

// Message returns the underlying error text, or an empty string.
func (f ProfileFailure) Message() string {
	if f.Err == nil {
		return ""
	}
	return f.Err.Error()
}

// ProfileSkip records an entry that was not built.
type ProfileSkip struct {
	Collection  string
	Index       int
	ProfileID   AssetID
	ProfileName string
	Reason      SkipReason
}

// BatchCounts summarises a batch.
type BatchCounts struct {
	Succeeded int
	Failed    int
	Skipped   int
}

// BatchResult aggregates one orchestrator run.
type BatchResult struct {
	Baseline  GlobalBuildState
	Succeeded []ProfileOutcome
	Failed    []ProfileFailure
	Skipped   []ProfileSkip
	Aborted   bool
}

// Counts returns the succeeded/failed/skipped tallies.
func (r BatchResult) Counts() BatchCounts {
	return BatchCounts{
		Succeeded: len(r.Succeeded),
		Failed:    len(r.Failed),
		Skipped:   len(r.Skipped),
	}
}

// HasFailures reports whether any profile failed.
func (r BatchResult) HasFailures() bool {
	return len(r.Failed) > 0
}
