package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptySceneList is returned when an active profile lists no scenes.
	ErrEmptySceneList = zerr.New("profile has no scenes")

	// ErrSceneNotFound is returned when a scene reference does not exist under the project root.
	ErrSceneNotFound = zerr.New("scene not found")

	// ErrPathCollision is returned when two profiles in one batch resolve to the same output path.
	ErrPathCollision = zerr.New("output path already claimed by another profile in this batch")

	// ErrBackendBuildFailed is returned when the platform backend reports a failed build.
	ErrBackendBuildFailed = zerr.New("backend build failed")

	// ErrProfilePanicked is returned when a profile's build panicked.
	ErrProfilePanicked = zerr.New("profile build panicked")

	// ErrGlobalStateCapture is returned when the global build settings cannot be read at batch start.
	ErrGlobalStateCapture = zerr.New("failed to capture global build settings")

	// ErrGlobalStateRestore is returned when the global build settings could not be
	// restored after a batch. The environment no longer matches what the operator left.
	ErrGlobalStateRestore = zerr.New("failed to restore global build settings")

	// ErrBatchInProgress is returned when a batch is started while another is running.
	ErrBatchInProgress = zerr.New("a batch is already in progress")

	// ErrBatchFailed is returned when at least one profile in a batch failed.
	ErrBatchFailed = zerr.New("one or more profiles failed to build")

	// ErrNoCollections is returned when a batch is requested without collections
	// and no last-used collection is recorded.
	ErrNoCollections = zerr.New("no collections specified")

	// ErrAssetNotFound is returned when an identifier matches no asset.
	ErrAssetNotFound = zerr.New("asset not found")

	// ErrAmbiguousAsset is returned when a name matches more than one asset.
	ErrAmbiguousAsset = zerr.New("identifier matches more than one asset")

	// ErrAssetExists is returned when creating an asset at a path that is already taken.
	ErrAssetExists = zerr.New("asset already exists")

	// ErrInvalidAsset is returned when an asset file fails validation.
	ErrInvalidAsset = zerr.New("invalid asset")

	// ErrEntryIndexOutOfRange is returned when removing a collection entry that does not exist.
	ErrEntryIndexOutOfRange = zerr.New("collection entry index out of range")

	// ErrConfigNotFound is returned when no config file exists in cwd or any parent.
	ErrConfigNotFound = zerr.New("no kiln.yaml found")

	// ErrConfigReadFailed is returned when the workspace config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrInvalidConfig is returned when the workspace config fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrUnknownPlatform is returned when the configured platform is not registered.
	ErrUnknownPlatform = zerr.New("unknown platform")

	// ErrStoreReadFailed is returned when a state file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read state file")

	// ErrStoreWriteFailed is returned when a state file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write state file")

	// ErrBackendNotConfigured is returned when no backend command is configured.
	ErrBackendNotConfigured = zerr.New("no backend command configured")

	// ErrAborted is returned when the operator declines to start a batch.
	ErrAborted = zerr.New("batch aborted by operator")
)
