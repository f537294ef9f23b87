package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/settings"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestFile_CaptureMissing(t *testing.T) {
	dir := t.TempDir()

	state, err := settings.New().Capture(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.GlobalBuildState{Subtarget: domain.SubtargetPlayer}, state)
}

func TestFile_ApplyThenCapture(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".kiln")
	surface := settings.New()

	want := domain.GlobalBuildState{Symbols: "FOO;BAR;GAME_SERVER;", Subtarget: domain.SubtargetServer}
	require.NoError(t, surface.Apply(dir, want))

	got, err := surface.Capture(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFile_ApplyOverwrites(t *testing.T) {
	dir := t.TempDir()
	surface := settings.New()

	require.NoError(t, surface.Apply(dir, domain.GlobalBuildState{Symbols: "A;", Subtarget: domain.SubtargetServer}))
	require.NoError(t, surface.Apply(dir, domain.GlobalBuildState{Symbols: "", Subtarget: domain.SubtargetPlayer}))

	got, err := surface.Capture(dir)
	require.NoError(t, err)
	assert.Empty(t, got.Symbols)
	assert.Equal(t, domain.SubtargetPlayer, got.Subtarget)
}

func TestFile_CaptureCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(settings.Path(dir), []byte("{not json"), 0o600))

	_, err := settings.New().Capture(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse build settings")
}

func TestFile_ApplyUnwritable(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "state")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o600))

	err := settings.New().Apply(blocker, domain.GlobalBuildState{Subtarget: domain.SubtargetPlayer})
	require.Error(t, err)
}

func TestFile_RestoreWritesBackWhatWasFound(t *testing.T) {
	tests := []struct {
		name     string
		original string
	}{
		{name: "mixed case subtarget", original: `{"define_symbols":"FOO","subtarget":"Server"}`},
		{name: "unknown subtarget", original: `{"define_symbols":"FOO","subtarget":"dedicated"}`},
		{name: "foreign keys", original: `{"define_symbols":"FOO","subtarget":"player","compression":"lz4","threads":4}`},
		{name: "no symbols", original: `{"subtarget":"server"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(settings.Path(dir), []byte(tt.original), 0o600))
			surface := settings.New()

			baseline, err := surface.Capture(dir)
			require.NoError(t, err)
			require.NoError(t, surface.Apply(dir, domain.GlobalBuildState{
				Symbols:   "FOO;BAR;GAME_CLIENT;",
				Subtarget: domain.SubtargetPlayer,
			}))
			require.NoError(t, surface.Apply(dir, baseline))

			restored, err := os.ReadFile(settings.Path(dir))
			require.NoError(t, err)
			assert.JSONEq(t, tt.original, string(restored))
		})
	}
}

func TestFile_CaptureKeepsStoredSubtarget(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(settings.Path(dir), []byte(`{"subtarget":"Server"}`), 0o600))

	state, err := settings.New().Capture(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.Subtarget("Server"), state.Subtarget)
	assert.Empty(t, state.Symbols)
}

func TestFile_CaptureRejectsNonStringField(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(settings.Path(dir), []byte(`{"subtarget":3}`), 0o600))

	_, err := settings.New().Capture(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse build settings")
}
