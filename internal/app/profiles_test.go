package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestApp_ListProfiles(t *testing.T) {
	f := newFixture(t)
	hidden := profile("p2", "Hidden")
	hidden.Exposed = false
	f.assets.EXPECT().DiscoverProfiles(assetsDir, "cli", true).
		Return([]*domain.Profile{profile("p1", "Client"), hidden}, nil)

	require.NoError(t, f.app.ListProfiles(context.Background(), "cli", true))
	out := f.out.String()
	assert.Contains(t, out, "Client")
	assert.Contains(t, out, "hidden")
}

func TestApp_ToggleProfile(t *testing.T) {
	f := newFixture(t)
	p := profile("p1", "Client")
	f.assets.EXPECT().LoadProfile(assetsDir, "Client").Return(p, nil)
	f.assets.EXPECT().SaveProfile(assetsDir, p).Return(nil)

	require.NoError(t, f.app.ToggleProfile(context.Background(), "Client"))
	assert.False(t, p.Active)
	assert.Contains(t, f.logs.String(), "active=false")
}

func TestApp_ImportSymbols(t *testing.T) {
	f := newFixture(t)
	p := profile("p1", "Client")
	p.DefineSymbols = []string{"OLD"}
	f.assets.EXPECT().LoadProfile(assetsDir, "p1").Return(p, nil)
	f.settings.EXPECT().Capture(stateDir).
		Return(domain.GlobalBuildState{Symbols: "FOO; GAME_CLIENT;BAR;;GAME_SERVER"}, nil)
	f.assets.EXPECT().SaveProfile(assetsDir, p).Return(nil)

	require.NoError(t, f.app.ImportSymbols(context.Background(), "p1"))
	assert.Equal(t, []string{"FOO", "BAR"}, p.DefineSymbols)
}

func TestApp_ValidateProfile(t *testing.T) {
	t.Run("valid profile reports its output", func(t *testing.T) {
		f := newFixture(t)
		p := profile("p1", "Server")
		p.Modes.Headless = true
		p.Modes.Client = true
		f.assets.EXPECT().LoadProfile(assetsDir, "Server").Return(p, nil)
		f.scenes.EXPECT().ResolveScene("/proj", domain.SceneRef("Assets/Scenes/Main.unity")).
			Return("Assets/Scenes/Main.unity", nil)

		require.NoError(t, f.app.ValidateProfile(context.Background(), "Server"))
		logs := f.logs.String()
		assert.Contains(t, logs, "headless profile also defines the client symbol")
		assert.Contains(t, logs, "profile is valid")
		assert.Contains(t, logs, "MONO_RELEASE_HEADLESS")
	})

	t.Run("missing scenes are errors", func(t *testing.T) {
		f := newFixture(t)
		p := profile("p1", "Broken")
		p.Scenes = append(p.Scenes, "Assets/Gone.unity")
		f.assets.EXPECT().LoadProfile(assetsDir, "Broken").Return(p, nil)
		f.scenes.EXPECT().ResolveScene("/proj", domain.SceneRef("Assets/Scenes/Main.unity")).
			Return("Assets/Scenes/Main.unity", nil)
		f.scenes.EXPECT().ResolveScene("/proj", domain.SceneRef("Assets/Gone.unity")).
			Return("", domain.ErrSceneNotFound)

		err := f.app.ValidateProfile(context.Background(), "Broken")
		require.ErrorIs(t, err, domain.ErrInvalidAsset)
		assert.ErrorIs(t, err, domain.ErrSceneNotFound)
	})

	t.Run("empty scene list is an error", func(t *testing.T) {
		f := newFixture(t)
		p := profile("p1", "Empty")
		p.Scenes = nil
		f.assets.EXPECT().LoadProfile(assetsDir, "Empty").Return(p, nil)

		err := f.app.ValidateProfile(context.Background(), "Empty")
		require.ErrorIs(t, err, domain.ErrInvalidAsset)
		assert.Contains(t, err.Error(), domain.ErrEmptySceneList.Error())
	})
}
