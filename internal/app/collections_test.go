package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestApp_ListCollections(t *testing.T) {
	f := newFixture(t)
	c := collection("c1", "Nightly", profile("p1", "Client"))
	f.assets.EXPECT().ListCollections(assetsDir).Return([]*domain.Collection{c}, nil)

	require.NoError(t, f.app.ListCollections(context.Background()))
	assert.Contains(t, f.out.String(), "Nightly 1 entries, 1 ready")
}

func TestApp_ShowCollection(t *testing.T) {
	f := newFixture(t)
	c := collection("c1", "Nightly", profile("p1", "Client"))
	c.Entries = append(c.Entries, domain.Entry{Ref: domain.Unresolved{ID: "gone"}})
	f.assets.EXPECT().LoadCollection(assetsDir, "Nightly").Return(c, nil)

	require.NoError(t, f.app.ShowCollection(context.Background(), "Nightly"))
	out := f.out.String()
	assert.Contains(t, out, "(1 of 2 ready to build)")
	assert.Contains(t, out, "<missing gone>")
}

func TestApp_NewCollection(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().CreateCollection(assetsDir, "Nightly", "").Return(collection("c1", "Nightly"), nil)

	require.NoError(t, f.app.NewCollection(context.Background(), "Nightly", ""))
	assert.Contains(t, f.logs.String(), "created collection")
}

func TestApp_NewCollection_Exists(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().CreateCollection(assetsDir, "Nightly", "").Return(nil, domain.ErrAssetExists)

	err := f.app.NewCollection(context.Background(), "Nightly", "")
	require.ErrorIs(t, err, domain.ErrAssetExists)
}

func TestApp_AddToCollection(t *testing.T) {
	t.Run("appends profiles in order", func(t *testing.T) {
		f := newFixture(t)
		c := collection("c1", "Nightly")
		f.assets.EXPECT().LoadCollection(assetsDir, "c1").Return(c, nil)
		f.assets.EXPECT().LoadProfile(assetsDir, "Client").Return(profile("p1", "Client"), nil)
		f.assets.EXPECT().LoadProfile(assetsDir, "Server").Return(profile("p2", "Server"), nil)

		var saved *domain.Collection
		f.assets.EXPECT().SaveCollection(assetsDir, gomock.Any()).
			DoAndReturn(func(_ string, c *domain.Collection) error {
				saved = c
				return nil
			})

		require.NoError(t, f.app.AddToCollection(context.Background(), "c1", []string{"Client", "Server"}))
		require.Len(t, saved.Entries, 2)
		assert.Equal(t, domain.AssetID("p1"), saved.Entries[0].Ref.TargetID())
		assert.Equal(t, domain.AssetID("p2"), saved.Entries[1].Ref.TargetID())
	})

	t.Run("adds an empty slot without profiles", func(t *testing.T) {
		f := newFixture(t)
		c := collection("c1", "Nightly")
		f.assets.EXPECT().LoadCollection(assetsDir, "c1").Return(c, nil)
		f.assets.EXPECT().SaveCollection(assetsDir, c).Return(nil)

		require.NoError(t, f.app.AddToCollection(context.Background(), "c1", nil))
		require.Len(t, c.Entries, 1)
		assert.Equal(t, domain.Unresolved{}, c.Entries[0].Ref)
	})

	t.Run("unknown profile leaves the collection untouched", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().LoadCollection(assetsDir, "c1").Return(collection("c1", "Nightly"), nil)
		f.assets.EXPECT().LoadProfile(assetsDir, "Nope").Return(nil, domain.ErrAssetNotFound)

		err := f.app.AddToCollection(context.Background(), "c1", []string{"Nope"})
		require.ErrorIs(t, err, domain.ErrAssetNotFound)
	})
}

func TestApp_RemoveFromCollection(t *testing.T) {
	t.Run("removes by position", func(t *testing.T) {
		f := newFixture(t)
		c := collection("c1", "Nightly", profile("p1", "A"), profile("p2", "B"))
		f.assets.EXPECT().LoadCollection(assetsDir, "c1").Return(c, nil)
		f.assets.EXPECT().SaveCollection(assetsDir, c).Return(nil)

		require.NoError(t, f.app.RemoveFromCollection(context.Background(), "c1", 1))
		require.Len(t, c.Entries, 1)
		assert.Equal(t, domain.AssetID("p2"), c.Entries[0].Ref.TargetID())
	})

	t.Run("rejects out of range positions", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().LoadCollection(assetsDir, "c1").Return(collection("c1", "Nightly"), nil)

		err := f.app.RemoveFromCollection(context.Background(), "c1", 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrEntryIndexOutOfRange.Error())
	})
}

func TestApp_PruneCollection(t *testing.T) {
	t.Run("saves after removing entries", func(t *testing.T) {
		f := newFixture(t)
		p := profile("p1", "A")
		c := collection("c1", "Nightly", p, p)
		c.AddPlaceholder()
		f.assets.EXPECT().LoadCollection(assetsDir, "c1").Return(c, nil)
		f.assets.EXPECT().SaveCollection(assetsDir, c).Return(nil)

		require.NoError(t, f.app.PruneCollection(context.Background(), "c1"))
		assert.Len(t, c.Entries, 1)
		assert.Contains(t, f.logs.String(), "removed=2")
	})

	t.Run("does not save a clean collection", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().LoadCollection(assetsDir, "c1").Return(collection("c1", "Nightly", profile("p1", "A")), nil)

		require.NoError(t, f.app.PruneCollection(context.Background(), "c1"))
		assert.Contains(t, f.logs.String(), "nothing to prune")
	})
}

func TestApp_UseCollection(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().LoadCollection(assetsDir, "Nightly").Return(collection("c1", "Nightly"), nil)
	f.prefs.EXPECT().Set(stateDir, prefKey, "c1").Return(nil)

	require.NoError(t, f.app.UseCollection(context.Background(), "Nightly"))
}
