package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

const (
	WalkerNodeID        graft.ID = "adapter.fs.walker"
	SceneResolverNodeID graft.ID = "adapter.fs.scenes"
	OutputDirsNodeID    graft.ID = "adapter.fs.output_dirs"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.SceneResolver]{
		ID:        SceneResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SceneResolver, error) {
			return NewSceneResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.OutputDirs]{
		ID:        OutputDirsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputDirs, error) {
			return NewOutputDirs(), nil
		},
	})
}
