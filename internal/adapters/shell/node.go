package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/logger"
	"go.trai.ch/kiln/internal/adapters/settings"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the build backend Graft node.
const NodeID graft.ID = "adapter.backend"

func init() {
	graft.Register(graft.Node[ports.Backend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Backend, error) {
			surface, err := graft.Dep[ports.BuildSettings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBackend(surface, log), nil
		},
	})
}
