package settings

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the build settings Graft node.
const NodeID graft.ID = "adapter.build_settings"

func init() {
	graft.Register(graft.Node[ports.BuildSettings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildSettings, error) {
			return New(), nil
		},
	})
}
