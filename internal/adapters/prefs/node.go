package prefs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the preference store Graft node.
const NodeID graft.ID = "adapter.preferences"

func init() {
	graft.Register(graft.Node[ports.PreferenceStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PreferenceStore, error) {
			return NewStore(), nil
		},
	})
}
