package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/settings"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			settings.NodeID,
			shell.NodeID,
			fs.SceneResolverNodeID,
			fs.OutputDirsNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			buildSettings, err := graft.Dep[ports.BuildSettings](ctx)
			if err != nil {
				return nil, err
			}

			backend, err := graft.Dep[ports.Backend](ctx)
			if err != nil {
				return nil, err
			}

			scenes, err := graft.Dep[ports.SceneResolver](ctx)
			if err != nil {
				return nil, err
			}

			dirs, err := graft.Dep[ports.OutputDirs](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(buildSettings, backend, scenes, dirs, tel, log), nil
		},
	})
}
