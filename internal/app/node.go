package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prebuild/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/prebuild/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/prebuild/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/prebuild/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/prebuild/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/prebuild/internal/core/ports"
)

// NodeID is the unique identifier for the main App Graft node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			shell.NodeID,
			fs.HasherNodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, runner, log, hasher, tel), nil
		},
	})
}
