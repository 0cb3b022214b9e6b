package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stellium.dev/stellium/internal/adapters/config"
	"go.stellium.dev/stellium/internal/adapters/kepler"
	"go.stellium.dev/stellium/internal/adapters/logger"
	"go.stellium.dev/stellium/internal/adapters/render"
	"go.stellium.dev/stellium/internal/adapters/telemetry"
	"go.stellium.dev/stellium/internal/adapters/watcher"
	"go.stellium.dev/stellium/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			kepler.NodeID,
			render.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			watcher.WatcherNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[ports.PositionProvider](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.ChartRenderer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, provider, renderer, log, tracer, watch), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
