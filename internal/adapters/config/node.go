package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/probe/internal/adapters/logger"
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports"
)

// LoaderNodeID is the unique identifier for the config loader Graft node.
const LoaderNodeID graft.ID = "adapter.config_loader"

// NodeID is the unique identifier for the loaded configuration Graft node.
const NodeID graft.ID = "adapter.config"

type levelSetter interface {
	SetLevel(level domain.LogLevel)
}

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[*domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := loader.Load(".")
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			if leveled, ok := log.(levelSetter); ok {
				leveled.SetLevel(cfg.LogLevel)
			}
			return cfg, nil
		},
	})
}
