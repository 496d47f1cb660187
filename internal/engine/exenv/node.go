package exenv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/probe/internal/adapters/attrstore"
	"go.trai.ch/probe/internal/adapters/blob"
	"go.trai.ch/probe/internal/adapters/capture"
	"go.trai.ch/probe/internal/adapters/config"
	"go.trai.ch/probe/internal/adapters/layout"
	"go.trai.ch/probe/internal/adapters/logger"
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports"
)

// NodeID is the unique identifier for the execution environment Graft node.
const NodeID graft.ID = "engine.exenv"

func init() {
	graft.Register(graft.Node[*Environment]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			attrstore.NodeID,
			capture.NodeID,
			blob.TypeEnvNodeID,
			blob.CFGNodeID,
			layout.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Environment, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			attrs, err := graft.Dep[ports.AttributeStore](ctx)
			if err != nil {
				return nil, err
			}
			capturer, err := graft.Dep[ports.Capturer](ctx)
			if err != nil {
				return nil, err
			}
			tenvs, err := graft.Dep[*blob.TypeEnvStore](ctx)
			if err != nil {
				return nil, err
			}
			cfgs, err := graft.Dep[*blob.CFGStore](ctx)
			if err != nil {
				return nil, err
			}
			l, err := graft.Dep[*layout.Layout](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			settings := Settings{
				Primary:         cfg.PrimarySource,
				ReactiveCapture: cfg.ReactiveCapture,
			}
			return New(settings, attrs, capturer, tenvs, cfgs, l, log), nil
		},
	})
}
