package layout

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/probe/internal/adapters/config"
	"go.trai.ch/probe/internal/core/domain"
)

// NodeID is the unique identifier for the layout Graft node.
const NodeID graft.ID = "adapter.layout"

func init() {
	graft.Register(graft.Node[*Layout]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Layout, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.ResultsDir), nil
		},
	})
}
