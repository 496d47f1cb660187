package attrstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/probe/internal/adapters/layout"
	"go.trai.ch/probe/internal/core/ports"
)

// NodeID is the unique identifier for the attribute store Graft node.
const NodeID graft.ID = "adapter.attrstore"

func init() {
	graft.Register(graft.Node[ports.AttributeStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{layout.NodeID},
		Run: func(ctx context.Context) (ports.AttributeStore, error) {
			l, err := graft.Dep[*layout.Layout](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(l.AttributesPath())
		},
	})
}
