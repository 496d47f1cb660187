package blob

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/probe/internal/adapters/layout"
)

const (
	// TypeEnvNodeID is the unique identifier for the type environment store node.
	TypeEnvNodeID graft.ID = "adapter.blob.tenv"
	// CFGNodeID is the unique identifier for the control-flow graph store node.
	CFGNodeID graft.ID = "adapter.blob.cfg"
)

func init() {
	graft.Register(graft.Node[*TypeEnvStore]{
		ID:        TypeEnvNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*TypeEnvStore, error) {
			return NewTypeEnvStore(), nil
		},
	})

	graft.Register(graft.Node[*CFGStore]{
		ID:        CFGNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{layout.NodeID},
		Run: func(ctx context.Context) (*CFGStore, error) {
			l, err := graft.Dep[*layout.Layout](ctx)
			if err != nil {
				return nil, err
			}
			return NewCFGStore(l), nil
		},
	})
}
