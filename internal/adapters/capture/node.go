package capture

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/probe/internal/adapters/attrstore"
	"go.trai.ch/probe/internal/adapters/config"
	"go.trai.ch/probe/internal/adapters/layout"
	"go.trai.ch/probe/internal/adapters/logger"
	"go.trai.ch/probe/internal/adapters/telemetry/progrock"
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports"
)

// NodeID is the unique identifier for the capture Graft node.
const NodeID graft.ID = "adapter.capture"

func init() {
	graft.Register(graft.Node[ports.Capturer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, layout.NodeID, attrstore.NodeID, progrock.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Capturer, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			l, err := graft.Dep[*layout.Layout](ctx)
			if err != nil {
				return nil, err
			}
			attrs, err := graft.Dep[ports.AttributeStore](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCapturer(cfg.Capture, l.Root(), attrs, telemetry, log), nil
		},
	})
}
