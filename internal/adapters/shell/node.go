package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grails/internal/adapters/logger"
	"go.trai.ch/grails/internal/core/ports"
)

// NodeID is the unique identifier for the grails executor Graft node.
const NodeID graft.ID = "adapter.grails_executor"

func init() {
	graft.Register(graft.Node[ports.GrailsExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.GrailsExecutor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}
