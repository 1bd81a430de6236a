package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grails/internal/adapters/logger"
	"go.trai.ch/grails/internal/core/ports"
)

// NodeID is the unique identifier for the home installer Graft node.
const NodeID graft.ID = "adapter.home_installer"

func init() {
	graft.Register(graft.Node[ports.HomeInstaller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.HomeInstaller, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(log), nil
		},
	})
}
