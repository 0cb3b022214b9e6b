package kepler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stellium.dev/stellium/internal/core/ports"
)

// NodeID is the unique identifier for the position provider Graft node.
const NodeID graft.ID = "adapter.position_provider"

func init() {
	graft.Register(graft.Node[ports.PositionProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PositionProvider, error) {
			return NewProvider(), nil
		},
	})
}
