package render

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stellium.dev/stellium/internal/core/ports"
)

// NodeID is the unique identifier for the chart renderer Graft node. It
// provides the plain-text renderer; the JSON variant is selected per
// request by the application layer.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.ChartRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ChartRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
