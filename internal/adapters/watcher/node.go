package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.stellium.dev/stellium/internal/core/ports"
)

// WatcherNodeID is the unique identifier for the config watcher Graft node.
const WatcherNodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Watcher, error) {
			return NewWatcher()
		},
	})
}

// DefaultDebounceWindow is the quiet period after the last file event
// before a change is delivered.
const DefaultDebounceWindow = 250 * time.Millisecond
