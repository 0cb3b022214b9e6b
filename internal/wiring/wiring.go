// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.stellium.dev/stellium/internal/adapters/config"
	_ "go.stellium.dev/stellium/internal/adapters/kepler"
	_ "go.stellium.dev/stellium/internal/adapters/logger"
	_ "go.stellium.dev/stellium/internal/adapters/render"
	_ "go.stellium.dev/stellium/internal/adapters/telemetry"
	_ "go.stellium.dev/stellium/internal/adapters/watcher"
	// Register app nodes.
	_ "go.stellium.dev/stellium/internal/app"
)
