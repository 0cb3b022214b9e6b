package ports

import "go.stellium.dev/stellium/internal/core/domain"

// ConfigLoader defines the interface for loading the chart configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load searches upward from cwd for a stellium.yaml, resolves every
	// name in it, and applies defaults. A missing file yields the default
	// configuration; an invalid file is an error before any calculation.
	Load(cwd string) (domain.ChartConfig, error)

	// DiscoverConfigPath returns the path of the configuration file Load
	// would use, or the empty string when only defaults apply.
	DiscoverConfigPath(cwd string) (string, error)
}
