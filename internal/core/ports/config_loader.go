package ports

import "go.trai.ch/modcache/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the given working directory.
	// A missing config file yields the defaults.
	Load(cwd string) (*domain.Config, error)
}
