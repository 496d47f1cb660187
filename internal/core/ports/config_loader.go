package ports

import "go.trai.ch/probe/internal/core/domain"

// ConfigLoader defines the interface for loading the probe configuration.
type ConfigLoader interface {
	// Load reads the configuration from the given working directory.
	Load(cwd string) (*domain.Config, error)
}
