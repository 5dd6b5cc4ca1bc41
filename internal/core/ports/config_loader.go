package ports

import "go.trai.ch/prebuild/internal/core/domain"

// ConfigLoader constructs the immutable build environment once at startup.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration and returns the environment snapshot.
	Load() (*domain.BuildEnvironment, error)
}
