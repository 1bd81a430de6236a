package ports

import "go.trai.ch/grails/internal/core/domain"

// ConfigLoader defines the interface for loading the project descriptor.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project descriptor from the given working directory.
	Load(cwd string) (*domain.ProjectConfig, error)
}
