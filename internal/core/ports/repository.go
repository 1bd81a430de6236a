// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/grails/internal/core/domain"
)

// DependencyRepository resolves dependency declarations against a repository.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type DependencyRepository interface {
	// Resolve resolves every declaration to an artifact on disk.
	// A single unresolvable declaration fails the whole resolution.
	Resolve(ctx context.Context, deps []domain.Dependency) ([]domain.Artifact, error)

	// ResolveLenient resolves the declarations in lenient mode: unresolvable
	// declarations are reported in the result rather than returned as an
	// error. The error return is reserved for faults of the repository
	// itself (e.g. an unreadable cache directory).
	ResolveLenient(ctx context.Context, deps []domain.Dependency) (*domain.LenientResult, error)
}
