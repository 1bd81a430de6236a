package ports

import (
	"context"

	"go.trai.ch/grails/internal/core/domain"
)

// GrailsExecutor invokes the external grails command-line tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type GrailsExecutor interface {
	// Execute runs the invocation's subcommand with its arguments,
	// environment selector and classpath, and returns an error carrying the
	// exit status when the process fails.
	Execute(ctx context.Context, inv *domain.Invocation) error
}
