package ports

import (
	"context"

	"go.trai.ch/grails/internal/core/domain"
)

// HomeInstaller materializes the framework home directory from the resolved
// resources artifact. Every command task depends on this step completing
// before execution.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type HomeInstaller interface {
	// Install unpacks the resources artifact under workDir and writes the
	// auxiliary logging configuration file there. It returns the framework
	// home directory. Installation is skipped when the artifact is unchanged
	// since the last install; cached reports that outcome.
	Install(ctx context.Context, resources domain.Artifact, workDir string) (home string, cached bool, err error)
}
