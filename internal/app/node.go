package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/grails/internal/adapters/archive" //nolint:depguard // Wired in app layer
	"go.trai.ch/grails/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/grails/internal/adapters/ide"     //nolint:depguard // Wired in app layer
	"go.trai.ch/grails/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/grails/internal/adapters/maven"   //nolint:depguard // Wired in app layer
	"go.trai.ch/grails/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/grails/internal/adapters/telemetry/progrock"
	"go.trai.ch/grails/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			shell.NodeID,
			archive.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:       application,
				Logger:    log,
				Telemetry: tel,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	executor, err := graft.Dep[ports.GrailsExecutor](ctx)
	if err != nil {
		return nil, err
	}
	installer, err := graft.Dep[ports.HomeInstaller](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	newRepo := func(repos []string) ports.DependencyRepository {
		return maven.New(log, repos, artifactCacheDir())
	}
	newIDEWriter := func(projectDir string) ports.IDEMetadataWriter {
		return ide.NewWriter(projectDir)
	}

	return New(loader, newRepo, newIDEWriter, executor, installer, tel, log), nil
}

// artifactCacheDir places the shared artifact cache under the user cache
// directory, falling back to a dot directory in $HOME.
func artifactCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".grails", "repository")
	}
	return filepath.Join(base, "grails", "repository")
}
