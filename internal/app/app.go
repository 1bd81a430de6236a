// Package app implements the application layer for the grails plugin.
package app

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/grails/internal/core/domain"
	"go.trai.ch/grails/internal/core/ports"
	"go.trai.ch/grails/internal/engine/plugin"
	"go.trai.ch/zerr"
)

// RepositoryFactory builds a dependency repository for the project's
// configured repository URLs.
type RepositoryFactory func(repos []string) ports.DependencyRepository

// IDEWriterFactory builds the IDE metadata writer for a project directory.
type IDEWriterFactory func(projectDir string) ports.IDEMetadataWriter

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	newRepo      RepositoryFactory
	newIDEWriter IDEWriterFactory
	executor     ports.GrailsExecutor
	installer    ports.HomeInstaller
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	newRepo RepositoryFactory,
	newIDEWriter IDEWriterFactory,
	executor ports.GrailsExecutor,
	installer ports.HomeInstaller,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		newRepo:      newRepo,
		newIDEWriter: newIDEWriter,
		executor:     executor,
		installer:    installer,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// Run executes the named tasks against the project in the current directory.
func (a *App) Run(ctx context.Context, taskNames []string) error {
	if len(taskNames) == 0 {
		return domain.ErrNoTasksSpecified
	}

	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	bootstrap, err := a.assemble(cwd)
	if err != nil {
		return err
	}

	for _, name := range taskNames {
		task, err := bootstrap.Tasks().Lookup(name)
		if err != nil {
			return err
		}

		vctx, vertex := a.telemetry.Record(ctx, task.Name)
		err = a.runTask(vctx, bootstrap, task)
		vertex.Complete(err)
		if err != nil {
			return domain.Detail(err, "task", task.Name)
		}
	}
	return nil
}

// Bootstrap loads the project configuration and installs the plugin against
// a fresh extension and scope graph. Exposed for the task listing command.
func (a *App) Bootstrap(cwd string) (*plugin.Bootstrap, error) {
	return a.assemble(cwd)
}

func (a *App) assemble(cwd string) (*plugin.Bootstrap, error) {
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	ext := domain.NewExtension(projectLayout{dir: cwd})
	scopes := domain.NewScopeGraph()
	repo := a.newRepo(cfg.Repositories)

	var ideWriter ports.IDEMetadataWriter
	if cfg.IDEIntegration {
		ideWriter = a.newIDEWriter(cwd)
	}

	bootstrap := plugin.NewBootstrap(ext, scopes, repo, a.logger, ideWriter, cfg)
	if err := bootstrap.Install(); err != nil {
		return nil, zerr.Wrap(err, "failed to install plugin")
	}

	if cfg.GrailsVersion != "" {
		if err := ext.SetGrailsVersion(cfg.GrailsVersion); err != nil {
			return nil, zerr.Wrap(err, "failed to apply configured grails version")
		}
	}
	return bootstrap, nil
}

// runTask materializes the invocation, installs the framework home and hands
// the result to the executor. The home install runs before every execution;
// the installer's fingerprint check makes the repeat case cheap.
func (a *App) runTask(ctx context.Context, bootstrap *plugin.Bootstrap, task *domain.CommandTask) error {
	inv, err := bootstrap.PrepareInvocation(ctx, task)
	if err != nil {
		return err
	}

	resources, err := bootstrap.ResourcesArtifact(ctx)
	if err != nil {
		return err
	}
	home, cached, err := a.installHome(ctx, resources, inv.WorkDir)
	if err != nil {
		return zerr.Wrap(err, "failed to install framework home")
	}
	if cached {
		a.logger.Info("framework home up to date, install skipped")
	}
	inv.GrailsHome = home

	if err := a.executor.Execute(ctx, inv); err != nil {
		return err
	}
	return nil
}

// installHome runs the framework home install under its own vertex. A
// fingerprint hit marks the vertex cached instead of completed, so progress
// output distinguishes the skip from actual unpack work.
func (a *App) installHome(ctx context.Context, resources domain.Artifact, workDir string) (string, bool, error) {
	vctx, vertex := a.telemetry.Record(ctx, "install "+resources.Coordinate())
	home, cached, err := a.installer.Install(vctx, resources, workDir)
	if cached {
		vertex.Cached()
	} else {
		vertex.Complete(err)
	}
	return home, cached, err
}

// projectLayout anchors the extension's directory defaults at the project root.
type projectLayout struct {
	dir string
}

func (l projectLayout) ProjectDir() string {
	return l.dir
}

func (l projectLayout) BuildDir() string {
	return filepath.Join(l.dir, "build")
}
