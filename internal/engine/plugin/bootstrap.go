// Package plugin implements the property-resolution and task-composition
// engine: the plugin bootstrap, the task factory with its dynamic naming
// rule, and the lenient resolver for the optional reload agent.
package plugin

import (
	"context"

	goversion "github.com/hashicorp/go-version"
	"go.trai.ch/grails/internal/core/domain"
	"go.trai.ch/grails/internal/core/ports"
	"go.trai.ch/zerr"
)

// Convention property names layered onto every command task.
const (
	PropGrailsVersion         = "grailsVersion"
	PropProjectVersion        = "projectVersion"
	PropProjectDir            = "projectDir"
	PropWorkDir               = "workDir"
	PropBootstrapClasspath    = "bootstrapClasspath"
	PropCompileClasspath      = "compileClasspath"
	PropRuntimeClasspath      = "runtimeClasspath"
	PropTestClasspath         = "testClasspath"
	PropSpringloadedClasspath = "springloadedClasspath"
)

// minGrailsVersion is the oldest framework release the plugin drives.
var minGrailsVersion = goversion.Must(goversion.NewVersion("1.3"))

// Static task commands. Assemble's command depends on whether the project
// packages a reusable plugin or builds a deployable artifact.
const (
	commandCreateApp     = "create-app"
	commandCreatePlugin  = "create-plugin"
	commandClean         = "clean"
	commandTestApp       = "test-app"
	commandWar           = "war"
	commandPackagePlugin = "package-plugin"
)

// Bootstrap wires the extension, the scope graph, the version-change
// callbacks, the static tasks and the dynamic naming rule together at
// install time. It holds no state of its own beyond the objects it creates.
type Bootstrap struct {
	ext    *domain.Extension
	scopes *domain.ScopeGraph
	repo   ports.DependencyRepository
	logger ports.Logger
	ide    ports.IDEMetadataWriter
	cfg    *domain.ProjectConfig

	factory *TaskFactory
	reload  *ReloadResolver
}

// NewBootstrap creates a Bootstrap. ide may be nil when IDE integration is
// absent from the project.
func NewBootstrap(
	ext *domain.Extension,
	scopes *domain.ScopeGraph,
	repo ports.DependencyRepository,
	logger ports.Logger,
	ide ports.IDEMetadataWriter,
	cfg *domain.ProjectConfig,
) *Bootstrap {
	return &Bootstrap{
		ext:    ext,
		scopes: scopes,
		repo:   repo,
		logger: logger,
		ide:    ide,
		cfg:    cfg,
	}
}

// Install runs the one-shot install sequence: scopes and inheritance edges,
// version-change callbacks, user dependency declarations, the static tasks
// and the dynamic rule. Scope creation is idempotent, so Install reuses
// scopes that already exist by name.
func (b *Bootstrap) Install() error {
	for _, name := range []string{
		domain.ScopeBootstrap,
		domain.ScopeCompile,
		domain.ScopeRuntime,
		domain.ScopeTest,
		domain.ScopeResources,
		domain.ScopeSpringloaded,
	} {
		b.scopes.GetOrCreate(name)
	}
	if err := b.scopes.Extend(domain.ScopeRuntime, domain.ScopeCompile); err != nil {
		return err
	}
	if err := b.scopes.Extend(domain.ScopeTest, domain.ScopeRuntime); err != nil {
		return err
	}

	b.ext.OnSetGrailsVersion(b.configureGrailsDependencies)
	if b.ide != nil {
		b.ext.OnSetGrailsVersion(b.contributeIDEMetadata)
	}

	for scopeName, deps := range b.cfg.Dependencies {
		scope := b.scopes.GetOrCreate(scopeName)
		for _, d := range deps {
			scope.Declare(d)
		}
	}

	b.reload = NewReloadResolver(b.scopes, b.ext, b.repo, b.logger)

	b.factory = NewTaskFactory(DynamicTaskPrefix, b.layerConventions)
	b.factory.SetProjectProperties(b.cfg.GrailsArgs, b.cfg.GrailsEnv)

	initCommand := commandCreateApp
	assembleCommand := commandWar
	if b.cfg.PluginProject {
		initCommand = commandCreatePlugin
		assembleCommand = commandPackagePlugin
	}
	b.factory.Declare("init", initCommand)
	b.factory.Declare("clean", commandClean)
	b.factory.Declare("test", commandTestApp)
	b.factory.Declare("assemble", assembleCommand)

	return nil
}

// Tasks returns the task factory. Install must have run first.
func (b *Bootstrap) Tasks() *TaskFactory {
	return b.factory
}

// Reload returns the reload resolver. Install must have run first.
func (b *Bootstrap) Reload() *ReloadResolver {
	return b.reload
}

// configureGrailsDependencies validates the new version and declares the
// framework's own artifacts into the bootstrap, compile and resources scopes.
func (b *Bootstrap) configureGrailsDependencies(v string) error {
	parsed, err := goversion.NewVersion(v)
	if err != nil {
		return domain.Detail(domain.ErrInvalidVersion, "version", v)
	}
	if parsed.LessThan(minGrailsVersion) {
		err := domain.Detail(domain.ErrUnsupportedVersion, "version", v)
		return zerr.With(err, "min_version", minGrailsVersion.String())
	}

	b.scopes.GetOrCreate(domain.ScopeBootstrap).Declare(domain.Dependency{
		Group: "org.grails", Name: "grails-bootstrap", Version: v,
	})
	b.scopes.GetOrCreate(domain.ScopeCompile).Declare(domain.Dependency{
		Group: "org.grails", Name: "grails-dependencies", Version: v,
	})
	b.scopes.GetOrCreate(domain.ScopeResources).Declare(domain.Dependency{
		Group: "org.grails", Name: "grails-resources", Version: v,
	})
	return nil
}

// contributeIDEMetadata writes the four-category scope mapping. Registered
// after configureGrailsDependencies so it observes the populated scopes.
func (b *Bootstrap) contributeIDEMetadata(string) error {
	return b.ide.Write(domain.NewIDEScopeMapping(b.scopes))
}

// layerConventions registers the generic property suppliers on a task.
// Suppliers read the extension and the scope graph at resolve time, so
// configuration that happens after task creation is still observed.
// Task-specific suppliers registered later shadow these.
func (b *Bootstrap) layerConventions(t *domain.CommandTask) {
	c := t.Conventions

	c.MapProperty(PropGrailsVersion, func() (any, error) {
		return b.ext.GrailsVersion(), nil
	})
	c.MapProperty(PropProjectVersion, func() (any, error) {
		return b.cfg.ProjectVersion, nil
	})
	c.MapProperty(PropProjectDir, func() (any, error) {
		return b.ext.ProjectDir(), nil
	})
	c.MapProperty(PropWorkDir, func() (any, error) {
		return b.ext.WorkDir(), nil
	})

	classpaths := map[string]string{
		PropBootstrapClasspath: domain.ScopeBootstrap,
		PropCompileClasspath:   domain.ScopeCompile,
		PropRuntimeClasspath:   domain.ScopeRuntime,
		PropTestClasspath:      domain.ScopeTest,
	}
	for prop, scopeName := range classpaths {
		c.MapProperty(prop, func() (any, error) {
			return b.scopes.GetOrCreate(scopeName).EffectiveDependencies(), nil
		})
	}

	// The supplier exposes declarations only; resolution needs a repository
	// round trip and happens in PrepareInvocation with the caller's context.
	c.MapProperty(PropSpringloadedClasspath, func() (any, error) {
		return b.reload.Declarations(), nil
	})
}

// PrepareInvocation resolves a task's convention properties into the fully
// materialized executor input. The version guard runs first: a task whose
// version is still unset at execution time must fail before any external
// collaborator is consulted.
func (b *Bootstrap) PrepareInvocation(ctx context.Context, t *domain.CommandTask) (*domain.Invocation, error) {
	version, err := domain.ResolveAs[string](t.Conventions, PropGrailsVersion)
	if err != nil {
		return nil, err
	}
	if version == "" {
		return nil, domain.Detail(domain.ErrVersionNotSet, "task", t.Name)
	}

	if t.Command == commandWar || t.Command == commandPackagePlugin {
		projectVersion, err := domain.ResolveAs[string](t.Conventions, PropProjectVersion)
		if err != nil {
			return nil, err
		}
		if projectVersion == "" {
			return nil, domain.Detail(domain.ErrProjectVersionRequired, "task", t.Name)
		}
	}

	classpathProp := PropRuntimeClasspath
	if t.Command == commandTestApp {
		classpathProp = PropTestClasspath
	}

	deps, err := domain.ResolveAs[[]domain.Dependency](t.Conventions, PropBootstrapClasspath)
	if err != nil {
		return nil, err
	}
	scoped, err := domain.ResolveAs[[]domain.Dependency](t.Conventions, classpathProp)
	if err != nil {
		return nil, err
	}
	deps = mergeDependencies(deps, scoped)

	artifacts, err := b.repo.Resolve(ctx, deps)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve task classpath")
	}
	classpath := domain.ArtifactPaths(artifacts)

	reload, err := b.reload.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	classpath = append(classpath, reload.Paths()...)

	projectDir, err := domain.ResolveAs[string](t.Conventions, PropProjectDir)
	if err != nil {
		return nil, err
	}
	workDir, err := domain.ResolveAs[string](t.Conventions, PropWorkDir)
	if err != nil {
		return nil, err
	}

	return &domain.Invocation{
		Command:       t.Command,
		Args:          t.Args,
		Env:           t.Env,
		GrailsVersion: version,
		ProjectDir:    projectDir,
		WorkDir:       workDir,
		Classpath:     classpath,
	}, nil
}

// ResourcesArtifact resolves the resources scope to its single artifact, the
// input for the framework home installer.
func (b *Bootstrap) ResourcesArtifact(ctx context.Context) (domain.Artifact, error) {
	deps := b.scopes.GetOrCreate(domain.ScopeResources).EffectiveDependencies()
	if len(deps) == 0 {
		return domain.Artifact{}, domain.Detail(domain.ErrVersionNotSet, "scope", domain.ScopeResources)
	}
	artifacts, err := b.repo.Resolve(ctx, deps)
	if err != nil {
		return domain.Artifact{}, zerr.Wrap(err, "failed to resolve resources scope")
	}
	return artifacts[0], nil
}

// mergeDependencies unions two declaration lists, deduplicating by coordinate.
func mergeDependencies(a, b []domain.Dependency) []domain.Dependency {
	seen := make(map[string]bool, len(a))
	out := make([]domain.Dependency, 0, len(a)+len(b))
	for _, d := range a {
		seen[d.Coordinate()] = true
		out = append(out, d)
	}
	for _, d := range b {
		if !seen[d.Coordinate()] {
			seen[d.Coordinate()] = true
			out = append(out, d)
		}
	}
	return out
}
