package plugin

import (
	"context"

	"go.trai.ch/grails/internal/core/domain"
	"go.trai.ch/grails/internal/core/ports"
)

// ReloadResolver resolves the optional springloaded scope as best effort.
// An unresolvable agent degrades the reload feature instead of failing the
// build. Resolution re-runs on every call: declarations may change between
// reads and the outcome is never memoized across invocations.
type ReloadResolver struct {
	scopes *domain.ScopeGraph
	ext    *domain.Extension
	repo   ports.DependencyRepository
	logger ports.Logger
}

// NewReloadResolver creates a resolver operating on the springloaded scope.
func NewReloadResolver(scopes *domain.ScopeGraph, ext *domain.Extension, repo ports.DependencyRepository, logger ports.Logger) *ReloadResolver {
	return &ReloadResolver{
		scopes: scopes,
		ext:    ext,
		repo:   repo,
		logger: logger,
	}
}

// Declarations returns the effective declarations of the springloaded scope.
// When the scope is empty the default agent coordinate is declared first, so
// the returned slice is never empty. No repository access happens here.
func (r *ReloadResolver) Declarations() []domain.Dependency {
	scope := r.scopes.GetOrCreate(domain.ScopeSpringloaded)

	if len(scope.Declared()) == 0 {
		scope.Declare(domain.Dependency{
			Group:   "org.springframework",
			Name:    "springloaded",
			Version: r.ext.SpringloadedVersion(),
		})
	}

	return scope.EffectiveDependencies()
}

// Resolve computes the reload classpath outcome from the scope declarations.
// Any unresolved module disables the feature with a warning naming the first
// declared dependency; the error return is reserved for repository faults.
func (r *ReloadResolver) Resolve(ctx context.Context) (domain.ReloadClasspath, error) {
	declarations := r.Declarations()

	result, err := r.repo.ResolveLenient(ctx, declarations)
	if err != nil {
		return domain.DisabledReload(), err
	}

	if !result.FullyResolved() {
		first := declarations[0]
		r.logger.Warn("failed to resolve " + first.Coordinate() + ", reload agent disabled")
		return domain.DisabledReload(), nil
	}

	return domain.ResolvedReload(result.Resolved), nil
}
