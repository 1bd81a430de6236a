package plugin_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grails/internal/core/domain"
	"go.trai.ch/grails/internal/core/ports/mocks"
	"go.trai.ch/grails/internal/engine/plugin"
	"go.uber.org/mock/gomock"
)

type staticLayout struct{ dir string }

func (l staticLayout) ProjectDir() string { return l.dir }
func (l staticLayout) BuildDir() string   { return l.dir + "/build" }

func TestReloadResolver_DeclaresDefaultAndDisablesOnUnresolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scopes := domain.NewScopeGraph()
	ext := domain.NewExtension(staticLayout{dir: "/proj"})
	repo := mocks.NewMockDependencyRepository(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	defaultDep := domain.Dependency{
		Group:   "org.springframework",
		Name:    "springloaded",
		Version: domain.DefaultSpringloadedVersion,
	}

	repo.EXPECT().
		ResolveLenient(gomock.Any(), []domain.Dependency{defaultDep}).
		Return(&domain.LenientResult{Unresolved: []domain.Dependency{defaultDep}}, nil)

	var warned []string
	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		warned = append(warned, msg)
	}).Times(1)

	r := plugin.NewReloadResolver(scopes, ext, repo, logger)
	outcome, err := r.Resolve(context.Background())
	require.NoError(t, err)

	assert.False(t, outcome.Enabled(), "unresolved agent must disable the feature")
	assert.Empty(t, outcome.Paths())
	require.Len(t, warned, 1)
	assert.True(t, strings.Contains(warned[0], defaultDep.Coordinate()),
		"warning must name the unresolved coordinate, got %q", warned[0])
}

func TestReloadResolver_ResolvedScopeIsUsable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scopes := domain.NewScopeGraph()
	ext := domain.NewExtension(staticLayout{dir: "/proj"})
	repo := mocks.NewMockDependencyRepository(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	declared := domain.Dependency{Group: "org.springframework", Name: "springloaded", Version: "1.2.4.RELEASE"}
	scopes.GetOrCreate(domain.ScopeSpringloaded).Declare(declared)

	artifact := domain.Artifact{Dependency: declared, Path: "/cache/springloaded-1.2.4.RELEASE.jar"}
	repo.EXPECT().
		ResolveLenient(gomock.Any(), []domain.Dependency{declared}).
		Return(&domain.LenientResult{Resolved: []domain.Artifact{artifact}}, nil)

	r := plugin.NewReloadResolver(scopes, ext, repo, logger)
	outcome, err := r.Resolve(context.Background())
	require.NoError(t, err)

	assert.True(t, outcome.Enabled())
	assert.Equal(t, []string{"/cache/springloaded-1.2.4.RELEASE.jar"}, outcome.Paths())
}

func TestReloadResolver_ReRunsPerRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scopes := domain.NewScopeGraph()
	ext := domain.NewExtension(staticLayout{dir: "/proj"})
	repo := mocks.NewMockDependencyRepository(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	repo.EXPECT().
		ResolveLenient(gomock.Any(), gomock.Any()).
		Return(&domain.LenientResult{}, nil).
		Times(2)

	r := plugin.NewReloadResolver(scopes, ext, repo, logger)
	if _, err := r.Resolve(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Resolve(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The injected default is declared only once.
	assert.Len(t, scopes.GetOrCreate(domain.ScopeSpringloaded).Declared(), 1)
}
