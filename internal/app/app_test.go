package app_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grails/internal/adapters/telemetry"
	"go.trai.ch/grails/internal/app"
	"go.trai.ch/grails/internal/core/domain"
	"go.trai.ch/grails/internal/core/ports"
	"go.trai.ch/grails/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

// fixture bundles the mocked collaborators behind an assembled App.
type fixture struct {
	loader    *mocks.MockConfigLoader
	repo      *mocks.MockDependencyRepository
	executor  *mocks.MockGrailsExecutor
	installer *mocks.MockHomeInstaller
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		repo:      mocks.NewMockDependencyRepository(ctrl),
		executor:  mocks.NewMockGrailsExecutor(ctrl),
		installer: mocks.NewMockHomeInstaller(ctrl),
	}
	f.app = app.New(
		f.loader,
		func([]string) ports.DependencyRepository { return f.repo },
		func(string) ports.IDEMetadataWriter { return nil },
		f.executor,
		f.installer,
		telemetry.NewNoOpRecorder(),
		nopLogger{},
	)
	return f
}

// fabricate resolves every dependency to a synthetic cache path.
func fabricate(_ context.Context, deps []domain.Dependency) ([]domain.Artifact, error) {
	artifacts := make([]domain.Artifact, len(deps))
	for i, d := range deps {
		artifacts[i] = domain.Artifact{Dependency: d, Path: "/cache/" + d.Name + ".jar"}
	}
	return artifacts, nil
}

func TestApp_Run_RejectsEmptyTaskList(t *testing.T) {
	f := newFixture(t)

	err := f.app.Run(context.Background(), nil)
	assert.True(t, errors.Is(err, domain.ErrNoTasksSpecified))
}

func TestApp_Run_ExecutesConfiguredTask(t *testing.T) {
	t.Chdir(t.TempDir())
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{
		GrailsVersion: "2.4",
		Repositories:  []string{"https://repo.grails.org/grails/core"},
	}, nil)

	// Task classpath plus the resources scope.
	f.repo.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(fabricate).Times(2)
	// The reload agent is optional: leave it unresolved so execution
	// proceeds without it.
	f.repo.EXPECT().ResolveLenient(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, deps []domain.Dependency) (*domain.LenientResult, error) {
			return &domain.LenientResult{Unresolved: deps}, nil
		})

	f.installer.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, resources domain.Artifact, _ string) (string, bool, error) {
			assert.Equal(t, "grails-resources", resources.Name)
			return "/work/home", false, nil
		})

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv *domain.Invocation) error {
			assert.Equal(t, "clean", inv.Command)
			assert.Equal(t, "2.4", inv.GrailsVersion)
			assert.Equal(t, "/work/home", inv.GrailsHome)
			assert.Contains(t, inv.Classpath, "/cache/grails-bootstrap.jar")
			return nil
		})

	require.NoError(t, f.app.Run(context.Background(), []string{"clean"}))
}

func TestApp_Run_UnknownTask(t *testing.T) {
	t.Chdir(t.TempDir())
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{GrailsVersion: "2.4"}, nil)

	err := f.app.Run(context.Background(), []string{"deploy"})
	assert.True(t, errors.Is(err, domain.ErrUnknownTask))
}

func TestApp_Run_VersionUnsetBlocksExecution(t *testing.T) {
	t.Chdir(t.TempDir())
	f := newFixture(t)

	// No grails version configured; the guard must fire before the
	// repository, installer or executor are ever consulted.
	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{}, nil)

	err := f.app.Run(context.Background(), []string{"clean"})
	assert.True(t, errors.Is(err, domain.ErrVersionNotSet))
}

// spyTelemetry records which vertices were marked cached versus completed.
type spyTelemetry struct {
	vertices []*spyVertex
}

type spyVertex struct {
	name      string
	cached    bool
	completed bool
}

func (s *spyTelemetry) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &spyVertex{name: name}
	s.vertices = append(s.vertices, v)
	return ctx, v
}

func (s *spyTelemetry) Close() error { return nil }

func (v *spyVertex) Stdout() io.Writer  { return io.Discard }
func (v *spyVertex) Stderr() io.Writer  { return io.Discard }
func (v *spyVertex) Complete(err error) { v.completed = true }
func (v *spyVertex) Cached()            { v.cached = true }

func (s *spyTelemetry) find(t *testing.T, prefix string) *spyVertex {
	t.Helper()
	for _, v := range s.vertices {
		if strings.HasPrefix(v.name, prefix) {
			return v
		}
	}
	t.Fatalf("no vertex with prefix %q recorded, got %+v", prefix, s.vertices)
	return nil
}

func TestApp_Run_MarksCachedHomeInstall(t *testing.T) {
	t.Chdir(t.TempDir())
	ctrl := gomock.NewController(t)

	spy := &spyTelemetry{}
	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		repo:      mocks.NewMockDependencyRepository(ctrl),
		executor:  mocks.NewMockGrailsExecutor(ctrl),
		installer: mocks.NewMockHomeInstaller(ctrl),
	}
	f.app = app.New(
		f.loader,
		func([]string) ports.DependencyRepository { return f.repo },
		func(string) ports.IDEMetadataWriter { return nil },
		f.executor,
		f.installer,
		spy,
		nopLogger{},
	)

	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{GrailsVersion: "2.4"}, nil)
	f.repo.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(fabricate).Times(2)
	f.repo.EXPECT().ResolveLenient(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, deps []domain.Dependency) (*domain.LenientResult, error) {
			return &domain.LenientResult{Unresolved: deps}, nil
		})
	f.installer.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).Return("/work/home", true, nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.app.Run(context.Background(), []string{"clean"}))

	install := spy.find(t, "install ")
	assert.True(t, install.cached, "fingerprint hit must mark the install vertex cached")
	assert.False(t, install.completed)

	task := spy.find(t, "clean")
	assert.True(t, task.completed, "the task itself still runs")
	assert.False(t, task.cached)
}

func TestApp_Run_ExecutorFailureSurfaces(t *testing.T) {
	t.Chdir(t.TempDir())
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{GrailsVersion: "2.4"}, nil)
	f.repo.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(fabricate).Times(2)
	f.repo.EXPECT().ResolveLenient(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, deps []domain.Dependency) (*domain.LenientResult, error) {
			return &domain.LenientResult{Unresolved: deps}, nil
		})
	f.installer.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).Return("/work/home", false, nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(domain.ErrTaskExecutionFailed)

	err := f.app.Run(context.Background(), []string{"test"})
	assert.True(t, errors.Is(err, domain.ErrTaskExecutionFailed))
}
