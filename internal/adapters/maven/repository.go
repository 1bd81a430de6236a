// Package maven implements the dependency repository against maven2-layout
// repositories with a local artifact cache.
package maven

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/grails/internal/core/domain"
	"go.trai.ch/grails/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600

	// fetchConcurrency bounds parallel downloads; the core stays
	// single-threaded, parallelism is internal to this collaborator.
	fetchConcurrency = 4
)

// Repository implements ports.DependencyRepository.
type Repository struct {
	repos    []string
	cacheDir string
	client   *http.Client
	logger   ports.Logger
}

// New creates a Repository resolving against the given base URLs, in order,
// with artifacts cached under cacheDir.
func New(logger ports.Logger, repos []string, cacheDir string) *Repository {
	return &Repository{
		repos:    repos,
		cacheDir: filepath.Clean(cacheDir),
		client:   &http.Client{},
		logger:   logger,
	}
}

// Resolve resolves every declaration; a single unresolvable declaration fails
// the whole resolution.
func (r *Repository) Resolve(ctx context.Context, deps []domain.Dependency) ([]domain.Artifact, error) {
	result, err := r.resolve(ctx, deps)
	if err != nil {
		return nil, err
	}
	if !result.FullyResolved() {
		err := zerr.With(zerr.New("unresolved dependency"), "coordinate", result.Unresolved[0].Coordinate())
		return nil, zerr.With(err, "unresolved_count", len(result.Unresolved))
	}
	return result.Resolved, nil
}

// ResolveLenient resolves the declarations reporting unresolvable ones as
// data. The error return is reserved for faults of the repository itself.
func (r *Repository) ResolveLenient(ctx context.Context, deps []domain.Dependency) (*domain.LenientResult, error) {
	return r.resolve(ctx, deps)
}

func (r *Repository) resolve(ctx context.Context, deps []domain.Dependency) (*domain.LenientResult, error) {
	paths := make([]string, len(deps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, dep := range deps {
		g.Go(func() error {
			path, err := r.fetch(ctx, dep)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &domain.LenientResult{}
	for i, dep := range deps {
		if paths[i] == "" {
			result.Unresolved = append(result.Unresolved, dep)
			continue
		}
		result.Resolved = append(result.Resolved, domain.Artifact{Dependency: dep, Path: paths[i]})
	}
	return result, nil
}

// fetch locates the dependency in the local cache or downloads it from the
// first repository that has it. It returns "" when no repository has the
// artifact; errors are reserved for cache faults.
func (r *Repository) fetch(ctx context.Context, dep domain.Dependency) (string, error) {
	cached := filepath.Join(r.cacheDir, filepath.FromSlash(artifactPath(dep)))
	if _, err := os.Stat(cached); err == nil {
		return cached, nil
	}

	for _, base := range r.repos {
		ok, err := r.download(ctx, strings.TrimSuffix(base, "/")+"/"+artifactPath(dep), cached)
		if err != nil {
			return "", err
		}
		if ok {
			return cached, nil
		}
	}

	r.logger.Info("artifact not found in any repository: " + dep.Coordinate())
	return "", nil
}

// download fetches url into dest, reporting false when the artifact is
// absent upstream and an error only for local cache faults.
func (r *Repository) download(ctx context.Context, url, dest string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, zerr.Wrap(err, "failed to build artifact request")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		// Network errors count as "not found here": lenient resolution must
		// degrade, not fail, when a repository is unreachable.
		return false, nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		return false, zerr.Wrap(err, "failed to create artifact cache directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return false, zerr.Wrap(err, "failed to create artifact temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return false, zerr.With(zerr.Wrap(err, "failed to write artifact"), "url", url)
	}
	if err := tmp.Close(); err != nil {
		return false, zerr.Wrap(err, "failed to close artifact temp file")
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return false, zerr.Wrap(err, "failed to set artifact permissions")
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return false, zerr.Wrap(err, "failed to move artifact into cache")
	}
	return true, nil
}

// artifactPath returns the maven2 repository path of the dependency's jar.
func artifactPath(d domain.Dependency) string {
	group := strings.ReplaceAll(d.Group, ".", "/")
	return group + "/" + d.Name + "/" + d.Version + "/" + d.Name + "-" + d.Version + ".jar"
}
