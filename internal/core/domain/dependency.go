package domain

import "strings"

// Dependency is a single dependency declaration as the user wrote it,
// before any resolution against a repository.
type Dependency struct {
	Group   string
	Name    string
	Version string
}

// ParseDependency parses a "group:name:version" coordinate string.
func ParseDependency(coordinate string) (Dependency, error) {
	parts := strings.Split(coordinate, ":")
	if len(parts) != 3 {
		return Dependency{}, Detail(ErrInvalidDependency, "coordinate", coordinate)
	}
	for _, p := range parts {
		if p == "" {
			return Dependency{}, Detail(ErrInvalidDependency, "coordinate", coordinate)
		}
	}
	return Dependency{Group: parts[0], Name: parts[1], Version: parts[2]}, nil
}

// Coordinate returns the canonical "group:name:version" form.
func (d Dependency) Coordinate() string {
	return d.Group + ":" + d.Name + ":" + d.Version
}

// Artifact is a dependency that has been resolved to a file on disk.
type Artifact struct {
	Dependency
	Path string
}

// LenientResult reports the per-dependency outcome of a lenient resolution:
// failures are carried as data instead of aborting the resolution.
type LenientResult struct {
	Resolved   []Artifact
	Unresolved []Dependency
}

// FullyResolved reports whether every declared dependency was resolved.
func (r *LenientResult) FullyResolved() bool {
	return len(r.Unresolved) == 0
}

// ArtifactPaths returns the on-disk paths of a resolved artifact list.
func ArtifactPaths(artifacts []Artifact) []string {
	paths := make([]string, len(artifacts))
	for i, a := range artifacts {
		paths[i] = a.Path
	}
	return paths
}
