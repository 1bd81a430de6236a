package domain

// ReloadClasspath is the outcome of resolving the optional reload-agent
// scope. It is an explicit tagged result: either the resolved agent
// classpath, or disabled when resolution could not satisfy the scope.
type ReloadClasspath struct {
	artifacts []Artifact
	enabled   bool
}

// ResolvedReload marks the reload feature usable with the given artifacts.
func ResolvedReload(artifacts []Artifact) ReloadClasspath {
	return ReloadClasspath{artifacts: artifacts, enabled: true}
}

// DisabledReload marks the reload feature absent for this invocation.
func DisabledReload() ReloadClasspath {
	return ReloadClasspath{}
}

// Enabled reports whether the reload agent is usable.
func (r ReloadClasspath) Enabled() bool {
	return r.enabled
}

// Artifacts returns the resolved agent artifacts; empty when disabled.
func (r ReloadClasspath) Artifacts() []Artifact {
	return r.artifacts
}

// Paths returns the on-disk paths of the agent artifacts; empty when disabled.
func (r ReloadClasspath) Paths() []string {
	if !r.enabled {
		return nil
	}
	return ArtifactPaths(r.artifacts)
}
