package domain

// ProjectConfig is the parsed project descriptor that drives the plugin
// bootstrap. It is input only: the live, mutable state lives in Extension
// and ScopeGraph once the bootstrap has run.
type ProjectConfig struct {
	// GrailsVersion is the target framework version; empty means unset.
	GrailsVersion string
	// ProjectVersion names the project's own version, required for packaging.
	ProjectVersion string
	// PluginProject marks the project as a reusable grails plugin rather
	// than a deployable application. It is an explicit input, never inferred.
	PluginProject bool

	// GrailsEnv and GrailsArgs are the two optional project-level properties
	// forwarded verbatim into tasks synthesized by the dynamic rule.
	GrailsEnv  string
	GrailsArgs string

	// Repositories lists the dependency repository base URLs, in lookup order.
	Repositories []string

	// Dependencies maps scope name to user-declared dependencies.
	Dependencies map[string][]Dependency

	// IDEIntegration enables the IDE metadata contribution.
	IDEIntegration bool
}
