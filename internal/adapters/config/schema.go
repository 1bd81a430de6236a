package config

// Grailsfile represents the structure of the grails.yaml project descriptor.
type Grailsfile struct {
	GrailsVersion  string              `yaml:"grailsVersion"`
	ProjectVersion string              `yaml:"projectVersion"`
	PluginProject  bool                `yaml:"pluginProject"`
	GrailsEnv      string              `yaml:"grailsEnv"`
	GrailsArgs     string              `yaml:"grailsArgs"`
	Idea           bool                `yaml:"idea"`
	Repositories   []string            `yaml:"repositories"`
	Dependencies   map[string][]string `yaml:"dependencies"`
}
