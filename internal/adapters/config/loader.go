// Package config provides the project descriptor loader.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/grails/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the descriptor file looked up in the working directory.
const DefaultFilename = "grails.yaml"

// defaultRepository is used when the descriptor declares no repositories.
const defaultRepository = "https://repo.grails.org/grails/core"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader reading the default descriptor filename.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Load reads the descriptor from the given working directory.
func (l *Loader) Load(cwd string) (*domain.ProjectConfig, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a descriptor file from the given path.
func Load(path string) (*domain.ProjectConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project descriptor")
	}

	var file Grailsfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse project descriptor")
	}

	cfg := &domain.ProjectConfig{
		GrailsVersion:  file.GrailsVersion,
		ProjectVersion: file.ProjectVersion,
		PluginProject:  file.PluginProject,
		GrailsEnv:      file.GrailsEnv,
		GrailsArgs:     file.GrailsArgs,
		Repositories:   file.Repositories,
		IDEIntegration: file.Idea,
	}
	if len(cfg.Repositories) == 0 {
		cfg.Repositories = []string{defaultRepository}
	}

	if len(file.Dependencies) > 0 {
		cfg.Dependencies = make(map[string][]domain.Dependency, len(file.Dependencies))
		for scope, coordinates := range file.Dependencies {
			deps := make([]domain.Dependency, 0, len(coordinates))
			for _, coordinate := range coordinates {
				dep, err := domain.ParseDependency(coordinate)
				if err != nil {
					return nil, zerr.With(err, "scope", scope)
				}
				deps = append(deps, dep)
			}
			cfg.Dependencies[scope] = deps
		}
	}

	return cfg, nil
}
