// Package ide writes IDE integration metadata for the project.
package ide

import (
	"os"
	"path/filepath"

	"go.trai.ch/grails/internal/core/domain"
	"go.trai.ch/grails/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.IDEMetadataWriter = (*Writer)(nil)

// DefaultFilename is the metadata file written into the project directory.
const DefaultFilename = "idea-scopes.yaml"

const filePerm = 0o600

// scopesFile is the serialized form of the four-category mapping. Coordinates
// are written as group:name:version strings so the file stays diffable.
type scopesFile struct {
	Provided []string `yaml:"provided,omitempty"`
	Compile  []string `yaml:"compile,omitempty"`
	Runtime  []string `yaml:"runtime,omitempty"`
	Test     []string `yaml:"test,omitempty"`
}

// Writer persists the scope mapping as a YAML file in the project directory.
type Writer struct {
	projectDir string
	filename   string
}

// NewWriter creates a Writer targeting projectDir.
func NewWriter(projectDir string) *Writer {
	return &Writer{projectDir: projectDir, filename: DefaultFilename}
}

// Write persists the four-category scope mapping.
func (w *Writer) Write(mapping domain.IDEScopeMapping) error {
	out := scopesFile{
		Provided: coordinates(mapping.Provided),
		Compile:  coordinates(mapping.Compile),
		Runtime:  coordinates(mapping.Runtime),
		Test:     coordinates(mapping.Test),
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal IDE scope mapping")
	}

	path := filepath.Join(w.projectDir, w.filename)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write IDE metadata"), "path", path)
	}
	return nil
}

func coordinates(deps []domain.Dependency) []string {
	if len(deps) == 0 {
		return nil
	}
	out := make([]string, 0, len(deps))
	for _, d := range deps {
		out = append(out, d.Coordinate())
	}
	return out
}
