package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a project spec from a YAML file and applies defaults.
func Load(path string) (*ProjectSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var ps ProjectSpec
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}
	ps.ApplyDefaults()

	return &ps, nil
}

// LoadProject loads a project spec from a project directory.
// It looks for project.yaml in the given directory.
func LoadProject(projectDir string) (*ProjectSpec, error) {
	specPath := filepath.Join(projectDir, "project.yaml")
	return Load(specPath)
}
