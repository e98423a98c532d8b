package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ValidateYAMLSyntax parses the file as YAML and reports syntax errors
// before koanf gets to it, so users see the yaml error position instead of
// a generic load failure.
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s is not valid YAML: %w", path, err)
	}
	return nil
}

// WriteStarterConfig writes the commented starter config to path, creating
// parent directories. It refuses to overwrite an existing file.
func WriteStarterConfig(path string) error {
	if fileExists(path) {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(StarterTemplate), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
