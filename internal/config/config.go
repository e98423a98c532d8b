// Package config provides layered configuration for defaultapp using koanf.
// Values are loaded with priority: environment variables > project config
// (.defaultapp/config.yml) > user config (~/.config/defaultapp/config.yml)
// > defaults. A legacy JSON user config is still read when no YAML file
// exists.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds every tunable of the defaultapp CLI.
type Configuration struct {
	// ApplicationsDir is where the application chooser starts browsing.
	// Can be set via DEFAULTAPP_APPLICATIONS_DIR.
	ApplicationsDir string `koanf:"applications_dir"`

	// ExtensionsFile overrides the tracked-extension registry location.
	// Empty means the conventional per-user path.
	ExtensionsFile string `koanf:"extensions_file"`

	// NoColor disables colored output regardless of terminal support.
	NoColor bool `koanf:"no_color"`

	// Scripted forces the platform-neutral gateway. Useful off-macOS and
	// for development; the real gateway is selected automatically on macOS.
	Scripted bool `koanf:"scripted"`

	// WatchDebounceMS coalesces bursts of file events in watch mode.
	WatchDebounceMS int `koanf:"watch_debounce_ms"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path
	// (default: .defaultapp/config.yml).
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("DEFAULTAPP_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.ApplicationsDir = expandHomePath(cfg.ApplicationsDir)
	cfg.ExtensionsFile = expandHomePath(cfg.ExtensionsFile)
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = Defaults()["watch_debounce_ms"].(int)
	}
	return &cfg, nil
}

func loadUserConfig(k *koanf.Koanf) error {
	yamlPath, err := UserConfigPath()
	if err == nil && fileExists(yamlPath) {
		if err := ValidateYAMLSyntax(yamlPath); err != nil {
			return err
		}
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading user config %s: %w", yamlPath, err)
		}
		return nil
	}

	legacyPath, err := LegacyUserConfigPath()
	if err == nil && fileExists(legacyPath) {
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy user config %s: %w", legacyPath, err)
		}
	}
	return nil
}

func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	path := ProjectConfigPath()
	if customPath != "" {
		path = customPath
	}
	if !fileExists(path) {
		return nil
	}
	if err := ValidateYAMLSyntax(path); err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading project config %s: %w", path, err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: DEFAULTAPP_APPLICATIONS_DIR -> applications_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "DEFAULTAPP_"))
}

// expandHomePath expands a leading ~ to the user's home directory.
func expandHomePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			if path == "~" {
				return home
			}
			return home + path[1:]
		}
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
