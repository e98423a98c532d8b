package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows os.UserConfigDir:
// - Linux: ~/.config/defaultapp/config.yml
// - macOS: ~/Library/Application Support/defaultapp/config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "defaultapp", "config.yml"), nil
}

// UserConfigDir returns the path to the user-level config directory.
func UserConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "defaultapp"), nil
}

// ProjectConfigPath returns the project-level config file, always
// .defaultapp/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".defaultapp", "config.yml")
}

// LegacyUserConfigPath returns the old JSON user config location,
// ~/.defaultapp/config.json. Read when no YAML config exists.
func LegacyUserConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".defaultapp", "config.json"), nil
}
