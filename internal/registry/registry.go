// Package registry persists the set of file extensions the manager tracks.
// The on-disk format is a plain JSON string array so users can edit it by
// hand; the built-in defaults are always unioned in on load.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Binkle/DefaultApplication/internal/assoc"
)

const fileName = "extensions.json"

// Store reads and writes the tracked-extension file.
type Store struct {
	path string
}

// DefaultPath returns the conventional location of the extensions file,
// e.g. ~/Library/Application Support/defaultapp/extensions.json on macOS.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "defaultapp", fileName), nil
}

// NewStore returns a store over the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load returns the union of the built-in default extensions and the stored
// set, normalized, deduplicated, and sorted. A missing file is not an
// error; it simply contributes nothing.
func (s *Store) Load() ([]string, error) {
	set := make(map[string]struct{}, len(assoc.DefaultExtensions))
	for _, ext := range assoc.DefaultExtensions {
		set[assoc.NormalizeExtension(ext)] = struct{}{}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", s.path, err)
		}
	} else {
		var stored []string
		if err := json.Unmarshal(data, &stored); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", s.path, err)
		}
		for _, item := range stored {
			normalized := assoc.NormalizeExtension(item)
			if normalized != "" {
				set[normalized] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(set))
	for ext := range set {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out, nil
}

// Save writes the extension list, creating parent directories as needed.
func (s *Store) Save(extensions []string) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	payload, err := json.MarshalIndent(extensions, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding extension list: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Register adds a normalized extension to the stored set. It reports
// whether the set changed; registering a known extension skips the write.
func (s *Store) Register(extension string) (bool, error) {
	normalized := assoc.NormalizeExtension(extension)
	if normalized == "" {
		return false, fmt.Errorf("extension must not be empty")
	}

	current, err := s.Load()
	if err != nil {
		return false, err
	}
	for _, ext := range current {
		if ext == normalized {
			return false, nil
		}
	}

	updated := append(current, normalized)
	sort.Strings(updated)
	if err := s.Save(updated); err != nil {
		return false, err
	}
	return true, nil
}
