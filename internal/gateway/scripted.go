package gateway

import (
	"context"
	"sort"
	"sync"

	"github.com/Binkle/DefaultApplication/internal/assoc"
)

// Scripted is a platform-neutral gateway for hosts without a LaunchServices
// registry. Permission is always granted, listings are synthesized from the
// tracked extension set, and mutations of OS state are refused.
type Scripted struct {
	mu         sync.Mutex
	extensions []string
}

var _ Gateway = (*Scripted)(nil)

// NewScripted returns a scripted gateway tracking the default extension set.
func NewScripted() *Scripted {
	exts := make([]string, len(assoc.DefaultExtensions))
	copy(exts, assoc.DefaultExtensions)
	return &Scripted{extensions: exts}
}

func (s *Scripted) QueryPermission(ctx context.Context) (bool, error) {
	return true, nil
}

func (s *Scripted) OpenPermissionSettings(ctx context.Context) error {
	return &CommandError{
		Op:      OpOpenPermissionSettings,
		Payload: "opening system settings is only supported on macOS",
	}
}

func (s *Scripted) ListAssociations(ctx context.Context) ([]assoc.Association, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(), nil
}

func (s *Scripted) SetDefaultApplication(ctx context.Context, extension, applicationPath string) error {
	return &CommandError{
		Op:      OpSetDefaultApplication,
		Payload: "changing default applications is only supported on macOS",
	}
}

func (s *Scripted) AddExtension(ctx context.Context, extension string) ([]assoc.Association, error) {
	normalized := assoc.NormalizeExtension(extension)
	if normalized == "" {
		return nil, &CommandError{Op: OpAddExtension, Payload: "extension must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	known := false
	for _, ext := range s.extensions {
		if ext == normalized {
			known = true
			break
		}
	}
	if !known {
		s.extensions = append(s.extensions, normalized)
		sort.Strings(s.extensions)
	}
	return s.listLocked(), nil
}

func (s *Scripted) listLocked() []assoc.Association {
	list := make([]assoc.Association, 0, len(s.extensions))
	for _, ext := range s.extensions {
		list = append(list, assoc.Association{
			Extension:       ext,
			ApplicationName: "Unsupported platform",
		})
	}
	return list
}
