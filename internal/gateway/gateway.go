// Package gateway defines the command contract through which the core
// queries and mutates OS-level permission and association state. Everything
// behind this boundary may be slow, may fail, and may be denied; the core
// treats it as a black box.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Binkle/DefaultApplication/internal/assoc"
)

// Op names one of the gateway commands. Used by CommandError so failures
// stay attributable after they cross the boundary.
type Op string

const (
	OpQueryPermission        Op = "queryPermission"
	OpOpenPermissionSettings Op = "openPermissionSettings"
	OpListAssociations       Op = "listAssociations"
	OpSetDefaultApplication  Op = "setDefaultApplication"
	OpAddExtension           Op = "addExtension"
)

// Gateway is the command boundary to the OS. Each operation is independently
// failable; none of them retry.
type Gateway interface {
	// QueryPermission reports whether the process holds the disk-access
	// permission the association registry requires.
	QueryPermission(ctx context.Context) (bool, error)

	// OpenPermissionSettings opens the OS settings pane where the user can
	// grant that permission. Fire and forget.
	OpenPermissionSettings(ctx context.Context) error

	// ListAssociations returns the current associations for every tracked
	// extension, in gateway order.
	ListAssociations(ctx context.Context) ([]assoc.Association, error)

	// SetDefaultApplication binds extension to the application at
	// applicationPath.
	SetDefaultApplication(ctx context.Context, extension, applicationPath string) error

	// AddExtension registers a new tracked extension and returns the full
	// updated association list.
	AddExtension(ctx context.Context, extension string) ([]assoc.Association, error)
}

// CommandError is a gateway failure with its implementation-defined payload
// attached. Payload may be a plain string, a structured value, or nil when
// the failure is only an underlying error.
type CommandError struct {
	Op      Op
	Payload any
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, FailureText(e))
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// FailureText converts any gateway failure into human-readable text.
// String payloads pass through unchanged, structured payloads serialize to
// a stable JSON form, and plain errors contribute their message.
func FailureText(err error) string {
	if err == nil {
		return ""
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		switch payload := cmdErr.Payload.(type) {
		case nil:
		case string:
			return payload
		case error:
			return payload.Error()
		default:
			if text, jerr := json.Marshal(payload); jerr == nil {
				return string(text)
			}
			return fmt.Sprintf("%v", payload)
		}
		if cmdErr.Err != nil {
			return cmdErr.Err.Error()
		}
		return string(cmdErr.Op) + " failed"
	}
	return err.Error()
}
