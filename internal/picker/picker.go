// Package picker wraps the native application chooser. Cancellation is a
// first-class non-error outcome: callers must distinguish ErrCancelled from
// every other failure, because a cancelled pick must never surface as an
// error to the user.
package picker

import (
	"context"
	"errors"
)

// ErrCancelled is the cancellation sentinel: the user dismissed the chooser
// without picking anything.
var ErrCancelled = errors.New("picker: selection cancelled")

// DefaultApplicationsDir is the conventional root the chooser opens in.
const DefaultApplicationsDir = "/Applications"

// Constraints restricts what the chooser may return.
type Constraints struct {
	// RootDirectory is where the chooser starts browsing.
	RootDirectory string
	// AllowMultiple permits multi-selection. Always false here.
	AllowMultiple bool
	// AllowDirectories permits picking plain directories. Always false;
	// application bundles are directories on disk but are presented as
	// single entries.
	AllowDirectories bool
	// AllowedKinds limits selection to the named file kinds.
	AllowedKinds []string
}

// ApplicationBundle returns the constraint set every workflow in this
// program uses: a single application bundle rooted at root, or
// DefaultApplicationsDir when root is empty.
func ApplicationBundle(root string) Constraints {
	if root == "" {
		root = DefaultApplicationsDir
	}
	return Constraints{
		RootDirectory:    root,
		AllowMultiple:    false,
		AllowDirectories: false,
		AllowedKinds:     []string{"app"},
	}
}

// Picker presents a chooser and returns the selected filesystem path, or
// ErrCancelled when the user backs out, or any other error on failure.
type Picker interface {
	Choose(ctx context.Context, constraints Constraints) (string, error)
}

// Static is a Picker that always returns the same path without presenting
// any UI. Used when the path arrives on the command line.
type Static string

func (s Static) Choose(ctx context.Context, constraints Constraints) (string, error) {
	return string(s), nil
}

// Cancelled is a Picker that always reports cancellation.
type Cancelled struct{}

func (Cancelled) Choose(ctx context.Context, constraints Constraints) (string, error) {
	return "", ErrCancelled
}
