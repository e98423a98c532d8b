package picker

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// userCanceledCode is the AppleScript error number osascript reports when
// the user dismisses a dialog.
const userCanceledCode = "-128"

// commandRunner executes a chooser binary and returns its stdout and stderr.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	return out.Bytes(), errOut.Bytes(), err
}

// OSAScript presents the native macOS chooser through osascript. The
// chooser itself enforces the single/non-directory/bundle constraints; this
// type translates the exit contract into the Picker one.
type OSAScript struct {
	runner commandRunner
}

// NewOSAScript returns the native chooser.
func NewOSAScript() *OSAScript {
	return &OSAScript{runner: execRunner{}}
}

func (p *OSAScript) Choose(ctx context.Context, constraints Constraints) (string, error) {
	script := chooseScript(constraints)
	stdout, stderr, err := p.runner.Run(ctx, "osascript", "-e", script)
	if err != nil {
		if isUserCanceled(stderr) {
			return "", ErrCancelled
		}
		detail := strings.TrimSpace(string(stderr))
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("application chooser failed: %s", detail)
	}

	path := strings.TrimSpace(string(stdout))
	if path == "" {
		return "", ErrCancelled
	}
	// "choose file" aliases render with a trailing slash for bundles.
	path = strings.TrimRight(path, "/")
	return path, nil
}

func chooseScript(constraints Constraints) string {
	root := constraints.RootDirectory
	if root == "" {
		root = DefaultApplicationsDir
	}
	var sb strings.Builder
	sb.WriteString(`POSIX path of (choose file of type {"com.apple.application-bundle"}`)
	fmt.Fprintf(&sb, ` default location POSIX file %q`, root)
	sb.WriteString(` with prompt "Choose an application"`)
	if !constraints.AllowMultiple {
		sb.WriteString(` without multiple selections allowed`)
	}
	sb.WriteString(`)`)
	return sb.String()
}

func isUserCanceled(stderr []byte) bool {
	text := string(stderr)
	return strings.Contains(text, userCanceledCode) ||
		strings.Contains(text, "User canceled")
}
