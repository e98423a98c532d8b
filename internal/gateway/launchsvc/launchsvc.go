// Package launchsvc implements the command gateway against the macOS
// LaunchServices registry. Plist handling is done in-process; everything
// else shells out to system binaries (open, mdfind, mdls, duti, killall).
// The command runner and home directory are injectable so the package is
// unit-testable on any host.
package launchsvc

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Binkle/DefaultApplication/internal/gateway"
	"github.com/Binkle/DefaultApplication/internal/registry"
)

const (
	settingsURL = "x-apple.systempreferences:com.apple.preference.security?Privacy_AllFiles"

	launchServicesPlistRel = "Library/Preferences/com.apple.LaunchServices/com.apple.launchservices.secure.plist"
)

// Runner executes an external command.
type Runner interface {
	// Output runs the command and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Run runs the command for its side effect only.
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Gateway is the LaunchServices-backed command gateway.
type Gateway struct {
	home   string
	runner Runner
	store  *registry.Store
}

var _ gateway.Gateway = (*Gateway)(nil)

// Option configures a Gateway.
type Option func(*Gateway)

// WithRunner substitutes the external command runner.
func WithRunner(r Runner) Option {
	return func(g *Gateway) { g.runner = r }
}

// WithHomeDir overrides the user home directory the gateway probes under.
func WithHomeDir(dir string) Option {
	return func(g *Gateway) { g.home = dir }
}

// New returns a gateway persisting tracked extensions through store.
func New(store *registry.Store, opts ...Option) (*Gateway, error) {
	g := &Gateway{runner: execRunner{}, store: store}
	for _, opt := range opts {
		opt(g)
	}
	if g.home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		g.home = home
	}
	return g, nil
}

// PlistPath returns the LaunchServices preferences plist under home.
func PlistPath(home string) string {
	return filepath.Join(home, filepath.FromSlash(launchServicesPlistRel))
}

func (g *Gateway) launchServicesPlistPath() string {
	return PlistPath(g.home)
}

// probePaths are files protected by Full Disk Access. If any of them can
// be opened, the permission is granted.
func (g *Gateway) probePaths() []string {
	return []string{
		"/Library/Application Support/com.apple.TCC/TCC.db",
		g.launchServicesPlistPath(),
		filepath.Join(g.home, "Library/Safari/History.db"),
		filepath.Join(g.home, "Library/Messages/chat.db"),
	}
}

// QueryPermission probes known protected files. Opening any of them means
// access is granted; permission denials or an empty probe set mean it is
// not. Unexpected I/O errors fail the query itself.
func (g *Gateway) QueryPermission(ctx context.Context) (bool, error) {
	for _, path := range g.probePaths() {
		f, err := os.Open(path)
		switch {
		case err == nil:
			f.Close()
			return true, nil
		case os.IsPermission(err):
			continue
		case os.IsNotExist(err):
			continue
		default:
			return false, &gateway.CommandError{Op: gateway.OpQueryPermission, Err: err}
		}
	}
	return false, nil
}

// OpenPermissionSettings deep-links into the Privacy & Security pane for
// Full Disk Access.
func (g *Gateway) OpenPermissionSettings(ctx context.Context) error {
	if err := g.runner.Run(ctx, "open", settingsURL); err != nil {
		return &gateway.CommandError{Op: gateway.OpOpenPermissionSettings, Err: err}
	}
	return nil
}
