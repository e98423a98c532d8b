package launchsvc

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Binkle/DefaultApplication/internal/assoc"
	"github.com/Binkle/DefaultApplication/internal/gateway"
)

// SetDefaultApplication binds extension to the application at
// applicationPath: the handler entries in the LaunchServices plist are
// upserted (filename tag always, content type when known), the plist is
// written back, and duti is asked to push the binding into the live
// registry. The preference daemon is restarted best-effort so the change
// takes without a logout.
func (g *Gateway) SetDefaultApplication(ctx context.Context, extension, applicationPath string) error {
	fail := func(err error) error {
		return &gateway.CommandError{Op: gateway.OpSetDefaultApplication, Err: err}
	}

	normalized := assoc.NormalizeExtension(extension)
	if normalized == "" {
		return fail(fmt.Errorf("extension must not be empty"))
	}

	appPath, err := g.resolveAppBundlePath(applicationPath)
	if err != nil {
		return fail(err)
	}
	bundleID, err := bundleIDFromPath(appPath)
	if err != nil {
		return fail(err)
	}

	if _, err := g.store.Register(normalized); err != nil {
		return fail(err)
	}

	root, err := g.loadLaunchServices()
	if err != nil {
		return fail(err)
	}
	upsertExtensionHandler(root, normalized, bundleID)
	uti, hasUTI := contentTypeFor(normalized)
	if hasUTI {
		upsertContentTypeHandler(root, uti, bundleID)
	}
	if err := g.saveLaunchServices(root); err != nil {
		return fail(err)
	}

	target := uti
	if !hasUTI {
		target = normalized
	}
	if err := g.runner.Run(ctx, "duti", "-s", bundleID, target, "all"); err != nil && !hasUTI {
		// Without a known UTI the plist entry alone may not take effect,
		// so a duti failure is fatal for unknown extensions only.
		return fail(fmt.Errorf("duti -s %s %s: %w", bundleID, target, err))
	}

	// Preference daemons cache the plist; restart them so the change is
	// visible immediately. Best effort.
	_ = g.runner.Run(ctx, "killall", "cfprefsd")

	return nil
}

// resolveAppBundlePath canonicalizes the chooser's selection: file:// URLs
// and ~ are expanded, symlinks resolved, and a selection inside the bundle
// (e.g. the executable) walks up to the enclosing .app directory.
func (g *Gateway) resolveAppBundlePath(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("application path must not be empty")
	}

	var initial string
	switch {
	case strings.HasPrefix(trimmed, "file://"):
		if u, err := url.Parse(trimmed); err == nil && u.Path != "" {
			initial = u.Path
		} else {
			initial = strings.TrimPrefix(trimmed, "file://")
		}
	case trimmed == "~":
		initial = g.home
	case strings.HasPrefix(trimmed, "~/"):
		initial = filepath.Join(g.home, trimmed[2:])
	default:
		initial = trimmed
	}

	expanded := initial
	if resolved, err := filepath.EvalSymlinks(initial); err == nil {
		expanded = resolved
	}
	if _, err := os.Stat(expanded); err != nil {
		return "", fmt.Errorf("application path does not exist: %s", trimmed)
	}

	for p := expanded; ; {
		if strings.EqualFold(filepath.Ext(p), ".app") {
			return p, nil
		}
		parent := filepath.Dir(p)
		if parent == p {
			break
		}
		p = parent
	}
	return "", fmt.Errorf("not an application bundle: %s", raw)
}
