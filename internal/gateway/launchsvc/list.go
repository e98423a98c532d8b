package launchsvc

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Binkle/DefaultApplication/internal/assoc"
	"github.com/Binkle/DefaultApplication/internal/gateway"
)

// resolveConcurrency bounds the parallel Spotlight lookups during listing.
const resolveConcurrency = 4

// ListAssociations joins the tracked-extension registry with the
// LaunchServices handlers and resolves each binding to an application name
// and path. Resolution degrades per extension instead of failing the list:
// an unresolvable handler keeps a humanized bundle id, an unset extension
// reports that no default is assigned.
func (g *Gateway) ListAssociations(ctx context.Context) ([]assoc.Association, error) {
	root, err := g.loadLaunchServices()
	if err != nil {
		return nil, &gateway.CommandError{Op: gateway.OpListAssociations, Err: err}
	}
	handlers := handlersOf(root)

	extensions, err := g.store.Load()
	if err != nil {
		return nil, &gateway.CommandError{Op: gateway.OpListAssociations, Err: err}
	}

	results := make([]assoc.Association, len(extensions))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(resolveConcurrency)
	for i, ext := range extensions {
		i, ext := i, ext
		eg.Go(func() error {
			results[i] = g.resolveAssociation(ctx, handlers, ext)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, &gateway.CommandError{Op: gateway.OpListAssociations, Err: err}
	}
	return results, nil
}

func (g *Gateway) resolveAssociation(ctx context.Context, handlers []any, extension string) assoc.Association {
	if bundleID := findBundleIDForExtension(handlers, extension); bundleID != "" {
		path, err := g.bundlePathFromID(ctx, bundleID)
		if err != nil {
			return assoc.Association{
				Extension:       extension,
				ApplicationName: humanizeBundleID(bundleID) + " (path not found)",
			}
		}
		return assoc.Association{
			Extension:       extension,
			ApplicationName: g.applicationNameFromPath(ctx, path),
			ApplicationPath: path,
		}
	}

	// Not in the plist; ask LaunchServices for the system default binding.
	if name, path, ok := g.systemDefault(ctx, extension); ok {
		return assoc.Association{
			Extension:       extension,
			ApplicationName: name,
			ApplicationPath: path,
		}
	}

	return assoc.Association{
		Extension:       extension,
		ApplicationName: "No default application",
	}
}

// systemDefault asks duti for the extension's current handler. Its -x mode
// prints the application name, path, and bundle id on separate lines.
func (g *Gateway) systemDefault(ctx context.Context, extension string) (name, path string, ok bool) {
	out, err := g.runner.Output(ctx, "duti", "-x", extension)
	if err != nil {
		return "", "", false
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) < 2 {
		return "", "", false
	}
	name = strings.TrimSpace(lines[0])
	path = strings.TrimSpace(lines[1])
	if name == "" {
		return "", "", false
	}
	return name, path, true
}
