package launchsvc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"howett.net/plist"
)

const (
	handlersKey = "LSHandlers"

	keyContentTag      = "LSHandlerContentTag"
	keyContentTagClass = "LSHandlerContentTagClass"
	keyContentType     = "LSHandlerContentType"
	keyRoleAll         = "LSHandlerRoleAll"
	keyRoleViewer      = "LSHandlerRoleViewer"

	tagClassExtension = "public.filename-extension"
)

// loadLaunchServices reads the secure LaunchServices plist. A missing file
// yields an empty registry; the LSHandlers array is always present in the
// returned value.
func (g *Gateway) loadLaunchServices() (map[string]any, error) {
	root := map[string]any{}
	data, err := os.ReadFile(g.launchServicesPlistPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if _, err := plist.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing LaunchServices plist: %w", err)
	}

	if _, ok := root[handlersKey].([]any); !ok {
		root[handlersKey] = []any{}
	}
	return root, nil
}

// saveLaunchServices writes the registry back as XML, creating the
// preferences directory if missing.
func (g *Gateway) saveLaunchServices(root map[string]any) error {
	path := g.launchServicesPlistPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := plist.MarshalIndent(root, plist.XMLFormat, "\t")
	if err != nil {
		return fmt.Errorf("encoding LaunchServices plist: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func handlersOf(root map[string]any) []any {
	handlers, _ := root[handlersKey].([]any)
	return handlers
}

func dictString(dict map[string]any, key string) string {
	s, _ := dict[key].(string)
	return s
}

// findBundleIDForExtension returns the handler bundle id bound to the
// extension, matching either the filename tag or the extension's content
// type. The all-roles handler wins over a viewer-only handler.
func findBundleIDForExtension(handlers []any, extension string) string {
	normalized := strings.ToLower(extension)
	uti, hasUTI := contentTypeFor(normalized)

	for _, item := range handlers {
		dict, ok := item.(map[string]any)
		if !ok {
			continue
		}

		matchesTag := strings.ToLower(dictString(dict, keyContentTag)) == normalized &&
			dictString(dict, keyContentTagClass) == tagClassExtension
		matchesType := hasUTI && dictString(dict, keyContentType) == uti
		if !matchesTag && !matchesType {
			continue
		}

		if id := dictString(dict, keyRoleAll); id != "" {
			return id
		}
		if id := dictString(dict, keyRoleViewer); id != "" {
			return id
		}
	}
	return ""
}

// upsertExtensionHandler points the filename-tag handler for extension at
// bundleID, appending a new entry when none exists.
func upsertExtensionHandler(root map[string]any, extension, bundleID string) {
	handlers := handlersOf(root)
	for _, item := range handlers {
		dict, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if strings.ToLower(dictString(dict, keyContentTag)) == extension &&
			dictString(dict, keyContentTagClass) == tagClassExtension {
			dict[keyRoleAll] = bundleID
			return
		}
	}
	root[handlersKey] = append(handlers, map[string]any{
		keyContentTag:      extension,
		keyContentTagClass: tagClassExtension,
		keyRoleAll:         bundleID,
	})
}

// upsertContentTypeHandler points the content-type handler for uti at
// bundleID, appending a new entry when none exists.
func upsertContentTypeHandler(root map[string]any, uti, bundleID string) {
	handlers := handlersOf(root)
	for _, item := range handlers {
		dict, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if dictString(dict, keyContentType) == uti {
			dict[keyRoleAll] = bundleID
			return
		}
	}
	root[handlersKey] = append(handlers, map[string]any{
		keyContentType: uti,
		keyRoleAll:     bundleID,
	})
}
