package launchsvc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"howett.net/plist"
)

const (
	keyBundleID    = "CFBundleIdentifier"
	keyBundleName  = "CFBundleName"
	keyDisplayName = "CFBundleDisplayName"
)

// appRoots are the conventional application folders, in preference order.
func (g *Gateway) appRoots() []string {
	return []string{
		"/Applications",
		"/System/Applications",
		"/System/Applications/Utilities",
		filepath.Join(g.home, "Applications"),
	}
}

func readInfoPlist(appPath string) (map[string]any, error) {
	data, err := os.ReadFile(filepath.Join(appPath, "Contents", "Info.plist"))
	if err != nil {
		return nil, err
	}
	info := map[string]any{}
	if _, err := plist.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parsing Info.plist of %s: %w", appPath, err)
	}
	return info, nil
}

// bundleIDFromPath reads the bundle identifier of the application at
// appPath.
func bundleIDFromPath(appPath string) (string, error) {
	info, err := readInfoPlist(appPath)
	if err != nil {
		return "", err
	}
	id := dictString(info, keyBundleID)
	if id == "" {
		return "", fmt.Errorf("%s: Info.plist has no %s", appPath, keyBundleID)
	}
	return id, nil
}

// bundlePathFromID locates the application bundle for a bundle identifier.
// Spotlight is asked first (it avoids automation prompts); candidates are
// verified against their Info.plist and conventional app folders are
// preferred. A filesystem scan of those folders is the fallback.
func (g *Gateway) bundlePathFromID(ctx context.Context, bundleID string) (string, error) {
	query := fmt.Sprintf("kMDItemCFBundleIdentifier == '%s'", bundleID)
	if out, err := g.runner.Output(ctx, "mdfind", query); err == nil {
		var candidates []string
		for _, line := range strings.Split(string(out), "\n") {
			line = strings.TrimSpace(line)
			if strings.HasSuffix(line, ".app") {
				candidates = append(candidates, line)
			}
		}

		for _, candidate := range candidates {
			if info, err := readInfoPlist(candidate); err == nil {
				if strings.EqualFold(dictString(info, keyBundleID), bundleID) {
					return candidate, nil
				}
			}
		}
		for _, candidate := range candidates {
			for _, root := range g.appRoots() {
				if strings.HasPrefix(candidate, root+string(filepath.Separator)) {
					return candidate, nil
				}
			}
		}
		if len(candidates) > 0 {
			return candidates[0], nil
		}
	}

	if found := g.findAppInCommonLocations(bundleID); found != "" {
		return found, nil
	}
	return "", fmt.Errorf("no application found for bundle id %s", bundleID)
}

// findAppInCommonLocations scans the conventional app folders two levels
// deep, matching by bundle identifier first and by name hint second.
func (g *Gateway) findAppInCommonLocations(bundleID string) string {
	lowered := strings.ToLower(bundleID)
	hint := lowered
	if i := strings.LastIndex(lowered, "."); i >= 0 {
		hint = lowered[i+1:]
	}

	for _, root := range g.appRoots() {
		var apps []string
		collectApps(root, 2, &apps)

		for _, path := range apps {
			info, err := readInfoPlist(path)
			if err != nil {
				continue
			}
			id := strings.ToLower(dictString(info, keyBundleID))
			if id == "" {
				continue
			}
			if id == lowered || strings.HasSuffix(id, lowered) || strings.HasSuffix(lowered, id) {
				return path
			}
		}

		for _, path := range apps {
			stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), ".app"))
			if strings.Contains(stem, hint) {
				return path
			}
			if info, err := readInfoPlist(path); err == nil {
				if strings.Contains(strings.ToLower(dictString(info, keyBundleName)), hint) {
					return path
				}
			}
		}
	}
	return ""
}

func collectApps(root string, depth int, acc *[]string) {
	if depth == 0 {
		return
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return
	}
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if strings.EqualFold(filepath.Ext(entry.Name()), ".app") {
			*acc = append(*acc, path)
		} else if entry.IsDir() {
			collectApps(path, depth-1, acc)
		}
	}
}

// applicationNameFromPath resolves a display name for the application:
// Info.plist display name, then bundle name, then Spotlight metadata, and
// finally the bundle folder stem.
func (g *Gateway) applicationNameFromPath(ctx context.Context, appPath string) string {
	if info, err := readInfoPlist(appPath); err == nil {
		if name := dictString(info, keyDisplayName); name != "" {
			return name
		}
		if name := dictString(info, keyBundleName); name != "" {
			return name
		}
	}
	if name := g.mdlsDisplayName(ctx, appPath); name != "" {
		return name
	}
	return strings.TrimSuffix(filepath.Base(appPath), ".app")
}

func (g *Gateway) mdlsDisplayName(ctx context.Context, appPath string) string {
	out, err := g.runner.Output(ctx, "mdls", "-name", "kMDItemDisplayName", "-raw", appPath)
	if err != nil {
		return ""
	}
	text := strings.TrimSpace(string(out))
	if text == "" || text == "(null)" {
		return ""
	}
	return text
}

// humanizeBundleID turns "com.vendor.SomeApp2" into "Some App 2": the last
// id component with spaces inserted at case and digit boundaries.
func humanizeBundleID(bundleID string) string {
	core := bundleID
	if i := strings.LastIndex(bundleID, "."); i >= 0 {
		core = bundleID[i+1:]
	}
	core = strings.NewReplacer("_", " ", "-", " ").Replace(core)

	var sb strings.Builder
	var prev rune
	for i, ch := range core {
		if i > 0 {
			boundary := (isLower(prev) && isUpper(ch)) ||
				(isLetter(prev) && isDigit(ch)) ||
				(isDigit(prev) && isLetter(ch))
			if boundary && !strings.HasSuffix(sb.String(), " ") {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune(ch)
		prev = ch
	}
	return sb.String()
}

func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isLower(r) || isUpper(r) }
