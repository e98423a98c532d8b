package config

// Defaults returns the built-in configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"applications_dir":  "/Applications",
		"extensions_file":   "", // conventional per-user path
		"no_color":          false,
		"scripted":          false,
		"watch_debounce_ms": 400,
	}
}

// StarterTemplate is a fully commented config written by 'defaultapp
// config init' so users can see every available option.
const StarterTemplate = `# defaultapp configuration
# Priority: DEFAULTAPP_* env vars > .defaultapp/config.yml > this file > defaults

applications_dir: /Applications   # Where the application chooser starts browsing
extensions_file: ""               # Tracked-extension registry override (empty = per-user default)
no_color: false                   # Disable colored output
scripted: false                   # Force the platform-neutral gateway (no OS changes)
watch_debounce_ms: 400            # Coalescing window for watch mode, in milliseconds
`
