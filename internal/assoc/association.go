// Package assoc defines the file-association value type and the ordering
// policy used to present association lists in a stable, user-friendly order.
package assoc

import "strings"

// Association binds a file extension to the application that opens it by
// default. Values are immutable; lists are replaced wholesale, never
// mutated in place.
type Association struct {
	Extension       string `json:"extension"`
	ApplicationName string `json:"applicationName"`
	ApplicationPath string `json:"applicationPath"`
}

// NormalizeExtension canonicalizes user-entered extension text: surrounding
// whitespace is trimmed, leading dots are stripped, and the result is
// lowercased. An empty return value means the input was not an extension.
func NormalizeExtension(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimLeft(trimmed, ".")
	return strings.ToLower(trimmed)
}

// DefaultExtensions is the set of extensions tracked before the user adds
// any of their own. Kept in sync with the rank table where the formats
// overlap.
var DefaultExtensions = []string{
	// Documents
	"doc", "docx", "xls", "xlsx", "ppt", "pptx", "pdf", "txt", "md", "markdown",
	// Images
	"png", "jpg", "jpeg", "gif",
	// Media
	"mp3", "mp4", "mov", "avi",
	// Archives
	"zip", "rar", "7z", "tar", "gz",
	// Web
	"html", "htm", "css", "js", "ts", "jsx", "tsx",
	// Data / config
	"csv", "json", "xml", "yaml", "yml", "toml",
	// Code
	"py", "java", "cpp", "c", "h", "hpp",
	// Scripts
	"sh", "bash", "zsh", "fish",
	// DB / logs / misc
	"sql", "db", "sqlite", "log", "ini", "cfg", "conf",
	// Dev files
	"dockerfile", "gitignore", "env", "key", "pem", "crt",
}
