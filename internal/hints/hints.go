// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

// installHints maps external tool names to remediation advice.
var installHints = map[string]string{
	"unzip":   "install it via your package manager (apt install unzip, brew install unzip)",
	"img2pdf": "install it via pip (pip install img2pdf) or your package manager",
}

// ForMissingTool returns a hint for a missing external tool.
// Unknown tools (e.g. custom binaries from config) get a generic hint.
func ForMissingTool(tool string) string {
	if hint, ok := installHints[tool]; ok {
		return format(hint)
	}
	return format("make sure " + tool + " is installed and on PATH")
}

// ForConfigNotFound returns a hint for config file not found errors.
func ForConfigNotFound() string {
	return format("use --config /path/to/file.yaml or create ~/.config/cbz2pdf/<name>.yaml")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
