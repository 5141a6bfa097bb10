package application

import (
	"path/filepath"
	"strings"

	"github.com/lcollet/schemapick/internal/domain"
)

const bundledSchemaFile = "service-schema.json"

// Fallback resolves the static schema location used whenever auto-detection
// is unavailable or fails.
type Fallback struct {
	// Custom is the configured custom schema file or URL, empty by default.
	Custom string
	// InstallRoot is the installation directory holding the bundled schema.
	InstallRoot string
}

// Resolve interprets the configured custom value: an http(s) value is a URL,
// a filesystem-absolute value is used verbatim, anything else is relative to
// the workspace root (or the installation root without a workspace). An
// empty value yields the bundled default.
func (f Fallback) Resolve(workspaceRoot string) domain.SchemaLocation {
	custom := strings.TrimSpace(f.Custom)
	if custom == "" {
		return domain.SchemaLocation{URI: filepath.Join(f.InstallRoot, bundledSchemaFile)}
	}

	if strings.HasPrefix(custom, "http://") || strings.HasPrefix(custom, "https://") {
		return domain.SchemaLocation{URI: custom}
	}

	if filepath.IsAbs(custom) {
		return domain.SchemaLocation{URI: custom}
	}

	base := workspaceRoot
	if base == "" {
		base = f.InstallRoot
	}

	return domain.SchemaLocation{URI: filepath.Join(base, custom)}
}
