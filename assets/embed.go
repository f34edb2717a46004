package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed graphics
var graphicsFS embed.FS

// DefaultRoot is the graphics directory inside the embedded filesystem.
const DefaultRoot = "graphics"

// LoadDefault loads the embedded graphics.
func LoadDefault() (*Library, error) {
	return Load(graphicsFS, DefaultRoot)
}

// DefaultFS exposes the embedded graphics, mainly for tests and tooling.
func DefaultFS() fs.FS {
	return graphicsFS
}

// cleanAssetPath normalises a user supplied asset path to a library key:
// slash separated, relative to the graphics root, without extension.
func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/graphics/"); idx >= 0 {
		s = s[idx+len("/graphics/"):]
	}
	s = strings.TrimPrefix(s, "graphics/")
	s = strings.TrimPrefix(s, "./")
	s = strings.TrimSuffix(s, "/")
	if ext := filepath.Ext(s); strings.EqualFold(ext, ".png") {
		s = strings.TrimSuffix(s, ext)
	}
	return s
}
