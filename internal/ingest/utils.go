package ingest

import (
	"path/filepath"
	"strings"

	"github.com/danuarta/schedules-tracker/constants"
)

func defaultExts() map[string]struct{} {
	return constants.AllowedExtensions
}

// AllowedPath reports whether the file's extension is in the allowed set.
func AllowedPath(path string, exts map[string]struct{}) bool {
	ext := constants.NormalizeExt(filepath.Ext(path))
	_, ok := exts[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
