package constants

import "strings"

// AllowedExtensions holds the recognized-text drop extensions the watch-mode
// ingestor accepts. Upstream OCR writes one .txt per screenshot.
var AllowedExtensions = map[string]struct{}{
	"txt": {},
	"ocr": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
