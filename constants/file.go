package constants

import (
	"path/filepath"
	"strings"
)

// AllowedExtensions holds the input extensions accepted for extraction.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

const (
	TablesSuffix   = "_tables.xlsx"
	DocumentSuffix = "_edit.docx"
	ImagesDir      = "images"

	// MaxSheetNameLen is the spreadsheet engine's sheet-name ceiling.
	MaxSheetNameLen = 31
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowed reports whether path has an accepted input extension.
func IsAllowed(path string) bool {
	_, ok := AllowedExtensions[NormalizeExt(filepath.Ext(path))]
	return ok
}

// BaseName returns the file name of path without its extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
