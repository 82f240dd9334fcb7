package ingest

import (
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/docextract/constants"
)

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// OutputDirFor is the per-document output directory under root: <root>/<base>.
func OutputDirFor(root, path string) string {
	return filepath.Join(root, constants.BaseName(path))
}
