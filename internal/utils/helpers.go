package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and parents) if missing.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %q: %w", dir, err)
	}
	return nil
}

// WithTempFile writes data to a temp file with the given suffix, calls fn with
// its path and removes the file afterwards.
func WithTempFile(pattern string, data []byte, fn func(path string) error) error {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return err
	}
	path := f.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return fn(path)
}

// PageName is the 1-based page prefix used in labels and file names.
func PageName(page int) string {
	return fmt.Sprintf("P%d", page+1)
}

// OutputPath joins dir with base+suffix.
func OutputPath(dir, base, suffix string) string {
	return filepath.Join(dir, base+suffix)
}
