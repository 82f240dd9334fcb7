package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"much longer text", 4, "much...(truncated)"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestWithTempFile(t *testing.T) {
	var seen string
	err := WithTempFile("page-*.png", []byte("png"), func(path string) error {
		seen = path
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if string(b) != "png" {
			t.Errorf("content = %q", b)
		}
		if !strings.HasSuffix(path, ".png") {
			t.Errorf("suffix lost: %s", path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(seen); !os.IsNotExist(err) {
		t.Fatalf("temp file not removed: %v", err)
	}
}

func TestNaming(t *testing.T) {
	if got := PageName(0); got != "P1" {
		t.Errorf("PageName(0) = %q", got)
	}
	if got := OutputPath("out", "report", "_tables.xlsx"); got != filepath.Join("out", "report_tables.xlsx") {
		t.Errorf("OutputPath = %q", got)
	}
}
