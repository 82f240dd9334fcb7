package convert

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

type writeRunner struct {
	body []byte
	err  error
	args []string
}

func (w *writeRunner) Run(_ context.Context, _ string, _ *slog.Logger, args ...string) ([]byte, []byte, error) {
	w.args = args
	if w.err != nil {
		return nil, []byte("conversion failed"), w.err
	}
	if len(args) >= 3 && w.body != nil {
		if err := os.WriteFile(args[2], w.body, 0o644); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func TestConvertArgs(t *testing.T) {
	got := convertArgs("in.pdf", "out.docx", extract.PageRange{})
	if want := []string{"convert", "in.pdf", "out.docx"}; !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
	got = convertArgs("in.pdf", "out.docx", extract.PageRange{Start: 1, End: 3})
	if want := []string{"convert", "in.pdf", "out.docx", "--start=1", "--end=3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestConvert(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "doc_edit.docx")

	ok := &writeRunner{body: []byte("PK")}
	if err := NewPdf2docxWithRunner(Config{}, ok, nil).Convert(context.Background(), "doc.pdf", dst, extract.PageRange{}); err != nil {
		t.Fatal(err)
	}

	fail := &writeRunner{err: errors.New("exit status 1")}
	if err := NewPdf2docxWithRunner(Config{}, fail, nil).Convert(context.Background(), "doc.pdf", dst+"2", extract.PageRange{}); err == nil {
		t.Error("expected runner error")
	}

	silent := &writeRunner{}
	if err := NewPdf2docxWithRunner(Config{}, silent, nil).Convert(context.Background(), "doc.pdf", dst+"3", extract.PageRange{}); err == nil {
		t.Error("expected error when no output is written")
	}
}
