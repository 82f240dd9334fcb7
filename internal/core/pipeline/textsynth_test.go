package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

func synthCaps(conv extract.Converter, ocr extract.OCREngine, td *fakeTextDoc) *Capabilities {
	return (&Capabilities{
		Converter:       conv,
		OCR:             ocr,
		NewTextDocument: func() TextDocument { return td },
	}).withDefaults(nil)
}

func TestSynthesizeConverter(t *testing.T) {
	dir := t.TempDir()
	conv := &fakeConverter{}
	td := &fakeTextDoc{}
	doc := &fakeDoc{path: "/in/informe.pdf", texts: []string{longText()}}

	path, ok := NewTextSynthesizer(synthCaps(conv, &fakeOCR{}, td), nil).Synthesize(context.Background(), NewSession(doc, nil), dir)
	if !ok || path != filepath.Join(dir, "informe_edit.docx") {
		t.Fatalf("path=%q ok=%v", path, ok)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
	if len(td.ops) != 0 {
		t.Error("OCR rendition should not run when conversion succeeds")
	}
}

func TestSynthesizeOCRFallback(t *testing.T) {
	dir := t.TempDir()
	conv := &fakeConverter{err: errors.New("pdf2docx crashed")}
	ocr := &fakeOCR{text: map[int]string{0: "uno", 2: "tres"}, failOn: map[int]bool{1: true}}
	td := &fakeTextDoc{}
	doc := &fakeDoc{path: "/in/informe.pdf", texts: []string{longText(), "", ""}}

	path, ok := NewTextSynthesizer(synthCaps(conv, ocr, td), nil).Synthesize(context.Background(), NewSession(doc, nil), dir)
	if !ok || td.saved != path {
		t.Fatalf("path=%q ok=%v saved=%q", path, ok, td.saved)
	}
	if conv.calls != 1 {
		t.Errorf("converter calls = %d", conv.calls)
	}
	want := []docOp{
		{kind: "heading", text: "Extracted text (OCR) - informe", level: 0},
		{kind: "heading", text: "Page 1", level: 1},
		{kind: "paragraph", text: "uno"},
		{kind: "break"},
		{kind: "heading", text: "Page 2", level: 1},
		{kind: "break"},
		{kind: "heading", text: "Page 3", level: 1},
		{kind: "paragraph", text: "tres"},
	}
	if !reflect.DeepEqual(td.ops, want) {
		t.Errorf("ops =\n%+v\nwant\n%+v", td.ops, want)
	}
}

func TestSynthesizeSkipped(t *testing.T) {
	doc := &fakeDoc{texts: []string{""}}
	conv := &fakeConverter{}
	if _, ok := NewTextSynthesizer(synthCaps(conv, nil, &fakeTextDoc{}), nil).Synthesize(context.Background(), NewSession(doc, nil), t.TempDir()); ok {
		t.Error("scanned document without OCR should skip text synthesis")
	}
	if conv.calls != 0 {
		t.Error("converter must only run for digital documents")
	}

	td := &fakeTextDoc{saveErr: errors.New("read-only")}
	if _, ok := NewTextSynthesizer(synthCaps(nil, &fakeOCR{}, td), nil).Synthesize(context.Background(), NewSession(doc, nil), t.TempDir()); ok {
		t.Error("save failure should report ok=false")
	}
}

func TestImageExtractor(t *testing.T) {
	dir := t.TempDir()
	doc := &fakeDoc{
		texts: []string{"", "", ""},
		images: map[int][]extract.EmbeddedImage{
			0: {{Index: 0, Data: []byte("jpg"), Ext: "jpg"}, {Index: 1, Data: []byte("png"), Ext: ""}},
			2: {{Index: 0, Data: []byte("tif"), Ext: ".TIF"}},
		},
		imageErr: map[int]error{1: errors.New("broken xobject")},
	}
	n := NewImageExtractor(nil).Extract(context.Background(), doc, dir)
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
	for _, name := range []string{"P1_0.jpg", "P1_1.png", "P3_0.tif"} {
		if _, err := os.Stat(filepath.Join(dir, "images", name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestImageExtractorKeepsSourceIndex(t *testing.T) {
	dir := t.TempDir()
	// the image at index 1 failed to decode upstream
	doc := &fakeDoc{
		texts: []string{""},
		images: map[int][]extract.EmbeddedImage{
			0: {{Index: 0, Data: []byte("a"), Ext: "png"}, {Index: 2, Data: []byte("c"), Ext: "png"}},
		},
	}
	if n := NewImageExtractor(nil).Extract(context.Background(), doc, dir); n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	got, err := os.ReadFile(filepath.Join(dir, "images", "P1_2.png"))
	if err != nil || string(got) != "c" {
		t.Errorf("P1_2.png = %q, %v", got, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "images", "P1_1.png")); !os.IsNotExist(err) {
		t.Error("P1_1.png should not exist")
	}
}
