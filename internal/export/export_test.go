package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

func cells(vals ...string) []extract.Cell {
	out := make([]extract.Cell, len(vals))
	for i, v := range vals {
		out[i] = extract.Cell{Text: v, Present: v != ""}
	}
	return out
}

func TestWorkbookSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc_tables.xlsx")
	wb := NewWorkbook(nil)
	if err := wb.AddSheet("P1_Nativa", []string{"Name", "Age"}, [][]extract.Cell{cells("Ana", "30"), cells("Luis", "")}); err != nil {
		t.Fatal(err)
	}
	if err := wb.AddSheet("P2_OCR", nil, [][]extract.Cell{cells("a", "b")}); err != nil {
		t.Fatal(err)
	}
	if err := wb.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	if got := f.GetSheetList(); len(got) != 2 || got[0] != "P1_Nativa" || got[1] != "P2_OCR" {
		t.Fatalf("sheets = %v", got)
	}
	rows, err := f.GetRows("P1_Nativa")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || rows[0][0] != "Name" || rows[1][1] != "30" {
		t.Errorf("rows = %v", rows)
	}
	if len(rows[2]) != 1 {
		t.Errorf("absent cell should stay blank, got %v", rows[2])
	}
	ocr, _ := f.GetRows("P2_OCR")
	if len(ocr) != 1 || ocr[0][0] != "a" {
		t.Errorf("headerless sheet rows = %v", ocr)
	}
}

func TestWorkbookRejectsBadNames(t *testing.T) {
	wb := NewWorkbook(nil)
	if err := wb.AddSheet(strings.Repeat("x", 32), nil, nil); err == nil {
		t.Error("expected error for 32-char name")
	}
	if err := wb.AddSheet("", nil, nil); err == nil {
		t.Error("expected error for empty name")
	}
	if err := wb.SaveAs(filepath.Join(t.TempDir(), "empty.xlsx")); err == nil {
		t.Error("expected error saving a workbook with no sheets")
	}
}

func TestTextDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc_edit.docx")
	d := NewTextDocument(nil)
	d.AddHeading("Extracted text (OCR) - doc", 0)
	d.AddHeading("Page 1", 1)
	d.AddParagraph("hola mundo")
	d.AddPageBreak()
	d.AddHeading("Page 2", 1)
	if err := d.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	paras, err := ReadParagraphs(path)
	if err != nil {
		t.Fatal(err)
	}
	var texts []string
	for _, p := range paras {
		if s := strings.TrimSpace(p); s != "" {
			texts = append(texts, s)
		}
	}
	want := []string{"Extracted text (OCR) - doc", "Page 1", "hola mundo", "Page 2"}
	if strings.Join(texts, "|") != strings.Join(want, "|") {
		t.Errorf("paragraphs = %q, want %q", texts, want)
	}
	if len(paras) != 5 {
		t.Errorf("got %d paragraphs, want 5 including the page break", len(paras))
	}
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc_edit.docx")
	boom := errors.New("disk full")
	err := writeFile(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "PK partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial file left behind: %v", err)
	}

	if err := writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "ok")
		return err
	}); err != nil {
		t.Fatal(err)
	}
	if b, err := os.ReadFile(path); err != nil || string(b) != "ok" {
		t.Errorf("content = %q, %v", b, err)
	}
}
