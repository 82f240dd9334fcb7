package pipeline

import (
	"log/slog"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/export"
)

// Workbook receives one sheet per extracted table.
type Workbook interface {
	AddSheet(name string, header []string, rows [][]extract.Cell) error
	SaveAs(path string) error
}

// TextDocument receives the OCR text rendition of a document.
type TextDocument interface {
	AddHeading(text string, level int)
	AddParagraph(text string)
	AddPageBreak()
	SaveAs(path string) error
}

// Capabilities are the engine handles shared by every session. They are built once
// per process; a nil engine is unavailable and its strategy is skipped.
type Capabilities struct {
	Opener    extract.Opener
	OCR       extract.OCREngine
	Tables    extract.TableDetector
	Converter extract.Converter

	NewWorkbook     func() Workbook
	NewTextDocument func() TextDocument

	Lang string // OCR language, e.g. "spa"
}

// withDefaults fills the writers with the export package implementations.
func (c *Capabilities) withDefaults(logger *slog.Logger) *Capabilities {
	out := *c
	if out.NewWorkbook == nil {
		out.NewWorkbook = func() Workbook { return export.NewWorkbook(logger) }
	}
	if out.NewTextDocument == nil {
		out.NewTextDocument = func() TextDocument { return export.NewTextDocument(logger) }
	}
	if out.Lang == "" {
		out.Lang = "spa"
	}
	return &out
}
