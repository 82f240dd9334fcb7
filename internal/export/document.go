package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	docx "github.com/fumiama/go-docx"
)

// heading run sizes in half-points, by level
var headingSizes = map[int]string{0: "44", 1: "32"}

// TextDocument builds a plain editable document of headings and paragraphs.
type TextDocument struct {
	d      *docx.Docx
	logger *slog.Logger
}

func NewTextDocument(logger *slog.Logger) *TextDocument {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextDocument{d: docx.New().WithDefaultTheme(), logger: logger}
}

// AddHeading adds a bold heading. Level 0 is the document title.
func (t *TextDocument) AddHeading(text string, level int) {
	style := "Title"
	if level > 0 {
		style = fmt.Sprintf("Heading%d", level)
	}
	size, ok := headingSizes[level]
	if !ok {
		size = "28"
	}
	t.d.AddParagraph().Style(style).AddText(text).Bold().Size(size)
}

func (t *TextDocument) AddParagraph(text string) {
	t.d.AddParagraph().AddText(text)
}

func (t *TextDocument) AddPageBreak() {
	t.d.AddParagraph().AddPageBreaks()
}

// SaveAs writes the document to path.
func (t *TextDocument) SaveAs(path string) error {
	start := time.Now()
	err := writeFile(path, func(w io.Writer) error {
		_, err := t.d.WriteTo(w)
		return err
	})
	if err != nil {
		return fmt.Errorf("docx write: %w", err)
	}
	t.logger.Info("export.docx.ok", "path", path, "elapsed_ms", time.Since(start).Milliseconds())
	return nil
}

// writeFile creates path and fills it with write. A failed write leaves no file behind.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return write(f)
}

// ReadParagraphs returns the text of every paragraph in a .docx file, in order.
func ReadParagraphs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	d, err := docx.Parse(f, st.Size())
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}
	var out []string
	for _, it := range d.Document.Body.Items {
		if p, ok := it.(*docx.Paragraph); ok {
			out = append(out, p.String())
		}
	}
	return out, nil
}
