package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

type gridKey struct {
	page int
	mode extract.TableMode
}

type fakeDoc struct {
	path     string
	texts    []string
	textErr  map[int]error
	grids    map[gridKey][]extract.Grid
	gridErr  map[gridKey]error
	rasterOK bool
	rastErr  map[int]error
	images   map[int][]extract.EmbeddedImage
	imageErr map[int]error

	mu         sync.Mutex
	textCalls  int
	tableCalls []gridKey
	closed     bool
}

func (d *fakeDoc) Path() string {
	if d.path == "" {
		return "/in/report.pdf"
	}
	return d.path
}

func (d *fakeDoc) PageCount() int { return len(d.texts) }

func (d *fakeDoc) PageText(_ context.Context, page int) (string, error) {
	d.mu.Lock()
	d.textCalls++
	d.mu.Unlock()
	if err := d.textErr[page]; err != nil {
		return "", err
	}
	return d.texts[page], nil
}

func (d *fakeDoc) FindTables(_ context.Context, page int, s extract.TableSettings) ([]extract.Grid, error) {
	k := gridKey{page, s.Mode}
	d.mu.Lock()
	d.tableCalls = append(d.tableCalls, k)
	d.mu.Unlock()
	if err := d.gridErr[k]; err != nil {
		return nil, err
	}
	return d.grids[k], nil
}

func (d *fakeDoc) Rasterize(_ context.Context, page int, scale float64) ([]byte, error) {
	if err := d.rastErr[page]; err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("page-%d@%g", page, scale)), nil
}

func (d *fakeDoc) Images(_ context.Context, page int) ([]extract.EmbeddedImage, error) {
	if err := d.imageErr[page]; err != nil {
		return nil, err
	}
	return d.images[page], nil
}

func (d *fakeDoc) Close() error {
	d.closed = true
	return nil
}

type fakeOpener struct {
	doc *fakeDoc
	err error
}

func (o *fakeOpener) Open(context.Context, string) (extract.Document, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.doc, nil
}

// fakeOCR answers by the page encoded in the fake raster bytes.
type fakeOCR struct {
	words   map[int][]extract.Word
	text    map[int]string
	failOn  map[int]bool
	langs   []string
	panicky bool
}

func pageOf(image []byte) int {
	var p int
	var scale float64
	_, _ = fmt.Sscanf(strings.Replace(string(image), "@", " ", 1), "page-%d %g", &p, &scale)
	return p
}

func (o *fakeOCR) CheckAvailable(context.Context) error { return nil }

func (o *fakeOCR) RecognizeText(_ context.Context, image []byte, lang string) (string, error) {
	p := pageOf(image)
	o.langs = append(o.langs, lang)
	if o.failOn[p] {
		return "", errors.New("ocr failed")
	}
	return o.text[p], nil
}

func (o *fakeOCR) RecognizeWords(_ context.Context, image []byte, lang string) ([]extract.Word, error) {
	if o.panicky {
		panic("engine crashed")
	}
	p := pageOf(image)
	o.langs = append(o.langs, lang)
	if o.failOn[p] {
		return nil, errors.New("ocr failed")
	}
	return o.words[p], nil
}

type fakeDetector struct {
	regions   []extract.Region
	grids     map[int]extract.Grid // by region index across the document
	detectErr error
	formatErr map[int]error

	detectCalls int
}

func (f *fakeDetector) CheckAvailable(context.Context) error { return nil }

func (f *fakeDetector) DetectTables(context.Context, extract.Document) ([]extract.Region, error) {
	f.detectCalls++
	if f.detectErr != nil {
		return nil, f.detectErr
	}
	return append([]extract.Region(nil), f.regions...), nil
}

func (f *fakeDetector) Format(_ context.Context, r extract.Region) (extract.Grid, error) {
	key := r.Page*100 + r.Index
	if err := f.formatErr[key]; err != nil {
		return nil, err
	}
	return f.grids[key], nil
}

type fakeConverter struct {
	err   error
	calls int
}

func (c *fakeConverter) Convert(_ context.Context, _, dst string, _ extract.PageRange) error {
	c.calls++
	if c.err != nil {
		return c.err
	}
	return os.WriteFile(dst, []byte("converted"), 0o644)
}

type docOp struct {
	kind  string // heading, paragraph, break
	text  string
	level int
}

type fakeTextDoc struct {
	ops     []docOp
	saved   string
	saveErr error
}

func (d *fakeTextDoc) AddHeading(text string, level int) {
	d.ops = append(d.ops, docOp{kind: "heading", text: text, level: level})
}
func (d *fakeTextDoc) AddParagraph(text string) {
	d.ops = append(d.ops, docOp{kind: "paragraph", text: text})
}
func (d *fakeTextDoc) AddPageBreak() { d.ops = append(d.ops, docOp{kind: "break"}) }
func (d *fakeTextDoc) SaveAs(path string) error {
	if d.saveErr != nil {
		return d.saveErr
	}
	d.saved = path
	return nil
}

type sheet struct {
	name   string
	header []string
	rows   [][]extract.Cell
}

type fakeWorkbook struct {
	sheets  []sheet
	saved   string
	saveErr error
}

func (w *fakeWorkbook) AddSheet(name string, header []string, rows [][]extract.Cell) error {
	w.sheets = append(w.sheets, sheet{name, header, rows})
	return nil
}

func (w *fakeWorkbook) SaveAs(path string) error {
	if w.saveErr != nil {
		return w.saveErr
	}
	w.saved = path
	return nil
}

func longText() string { return strings.Repeat("texto seleccionable ", 5) }

func cellTexts(row []extract.Cell) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = c.Text
	}
	return out
}
