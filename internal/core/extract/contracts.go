package extract

import (
	"context"
	"encoding/json"

	"github.com/joseph-ayodele/docextract/constants"
)

// Document is an opened source file. Pages are 0-based.
type Document interface {
	Path() string
	PageCount() int
	PageText(ctx context.Context, page int) (string, error)
	// FindTables returns every grid the structural parser detects on the page
	// under the given settings, each as rows of cell text.
	FindTables(ctx context.Context, page int, settings TableSettings) ([]Grid, error)
	// Rasterize renders the page as PNG bytes at the given scale (1 = 72 DPI).
	Rasterize(ctx context.Context, page int, scale float64) ([]byte, error)
	Images(ctx context.Context, page int) ([]EmbeddedImage, error)
	Close() error
}

// Opener opens documents for an extraction session.
type Opener interface {
	Open(ctx context.Context, path string) (Document, error)
}

// TableMode selects how the structural parser finds table grids.
type TableMode string

const (
	TableModeLines TableMode = "lines" // drawn ruling lines
	TableModeText  TableMode = "text"  // whitespace alignment of words
)

type TableSettings struct {
	Mode                   TableMode
	SnapTolerance          float64
	IntersectionXTolerance float64
}

// Grid is a rectangular-ish block of cell text, row-major. Rows may be ragged.
type Grid [][]string

// EmbeddedImage is one raster image placed on a page. Index is its position in
// the page's image enumeration and stays stable when other images fail to decode.
type EmbeddedImage struct {
	Index int
	Name  string
	Data  []byte
	Ext   string // without dot, e.g. "jpg", "png"
}

// Word is one OCR word box in rasterized pixel coordinates.
type Word struct {
	Text       string
	Confidence float64 // 0..100
	Left       int
	Top        int
}

// OCREngine recognizes text in raster images.
type OCREngine interface {
	CheckAvailable(ctx context.Context) error
	RecognizeText(ctx context.Context, image []byte, lang string) (string, error)
	RecognizeWords(ctx context.Context, image []byte, lang string) ([]Word, error)
}

// Region is one table area found by the ML detector. Raw carries the
// detector's own payload; only the detector interprets it.
type Region struct {
	Page  int
	Index int
	Raw   json.RawMessage
}

// TableDetector is the ML-based table detector and formatter.
type TableDetector interface {
	CheckAvailable(ctx context.Context) error
	DetectTables(ctx context.Context, doc Document) ([]Region, error)
	Format(ctx context.Context, region Region) (Grid, error)
}

// PageRange is a 0-based, inclusive-start, exclusive-end range. End 0 means the last page.
type PageRange struct {
	Start int
	End   int
}

// Converter produces an editable document straight from the source.
type Converter interface {
	Convert(ctx context.Context, src, dst string, pages PageRange) error
}

// Cell is one table value. Present is false when the cell holds no text.
type Cell struct {
	Text    string
	Present bool
}

// Table is one extracted table. Header is nil when the strategy produces none.
type Table struct {
	Label    string
	Strategy constants.Strategy
	Page     int // 1-based
	Header   []string
	Rows     [][]Cell
}

// Width is the column count every row is normalized to.
func (t Table) Width() int {
	if t.Header != nil {
		return len(t.Header)
	}
	w := 0
	for _, r := range t.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Attempt records one strategy run by the orchestrator.
type Attempt struct {
	Strategy constants.Strategy
	Skipped  bool
	Tables   int
	Err      error
}

// Result is the outcome of one orchestration pass. No tables is a valid outcome.
type Result struct {
	Classification constants.Classification
	Strategy       constants.Strategy // producer of Tables, empty when none
	Tables         []Table
	Attempts       []Attempt
}
