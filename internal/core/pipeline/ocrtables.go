package pipeline

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/utils"
)

const (
	ocrRasterScale    = 2
	minWordConfidence = 30
	rowBandHeight     = 15 // pixels at ocrRasterScale
)

// OCRExtractor rebuilds tables from OCR word boxes by grouping words into row bands.
type OCRExtractor struct {
	engine extract.OCREngine
	lang   string
	logger *slog.Logger
}

func NewOCRExtractor(engine extract.OCREngine, lang string, logger *slog.Logger) *OCRExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRExtractor{engine: engine, lang: lang, logger: logger}
}

func (e *OCRExtractor) Extract(ctx context.Context, doc extract.Document) ([]extract.Table, error) {
	logger := common.LoggerFrom(ctx, e.logger)
	var out []extract.Table
	for p := 0; p < doc.PageCount(); p++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		img, err := doc.Rasterize(ctx, p, ocrRasterScale)
		if err != nil {
			logger.Warn("pipeline.ocr.raster_failed", "page", p+1, "error", err)
			continue
		}
		words, err := e.engine.RecognizeWords(ctx, img, e.lang)
		if err != nil {
			logger.Warn("pipeline.ocr.recognize_failed", "page", p+1, "error", err)
			continue
		}
		rows := bandRows(words)
		if len(rows) <= 1 {
			continue
		}
		width := 0
		for _, r := range rows {
			width = max(width, len(r))
		}
		cells := make([][]extract.Cell, len(rows))
		for i, r := range rows {
			cells[i] = normalizeRow(r, width)
		}
		out = append(out, extract.Table{
			Label:    utils.PageName(p) + "_" + string(constants.StrategyOCR),
			Strategy: constants.StrategyOCR,
			Page:     p + 1,
			Rows:     cells,
		})
	}
	return out, nil
}

// bandRows groups confident words into rows by their top edge and orders each row
// left to right.
func bandRows(words []extract.Word) [][]string {
	bands := make(map[int][]extract.Word)
	for _, w := range words {
		text := strings.TrimSpace(w.Text)
		if w.Confidence <= minWordConfidence || text == "" {
			continue
		}
		w.Text = text
		key := w.Top / rowBandHeight
		bands[key] = append(bands[key], w)
	}
	keys := make([]int, 0, len(bands))
	for k := range bands {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		band := bands[k]
		sort.SliceStable(band, func(i, j int) bool { return band[i].Left < band[j].Left })
		row := make([]string, len(band))
		for i, w := range band {
			row[i] = w.Text
		}
		rows = append(rows, row)
	}
	return rows
}
