package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/utils"
)

// TextSynthesizer produces the editable document: a layout-preserving conversion for
// digital documents when a converter is available, otherwise an OCR text rendition.
type TextSynthesizer struct {
	caps   *Capabilities
	logger *slog.Logger
}

func NewTextSynthesizer(caps *Capabilities, logger *slog.Logger) *TextSynthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextSynthesizer{caps: caps, logger: logger}
}

// Synthesize returns the written path, or ok=false when no document could be produced.
func (t *TextSynthesizer) Synthesize(ctx context.Context, s *Session, outDir string) (string, bool) {
	logger := common.LoggerFrom(ctx, t.logger)
	doc := s.Document()
	dst := utils.OutputPath(outDir, constants.BaseName(doc.Path()), constants.DocumentSuffix)

	if s.Classify(ctx) == constants.Digital && t.caps.Converter != nil {
		err := t.caps.Converter.Convert(ctx, doc.Path(), dst, extract.PageRange{})
		if err == nil {
			return dst, true
		}
		logger.Warn("pipeline.text.convert_failed", "path", doc.Path(), "error", err)
		_ = os.Remove(dst)
	}

	if t.caps.OCR == nil {
		logger.Info("pipeline.text.skipped", "path", doc.Path(), "reason", "no converter or OCR engine")
		return "", false
	}

	td := t.caps.NewTextDocument()
	td.AddHeading("Extracted text (OCR) - "+constants.BaseName(doc.Path()), 0)
	for p := 0; p < doc.PageCount(); p++ {
		if ctx.Err() != nil {
			return "", false
		}
		if p > 0 {
			td.AddPageBreak()
		}
		td.AddHeading(fmt.Sprintf("Page %d", p+1), 1)
		img, err := doc.Rasterize(ctx, p, ocrRasterScale)
		if err != nil {
			logger.Warn("pipeline.text.raster_failed", "page", p+1, "error", err)
			continue
		}
		text, err := t.caps.OCR.RecognizeText(ctx, img, t.caps.Lang)
		if err != nil {
			logger.Warn("pipeline.text.recognize_failed", "page", p+1, "error", err)
			continue
		}
		td.AddParagraph(text)
	}
	if err := td.SaveAs(dst); err != nil {
		logger.Warn("pipeline.text.save_failed", "path", dst, "error", err)
		return "", false
	}
	return dst, true
}
