//go:build !gosseract

package ocr

import (
	"log/slog"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

// New returns the OCR engine compiled into this binary: the tesseract CLI.
// Build with -tags gosseract to link libtesseract instead.
func New(cfg Config, logger *slog.Logger) extract.OCREngine {
	return NewTesseract(cfg, logger)
}
