package core

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/convert"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/core/llm/openai"
	"github.com/joseph-ayodele/docextract/internal/core/ocr"
	"github.com/joseph-ayodele/docextract/internal/core/pdf"
	"github.com/joseph-ayodele/docextract/internal/core/pipeline"
)

type availabilityChecker interface {
	CheckAvailable(ctx context.Context) error
}

// BuildCapabilities constructs and checks every engine once. An engine that is
// disabled or fails its check is left nil and its strategy is skipped for every session.
func BuildCapabilities(ctx context.Context, cfg *common.Config, logger *slog.Logger) *pipeline.Capabilities {
	if logger == nil {
		logger = slog.Default()
	}
	opener := pdf.NewOpener(pdf.Config{Pdftoppm: cfg.OCR.Pdftoppm}, logger)
	caps := &pipeline.Capabilities{Opener: opener, Lang: cfg.OCR.Lang}

	rasterOK := true
	if err := opener.CheckRasterizer(ctx); err != nil {
		logUnavailable(logger, "pdftoppm", err)
		rasterOK = false
	}

	if !cfg.OCR.Disabled && rasterOK {
		eng := ocr.New(ocr.Config{
			Tesseract:   cfg.OCR.Tesseract,
			TessdataDir: cfg.OCR.TessdataDir,
			Lang:        cfg.OCR.Lang,
			PSM:         cfg.OCR.PSM,
		}, logger)
		if checkEngine(ctx, logger, "ocr", eng) {
			caps.OCR = eng
		}
	}

	if !cfg.LLM.Disabled && rasterOK {
		client, err := openai.NewClient(openai.Config{
			APIKey:            cfg.LLM.APIKey,
			BaseURL:           cfg.LLM.BaseURL,
			Model:             cfg.LLM.Model,
			Temperature:       cfg.LLM.Temperature,
			Timeout:           cfg.LLM.Timeout,
			RequestsPerMinute: cfg.LLM.RequestsPerMinute,
			Lenient:           true,
		}, logger)
		if err != nil {
			logUnavailable(logger, "ai_tables", err)
		} else if checkEngine(ctx, logger, "ai_tables", client) {
			caps.Tables = client
		}
	}

	if !cfg.Convert.Disabled {
		conv := convert.NewPdf2docx(convert.Config{Pdf2docx: cfg.Convert.Pdf2docx}, logger)
		if checkEngine(ctx, logger, "converter", conv) {
			caps.Converter = conv
		}
	}

	logger.Info("capabilities.ready",
		"ocr", caps.OCR != nil,
		"ai_tables", caps.Tables != nil,
		"converter", caps.Converter != nil,
		"lang", caps.Lang,
	)
	return caps
}

func checkEngine(ctx context.Context, logger *slog.Logger, engine string, p availabilityChecker) bool {
	if err := p.CheckAvailable(ctx); err != nil {
		logUnavailable(logger, engine, err)
		return false
	}
	return true
}

func logUnavailable(logger *slog.Logger, engine string, err error) {
	logger.Warn("capabilities.engine_unavailable", "engine", engine, "error", common.UnavailableError(engine, err))
}

var (
	_ extract.TableDetector = (*openai.Client)(nil)
	_ extract.Converter     = (*convert.Pdf2docx)(nil)
	_ extract.Opener        = (*pdf.Opener)(nil)
)
