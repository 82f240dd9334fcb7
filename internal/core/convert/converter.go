package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/utils"
)

type Config struct {
	Pdf2docx string // binary name or absolute path; if empty -> "pdf2docx"
}

// Pdf2docx drives the pdf2docx CLI to turn a digital PDF into an editable document
// that keeps the source layout.
type Pdf2docx struct {
	cfg    Config
	runner utils.Runner
	logger *slog.Logger
}

func NewPdf2docx(cfg Config, logger *slog.Logger) *Pdf2docx {
	return NewPdf2docxWithRunner(cfg, utils.ExecRunner{}, logger)
}

func NewPdf2docxWithRunner(cfg Config, runner utils.Runner, logger *slog.Logger) *Pdf2docx {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdf2docx == "" {
		cfg.Pdf2docx = "pdf2docx"
	}
	return &Pdf2docx{cfg: cfg, runner: runner, logger: logger}
}

// CheckAvailable checks that the binary runs.
func (c *Pdf2docx) CheckAvailable(ctx context.Context) error {
	_, errb, err := c.runner.Run(ctx, c.cfg.Pdf2docx, c.logger, "--help")
	if err != nil {
		return fmt.Errorf("pdf2docx check: %w: %s", err, utils.Truncate(string(errb), 512))
	}
	c.logger.Info("convert.pdf2docx.available", "binary", c.cfg.Pdf2docx)
	return nil
}

// Convert writes dst from src. The destination must exist afterwards for the call to succeed.
func (c *Pdf2docx) Convert(ctx context.Context, src, dst string, pages extract.PageRange) error {
	start := time.Now()
	_, errb, err := c.runner.Run(ctx, c.cfg.Pdf2docx, c.logger, convertArgs(src, dst, pages)...)
	if err != nil {
		return fmt.Errorf("pdf2docx: %w: %s", err, utils.Truncate(string(errb), 512))
	}
	st, err := os.Stat(dst)
	if err != nil {
		return fmt.Errorf("pdf2docx produced no output: %w", err)
	}
	if st.Size() == 0 {
		return fmt.Errorf("pdf2docx produced an empty file %q", dst)
	}
	c.logger.Info("convert.pdf2docx.ok",
		"src", src,
		"dst", dst,
		"bytes", st.Size(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// pdf2docx convert <src> <dst> [--start=N] [--end=N]
func convertArgs(src, dst string, pages extract.PageRange) []string {
	args := []string{"convert", src, dst}
	if pages.Start > 0 {
		args = append(args, "--start="+strconv.Itoa(pages.Start))
	}
	if pages.End > 0 {
		args = append(args, "--end="+strconv.Itoa(pages.End))
	}
	return args
}
