package ocr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/utils"
)

type Config struct {
	Tesseract   string // binary name or absolute path; if empty -> "tesseract"
	TessdataDir string
	Lang        string // fallback when a call passes no language; default "spa"

	PSM int // page segmentation mode; 0 leaves tesseract's default
	OEM int // 1 = LSTM; leave 0 to use default
}

// Tesseract drives the tesseract CLI. It is safe for sequential use by many
// sessions; every call works on its own temp file.
type Tesseract struct {
	cfg    Config
	runner utils.Runner
	logger *slog.Logger
}

func NewTesseract(cfg Config, logger *slog.Logger) *Tesseract {
	return NewTesseractWithRunner(cfg, utils.ExecRunner{}, logger)
}

func NewTesseractWithRunner(cfg Config, runner utils.Runner, logger *slog.Logger) *Tesseract {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "spa"
	}
	return &Tesseract{cfg: cfg, runner: runner, logger: logger}
}

// CheckAvailable checks that the binary runs.
func (t *Tesseract) CheckAvailable(ctx context.Context) error {
	out, errb, err := t.runner.Run(ctx, t.cfg.Tesseract, t.logger, "--version")
	if err != nil {
		return fmt.Errorf("tesseract check: %w: %s", err, utils.Truncate(string(errb), 512))
	}
	// tesseract prints its version on stdout or stderr depending on build
	v := firstLine(out)
	if v == "" {
		v = firstLine(errb)
	}
	t.logger.Info("ocr.tesseract.available", "binary", t.cfg.Tesseract, "version", v)
	return nil
}

// RecognizeText returns the normalized full-page text of a raster image.
func (t *Tesseract) RecognizeText(ctx context.Context, image []byte, lang string) (string, error) {
	start := time.Now()
	var text string
	err := utils.WithTempFile("ocr-*.png", image, func(path string) error {
		out, errb, err := t.runner.Run(ctx, t.cfg.Tesseract, t.logger, t.args(path, lang)...)
		if err != nil {
			return fmt.Errorf("tesseract: %w: %s", err, utils.Truncate(string(errb), 512))
		}
		text = Normalize(string(out))
		return nil
	})
	if err != nil {
		return "", err
	}
	t.logger.Debug("ocr.text.ok", "chars", len(text), "elapsed_ms", time.Since(start).Milliseconds())
	return text, nil
}

// RecognizeWords returns word boxes parsed from tesseract's TSV output.
func (t *Tesseract) RecognizeWords(ctx context.Context, image []byte, lang string) ([]extract.Word, error) {
	start := time.Now()
	var words []extract.Word
	err := utils.WithTempFile("ocr-*.png", image, func(path string) error {
		args := append(t.args(path, lang), "tsv")
		out, errb, err := t.runner.Run(ctx, t.cfg.Tesseract, t.logger, args...)
		if err != nil {
			return fmt.Errorf("tesseract TSV: %w: %s", err, utils.Truncate(string(errb), 512))
		}
		words, err = ParseTSV(out)
		return err
	})
	if err != nil {
		return nil, err
	}
	t.logger.Debug("ocr.words.ok", "words", len(words), "elapsed_ms", time.Since(start).Milliseconds())
	return words, nil
}

// tesseract <file> stdout -l <lang> [--psm N] [--oem N] [--tessdata-dir D]
func (t *Tesseract) args(path, lang string) []string {
	if lang == "" {
		lang = t.cfg.Lang
	}
	args := []string{path, "stdout", "-l", lang}
	if t.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(t.cfg.PSM))
	}
	if t.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(t.cfg.OEM))
	}
	if t.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", t.cfg.TessdataDir)
	}
	return args
}

func firstLine(b []byte) string {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		b = b[:i]
	}
	return string(bytes.TrimSpace(b))
}
