//go:build gosseract

package ocr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

// New returns the libtesseract-backed engine.
func New(cfg Config, logger *slog.Logger) extract.OCREngine {
	return NewGosseract(cfg, logger)
}

// Gosseract recognizes text through the gosseract cgo binding. A fresh client
// is created per call; gosseract clients are not safe for concurrent use.
type Gosseract struct {
	cfg    Config
	logger *slog.Logger
}

func NewGosseract(cfg Config, logger *slog.Logger) *Gosseract {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Lang == "" {
		cfg.Lang = "spa"
	}
	return &Gosseract{cfg: cfg, logger: logger}
}

func (g *Gosseract) CheckAvailable(_ context.Context) error {
	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()
	v := client.Version()
	if v == "" {
		return errors.New("gosseract: no tesseract version reported")
	}
	g.logger.Info("ocr.gosseract.available", "version", v)
	return nil
}

func (g *Gosseract) client(image []byte, lang string) (*gosseract.Client, error) {
	if lang == "" {
		lang = g.cfg.Lang
	}
	c := gosseract.NewClient()
	if g.cfg.TessdataDir != "" {
		if err := c.SetTessdataPrefix(g.cfg.TessdataDir); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	if err := c.SetLanguage(strings.Split(lang, "+")...); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("set language: %w", err)
	}
	if g.cfg.PSM > 0 {
		if err := c.SetPageSegMode(gosseract.PageSegMode(g.cfg.PSM)); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	if err := c.SetImageFromBytes(image); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("set image: %w", err)
	}
	return c, nil
}

func (g *Gosseract) RecognizeText(_ context.Context, image []byte, lang string) (string, error) {
	c, err := g.client(image, lang)
	if err != nil {
		return "", err
	}
	defer func() { _ = c.Close() }()
	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("gosseract text: %w", err)
	}
	return Normalize(text), nil
}

func (g *Gosseract) RecognizeWords(_ context.Context, image []byte, lang string) ([]extract.Word, error) {
	c, err := g.client(image, lang)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("gosseract boxes: %w", err)
	}
	words := make([]extract.Word, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, extract.Word{
			Text:       b.Word,
			Confidence: b.Confidence,
			Left:       b.Box.Min.X,
			Top:        b.Box.Min.Y,
		})
	}
	return words, nil
}
