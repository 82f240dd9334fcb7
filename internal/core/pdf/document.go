package pdf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/tsawler/tabula/reader"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/utils"
)

type Config struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
}

// Opener opens PDFs. One Opener serves every session of the process.
type Opener struct {
	cfg    Config
	runner utils.Runner
	logger *slog.Logger
}

func NewOpener(cfg Config, logger *slog.Logger) *Opener {
	return NewOpenerWithRunner(cfg, utils.ExecRunner{}, logger)
}

func NewOpenerWithRunner(cfg Config, runner utils.Runner, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	return &Opener{cfg: cfg, runner: runner, logger: logger}
}

// CheckRasterizer checks that pdftoppm runs. Page rasterization, and with it every
// image-based strategy, depends on it.
func (o *Opener) CheckRasterizer(ctx context.Context) error {
	_, errb, err := o.runner.Run(ctx, o.cfg.Pdftoppm, o.logger, "-v")
	if err != nil {
		return fmt.Errorf("pdftoppm check: %w: %s", err, utils.Truncate(string(errb), 512))
	}
	o.logger.Info("pdf.pdftoppm.available", "binary", o.cfg.Pdftoppm)
	return nil
}

// Document is an opened PDF. tabula is the primary parser; ledongthuc/pdf
// serves page text when tabula cannot parse the file or a page.
type Document struct {
	path   string
	pages  int
	cfg    Config
	runner utils.Runner
	logger *slog.Logger

	tab *reader.Reader // nil when tabula failed to open the file

	plainOnce sync.Once
	plainFile *os.File
	plain     *lpdf.Reader
	plainErr  error

	images imageSource
}

var _ extract.Document = (*Document)(nil)

// Open parses path. It fails only when neither parser can read the file.
func (o *Opener) Open(_ context.Context, path string) (extract.Document, error) {
	d := &Document{path: path, cfg: o.cfg, runner: o.runner, logger: o.logger}
	d.images.path = path

	tab, tabErr := reader.Open(path)
	if tabErr == nil {
		n, err := tab.PageCount()
		if err == nil {
			d.tab, d.pages = tab, n
			o.logger.Debug("pdf.open.ok", "path", path, "pages", n, "parser", "tabula")
			return d, nil
		}
		_ = tab.Close()
		tabErr = err
	}

	o.logger.Warn("pdf.open.tabula_failed", "path", path, "error", tabErr)
	plain, err := d.plainReader()
	if err != nil {
		return nil, fmt.Errorf("open pdf %q: %w", path, errors.Join(tabErr, err))
	}
	d.pages = plain.NumPage()
	o.logger.Debug("pdf.open.ok", "path", path, "pages", d.pages, "parser", "ledongthuc")
	return d, nil
}

func (d *Document) Path() string   { return d.path }
func (d *Document) PageCount() int { return d.pages }

func (d *Document) Close() error {
	var errs []error
	if d.tab != nil {
		errs = append(errs, d.tab.Close())
	}
	if d.plainFile != nil {
		errs = append(errs, d.plainFile.Close())
	}
	return errors.Join(errs...)
}

func (d *Document) checkPage(page int) error {
	if page < 0 || page >= d.pages {
		return fmt.Errorf("page %d out of range [0,%d)", page, d.pages)
	}
	return nil
}

func (d *Document) plainReader() (*lpdf.Reader, error) {
	d.plainOnce.Do(func() {
		d.plainFile, d.plain, d.plainErr = lpdf.Open(d.path)
	})
	return d.plain, d.plainErr
}
