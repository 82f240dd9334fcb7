package export

import (
	"fmt"
	"io"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

const (
	defaultSheet = "Sheet1"
	minColWidth  = 8
	maxColWidth  = 60
)

// Workbook writes one sheet per table. The first table reuses the default sheet.
type Workbook struct {
	f      *excelize.File
	sheets int
	logger *slog.Logger
}

func NewWorkbook(logger *slog.Logger) *Workbook {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workbook{f: excelize.NewFile(), logger: logger}
}

// AddSheet writes header (when non-nil) on row 1 followed by rows. Absent cells stay blank.
// name must already be a legal, unique sheet name.
func (w *Workbook) AddSheet(name string, header []string, rows [][]extract.Cell) error {
	if name == "" || utf8.RuneCountInString(name) > constants.MaxSheetNameLen {
		return fmt.Errorf("invalid sheet name %q", name)
	}
	if w.sheets == 0 {
		if err := w.f.SetSheetName(defaultSheet, name); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %q: %w", name, err)
	}
	w.sheets++

	widths := make([]int, 0, 16)
	track := func(col int, s string) {
		for len(widths) <= col {
			widths = append(widths, 0)
		}
		if n := utf8.RuneCountInString(s); n > widths[col] {
			widths[col] = n
		}
	}

	r := 1
	if header != nil {
		for i, h := range header {
			cell, _ := excelize.CoordinatesToCellName(i+1, r)
			if err := w.f.SetCellValue(name, cell, h); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
			track(i, h)
		}
		r++
	}
	for _, row := range rows {
		for i, c := range row {
			if !c.Present {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, r)
			if err := w.f.SetCellValue(name, cell, c.Text); err != nil {
				return fmt.Errorf("write row %d: %w", r, err)
			}
			track(i, c.Text)
		}
		r++
	}

	for i, n := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = w.f.SetColWidth(name, col, col, float64(clamp(n+2, minColWidth, maxColWidth)))
	}
	return nil
}

// SaveAs writes the workbook to path and releases it.
func (w *Workbook) SaveAs(path string) error {
	start := time.Now()
	if w.sheets == 0 {
		return fmt.Errorf("workbook has no sheets")
	}
	err := writeFile(path, func(out io.Writer) error {
		_, err := w.f.WriteTo(out)
		return err
	})
	if err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	w.logger.Info("export.xlsx.ok",
		"path", path,
		"sheets", w.sheets,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return w.f.Close()
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
