package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/utils"
)

var (
	lineSettings = extract.TableSettings{
		Mode:          extract.TableModeLines,
		SnapTolerance: 3,
	}
	textSettings = extract.TableSettings{
		Mode:                   extract.TableModeText,
		SnapTolerance:          3,
		IntersectionXTolerance: 15,
	}
)

// NativeExtractor reads tables from a digital document's own structure.
type NativeExtractor struct {
	logger *slog.Logger
}

func NewNativeExtractor(logger *slog.Logger) *NativeExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &NativeExtractor{logger: logger}
}

func (e *NativeExtractor) Extract(ctx context.Context, doc extract.Document) ([]extract.Table, error) {
	logger := common.LoggerFrom(ctx, e.logger)
	var out []extract.Table
	for p := 0; p < doc.PageCount(); p++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		var kept []extract.Table
		for _, g := range e.pageGrids(ctx, doc, p) {
			if t, ok := nativeTable(g, p); ok {
				kept = append(kept, t)
			}
		}
		for i := range kept {
			kept[i].Label = nativeLabel(p, i, len(kept))
		}
		if len(kept) > 0 {
			logger.Debug("pipeline.native.page", "page", p+1, "tables", len(kept))
		}
		out = append(out, kept...)
	}
	return out, nil
}

// pageGrids tries ruling lines first and falls back to word alignment when lines
// give nothing usable.
func (e *NativeExtractor) pageGrids(ctx context.Context, doc extract.Document, page int) []extract.Grid {
	logger := common.LoggerFrom(ctx, e.logger)
	grids, err := doc.FindTables(ctx, page, lineSettings)
	if err != nil {
		logger.Debug("pipeline.native.lines_failed", "page", page+1, "error", err)
	}
	if err == nil && !needsTextFallback(grids) {
		return grids
	}
	text, terr := doc.FindTables(ctx, page, textSettings)
	if terr != nil {
		logger.Warn("pipeline.native.text_failed", "page", page+1, "error", terr)
		if err == nil {
			return grids
		}
		return nil
	}
	return text
}

func needsTextFallback(grids []extract.Grid) bool {
	return len(grids) == 0 || len(grids[0]) == 0 || len(grids[0][0]) < 2
}

// nativeTable keeps a grid with a header and at least one non-blank data row.
func nativeTable(g extract.Grid, page int) (extract.Table, bool) {
	if len(g) <= 1 {
		return extract.Table{}, false
	}
	header, rows := headedTable(g)
	hasData := false
	for _, r := range rows {
		if !isBlankRow(r) {
			hasData = true
			break
		}
	}
	if !hasData {
		return extract.Table{}, false
	}
	return extract.Table{
		Strategy: constants.StrategyNative,
		Page:     page + 1,
		Header:   header,
		Rows:     rows,
	}, true
}

func nativeLabel(page, idx, count int) string {
	label := utils.PageName(page) + "_" + string(constants.StrategyNative)
	if count > 1 {
		label = fmt.Sprintf("%s_%d", label, idx+1)
	}
	return label
}
