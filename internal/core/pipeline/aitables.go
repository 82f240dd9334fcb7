package pipeline

import (
	"context"
	"log/slog"
	"sort"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/utils"
)

const minAIDataRows = 2

// AIExtractor asks the ML detector for table regions and formats each one.
type AIExtractor struct {
	detector extract.TableDetector
	logger   *slog.Logger
}

func NewAIExtractor(detector extract.TableDetector, logger *slog.Logger) *AIExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &AIExtractor{detector: detector, logger: logger}
}

func (e *AIExtractor) Extract(ctx context.Context, doc extract.Document) ([]extract.Table, error) {
	logger := common.LoggerFrom(ctx, e.logger)
	regions, err := e.detector.DetectTables(ctx, doc)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(regions, func(i, j int) bool {
		if regions[i].Page != regions[j].Page {
			return regions[i].Page < regions[j].Page
		}
		return regions[i].Index < regions[j].Index
	})

	var out []extract.Table
	for _, r := range regions {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		grid, err := e.detector.Format(ctx, r)
		if err != nil {
			logger.Warn("pipeline.ai.region_failed", "page", r.Page+1, "region", r.Index, "error", err)
			continue
		}
		if len(grid) < minAIDataRows+1 {
			logger.Debug("pipeline.ai.region_too_small", "page", r.Page+1, "region", r.Index, "rows", len(grid))
			continue
		}
		header, rows := headedTable(grid)
		out = append(out, extract.Table{
			Label:    utils.PageName(r.Page) + "_" + string(constants.StrategyAI),
			Strategy: constants.StrategyAI,
			Page:     r.Page + 1,
			Header:   header,
			Rows:     rows,
		})
	}
	return out, nil
}
