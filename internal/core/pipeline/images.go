package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/utils"
)

// ImageExtractor saves embedded raster images as images/P<n>_<idx>.<ext>.
type ImageExtractor struct {
	logger *slog.Logger
}

func NewImageExtractor(logger *slog.Logger) *ImageExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageExtractor{logger: logger}
}

// Extract returns the number of files written.
func (e *ImageExtractor) Extract(ctx context.Context, doc extract.Document, outDir string) int {
	logger := common.LoggerFrom(ctx, e.logger)
	dir := filepath.Join(outDir, constants.ImagesDir)
	if err := utils.EnsureDir(dir); err != nil {
		logger.Warn("pipeline.images.dir_failed", "dir", dir, "error", err)
		return 0
	}
	count := 0
	for p := 0; p < doc.PageCount(); p++ {
		if ctx.Err() != nil {
			break
		}
		imgs, err := doc.Images(ctx, p)
		if err != nil {
			logger.Warn("pipeline.images.page_failed", "page", p+1, "error", err)
			continue
		}
		for _, im := range imgs {
			ext := constants.NormalizeExt(im.Ext)
			if ext == "" {
				ext = "png"
			}
			path := filepath.Join(dir, fmt.Sprintf("%s_%d.%s", utils.PageName(p), im.Index, ext))
			if err := os.WriteFile(path, im.Data, 0o644); err != nil {
				logger.Warn("pipeline.images.write_failed", "path", path, "error", err)
				continue
			}
			count++
		}
	}
	logger.Info("pipeline.images.done", "dir", dir, "count", count)
	return count
}
