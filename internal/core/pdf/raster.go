package pdf

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joseph-ayodele/docextract/internal/utils"
)

const pointsPerInch = 72

// Rasterize renders one page to PNG with pdftoppm. Scale 2 gives 144 DPI.
func (d *Document) Rasterize(ctx context.Context, page int, scale float64) ([]byte, error) {
	if err := d.checkPage(page); err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = 1
	}
	tmpDir, err := os.MkdirTemp("", "dx-pp-*")
	if err != nil {
		return nil, err
	}
	defer func(path string) {
		if err := os.RemoveAll(path); err != nil {
			d.logger.Warn("pdf.raster.cleanup_failed", "dir", path, "error", err)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -f N -l N -r DPI -png -singlefile <in.pdf> <tmp/page>
	_, errb, err := d.runner.Run(ctx, d.cfg.Pdftoppm, d.logger, rasterArgs(d.path, prefix, page, scale)...)
	if err != nil {
		return nil, fmt.Errorf("pdftoppm page %d: %w: %s", page+1, err, utils.Truncate(string(errb), 512))
	}
	png, err := os.ReadFile(prefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("pdftoppm produced no image for page %d: %w", page+1, err)
	}
	return png, nil
}

func rasterArgs(path, prefix string, page int, scale float64) []string {
	n := strconv.Itoa(page + 1)
	dpi := strconv.Itoa(int(math.Round(pointsPerInch * scale)))
	return []string{"-f", n, "-l", n, "-r", dpi, "-png", "-singlefile", path, prefix}
}
