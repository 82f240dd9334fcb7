package pdf

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/tabula/core"
	"github.com/tsawler/tabula/graphicsstate"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/tables"
	"github.com/tsawler/tabula/text"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

var errNoStructure = errors.New("table detection needs the structural parser")

// FindTables detects table grids on a page. Grids are returned top to bottom.
func (d *Document) FindTables(ctx context.Context, page int, s extract.TableSettings) ([]extract.Grid, error) {
	if err := d.checkPage(page); err != nil {
		return nil, err
	}
	if d.tab == nil {
		return nil, errNoStructure
	}
	frags, err := d.fragments(page)
	if err != nil {
		return nil, err
	}
	switch s.Mode {
	case extract.TableModeLines:
		content, err := d.content(page)
		if err != nil {
			return nil, err
		}
		return linesTables(content, frags, s.SnapTolerance), nil
	case extract.TableModeText:
		return textTables(frags, s)
	default:
		return nil, fmt.Errorf("unknown table mode %q", s.Mode)
	}
}

// content returns the page's decoded, concatenated content streams.
func (d *Document) content(page int) ([]byte, error) {
	p, err := d.tab.GetPage(page)
	if err != nil {
		return nil, fmt.Errorf("get page %d: %w", page+1, err)
	}
	objs, err := p.Contents()
	if err != nil {
		return nil, fmt.Errorf("contents page %d: %w", page+1, err)
	}
	var data []byte
	for _, o := range objs {
		stream, ok := o.(*core.Stream)
		if !ok {
			continue
		}
		b, err := stream.Decode()
		if err != nil {
			return nil, fmt.Errorf("decode content page %d: %w", page+1, err)
		}
		data = append(data, b...)
		data = append(data, '\n')
	}
	return data, nil
}

// linesTables finds grids formed by ruling lines and fills each cell with the
// fragments whose center falls inside it.
func linesTables(content []byte, frags []text.TextFragment, snap float64) []extract.Grid {
	ge := graphicsstate.NewGraphicsExtractor()
	if err := ge.ExtractFromBytes(content); err != nil {
		return nil
	}
	lines := ge.GetGridLines()
	gd := tables.NewGridDetector()
	if snap > 0 {
		gd.AlignmentTolerance = snap
	}
	hyps := gd.DetectFromLines(lines.Horizontals, lines.Verticals)
	sort.SliceStable(hyps, func(i, j int) bool { return hyps[i].BBox.Top() > hyps[j].BBox.Top() })

	grids := make([]extract.Grid, 0, len(hyps))
	for _, h := range hyps {
		if g := fillGrid(h.ToTableGrid(), frags); len(g) > 0 {
			grids = append(grids, g)
		}
	}
	return grids
}

func fillGrid(tg *model.TableGrid, frags []text.TextFragment) extract.Grid {
	rows, cols := tg.RowCount(), tg.ColCount()
	if rows == 0 || cols == 0 {
		return nil
	}
	parts := make([][][]string, rows)
	for r := range parts {
		parts[r] = make([][]string, cols)
	}
	for _, f := range readingOrder(frags) {
		s := strings.TrimSpace(f.Text)
		if s == "" {
			continue
		}
		center := model.Point{X: f.X + f.Width/2, Y: f.Y + f.Height/2}
	cells:
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if cellBox(tg, r, c).Contains(center) {
					parts[r][c] = append(parts[r][c], s)
					break cells
				}
			}
		}
	}
	grid := make(extract.Grid, rows)
	for r := range parts {
		grid[r] = make([]string, cols)
		for c := range parts[r] {
			grid[r][c] = strings.Join(parts[r][c], " ")
		}
	}
	return grid
}

// cellBox normalizes a grid cell to a positive-size box; grid rows may be
// stored top-down.
func cellBox(tg *model.TableGrid, r, c int) model.BBox {
	y0, y1 := tg.Rows[r], tg.Rows[r+1]
	x0, x1 := tg.Cols[c], tg.Cols[c+1]
	return model.NewBBoxFromPoints(model.Point{X: x0, Y: y0}, model.Point{X: x1, Y: y1})
}

// textTables finds tables from whitespace alignment. Column edges within the
// intersection tolerance are snapped together first so that slightly
// misaligned columns still line up; rows keep the tight snap tolerance.
func textTables(frags []text.TextFragment, s extract.TableSettings) ([]extract.Grid, error) {
	if len(frags) == 0 {
		return nil, nil
	}
	cfg := tables.DefaultConfig()
	cfg.UseLines = false
	cfg.UseWhitespace = true
	cfg.DetectMergedCells = false
	if s.SnapTolerance > 0 {
		cfg.AlignmentTolerance = s.SnapTolerance
	}
	det := tables.NewGeometricDetector()
	if err := det.Configure(cfg); err != nil {
		return nil, err
	}

	page := model.NewPage(0, 0)
	page.RawText = snapColumns(toModelFragments(frags), s.IntersectionXTolerance)
	found, err := det.Detect(page)
	if err != nil {
		return nil, fmt.Errorf("geometric detect: %w", err)
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].BBox.Top() > found[j].BBox.Top() })

	grids := make([]extract.Grid, 0, len(found))
	for _, t := range found {
		g := make(extract.Grid, 0, len(t.Rows))
		for _, row := range t.Rows {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = c.Text
			}
			g = append(g, cells)
		}
		if len(g) > 0 {
			grids = append(grids, g)
		}
	}
	return grids, nil
}

func toModelFragments(frags []text.TextFragment) []model.TextFragment {
	out := make([]model.TextFragment, 0, len(frags))
	for _, f := range frags {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		out = append(out, model.TextFragment{
			Text:     f.Text,
			BBox:     model.BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
			FontSize: f.FontSize,
			FontName: f.FontName,
		})
	}
	return out
}

// snapColumns clusters fragments by left edge (tolerance tol) and aligns each
// cluster to its leftmost edge and widest right edge.
func snapColumns(frags []model.TextFragment, tol float64) []model.TextFragment {
	if tol <= 0 || len(frags) == 0 {
		return frags
	}
	idx := make([]int, len(frags))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return frags[idx[a]].BBox.X < frags[idx[b]].BBox.X })

	out := make([]model.TextFragment, len(frags))
	copy(out, frags)

	start := 0
	for i := 1; i <= len(idx); i++ {
		if i < len(idx) && frags[idx[i]].BBox.X-frags[idx[i-1]].BBox.X <= tol {
			continue
		}
		cluster := idx[start:i]
		left := frags[cluster[0]].BBox.X
		right := left
		for _, k := range cluster {
			if r := frags[k].BBox.Right(); r > right {
				right = r
			}
		}
		for _, k := range cluster {
			out[k].BBox.X = left
			out[k].BBox.Width = right - left
		}
		start = i
	}
	return out
}

func readingOrder(frags []text.TextFragment) []text.TextFragment {
	sorted := make([]text.TextFragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	return sorted
}
