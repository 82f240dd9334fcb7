package pdf

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tsawler/tabula/text"
)

// PageText returns the selectable text of a page, one line per text baseline.
func (d *Document) PageText(ctx context.Context, page int) (string, error) {
	if err := d.checkPage(page); err != nil {
		return "", err
	}
	if d.tab != nil {
		frags, err := d.fragments(page)
		if err == nil {
			return fragmentsToText(frags), nil
		}
		d.logger.Debug("pdf.text.tabula_failed", "page", page+1, "error", err)
	}
	return d.plainText(page)
}

func (d *Document) fragments(page int) ([]text.TextFragment, error) {
	p, err := d.tab.GetPage(page)
	if err != nil {
		return nil, fmt.Errorf("get page %d: %w", page+1, err)
	}
	frags, err := d.tab.ExtractTextFragments(p)
	if err != nil {
		return nil, fmt.Errorf("text fragments page %d: %w", page+1, err)
	}
	return frags, nil
}

func (d *Document) plainText(page int) (string, error) {
	r, err := d.plainReader()
	if err != nil {
		return "", fmt.Errorf("fallback reader: %w", err)
	}
	p := r.Page(page + 1)
	if p.V.IsNull() {
		return "", nil
	}
	s, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("plain text page %d: %w", page+1, err)
	}
	return s, nil
}

// fragmentsToText orders fragments top to bottom, then left to right, and
// joins fragments sharing a baseline (within half a font size) into a line.
func fragmentsToText(frags []text.TextFragment) string {
	if len(frags) == 0 {
		return ""
	}
	sorted := make([]text.TextFragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var b strings.Builder
	var line []text.TextFragment
	flush := func() {
		sort.SliceStable(line, func(i, j int) bool { return line[i].X < line[j].X })
		parts := make([]string, 0, len(line))
		for _, f := range line {
			if s := strings.TrimSpace(f.Text); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(strings.Join(parts, " "))
		}
		line = line[:0]
	}
	for _, f := range sorted {
		if len(line) > 0 && math.Abs(line[0].Y-f.Y) > baselineTolerance(line[0]) {
			flush()
		}
		line = append(line, f)
	}
	flush()
	return b.String()
}

func baselineTolerance(f text.TextFragment) float64 {
	if f.FontSize > 0 {
		return math.Max(1, f.FontSize/2)
	}
	return 2
}
