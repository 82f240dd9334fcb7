package pipeline

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

var controlChars = regexp.MustCompile(`[\x{0000}-\x{001F}\x{007F}-\x{009F}]`)

// cleanText strips control characters and surrounding whitespace.
func cleanText(s string) string {
	return strings.TrimSpace(controlChars.ReplaceAllString(s, ""))
}

func toCell(s string) extract.Cell {
	t := cleanText(s)
	return extract.Cell{Text: t, Present: t != ""}
}

// normalizeRow cleans row and pads or truncates it to width.
func normalizeRow(row []string, width int) []extract.Cell {
	out := make([]extract.Cell, width)
	for i := 0; i < width && i < len(row); i++ {
		out[i] = toCell(row[i])
	}
	return out
}

func isBlankRow(row []extract.Cell) bool {
	for _, c := range row {
		if c.Present {
			return false
		}
	}
	return true
}

// headedTable builds a table whose first grid row is the header.
func headedTable(grid extract.Grid) (header []string, rows [][]extract.Cell) {
	if len(grid) == 0 {
		return nil, nil
	}
	header = safeHeaders(grid[0])
	rows = make([][]extract.Cell, 0, len(grid)-1)
	for _, r := range grid[1:] {
		rows = append(rows, normalizeRow(r, len(header)))
	}
	return header, rows
}
