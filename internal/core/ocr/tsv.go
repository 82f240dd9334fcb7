package ocr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

// TSV columns:
// level page_num block_num par_num line_num word_num left top width height conf text
const (
	colLevel = 0
	colLeft  = 6
	colTop   = 7
	colConf  = 10
	colText  = 11

	levelWord = 5
)

// ParseTSV extracts word-level rows from tesseract TSV output. Structural
// rows (levels 1-4) are ignored; a missing text column yields an empty word.
func ParseTSV(out []byte) ([]extract.Word, error) {
	lines := strings.Split(strings.ReplaceAll(string(out), "\r\n", "\n"), "\n")
	var words []extract.Word
	for i, ln := range lines {
		if i == 0 || ln == "" {
			continue
		} // skip header
		cols := strings.Split(ln, "\t")
		if len(cols) < colText {
			continue
		}
		level, err := strconv.Atoi(cols[colLevel])
		if err != nil {
			return nil, fmt.Errorf("tsv line %d: bad level %q", i+1, cols[colLevel])
		}
		if level != levelWord {
			continue
		}
		left, errL := strconv.Atoi(cols[colLeft])
		top, errT := strconv.Atoi(cols[colTop])
		conf, errC := strconv.ParseFloat(cols[colConf], 64)
		if errL != nil || errT != nil || errC != nil {
			return nil, fmt.Errorf("tsv line %d: malformed word row", i+1)
		}
		var text string
		if len(cols) > colText {
			text = strings.Join(cols[colText:], "\t")
		}
		words = append(words, extract.Word{Text: text, Confidence: conf, Left: left, Top: top})
	}
	return words, nil
}
