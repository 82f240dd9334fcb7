package pipeline

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/utils"
)

var sheetNameReplacer = strings.NewReplacer(
	"[", "_", "]", "_", ":", "_", "*", "_", "?", "_", "/", "_", `\`, "_",
)

// Assembler writes extracted tables into one workbook.
type Assembler struct {
	caps   *Capabilities
	logger *slog.Logger
}

func NewAssembler(caps *Capabilities, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{caps: caps, logger: logger}
}

// Assemble writes <outDir>/<base>_tables.xlsx. An empty result writes nothing and
// returns an empty path.
func (a *Assembler) Assemble(ctx context.Context, res extract.Result, outDir, base string) (string, error) {
	if len(res.Tables) == 0 {
		return "", nil
	}
	start := time.Now()
	logger := common.LoggerFrom(ctx, a.logger)
	wb := a.caps.NewWorkbook()
	names := newSheetNamer()
	for _, t := range res.Tables {
		name := names.next(t.Label)
		if err := wb.AddSheet(name, t.Header, t.Rows); err != nil {
			return "", common.SessionError("write sheet "+name, err)
		}
	}
	path := utils.OutputPath(outDir, base, constants.TablesSuffix)
	if err := wb.SaveAs(path); err != nil {
		return "", common.SessionError("save workbook", err)
	}
	logger.Info("pipeline.assemble.ok",
		"path", path,
		"tables", len(res.Tables),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return path, nil
}

// sheetNamer hands out legal sheet names that are unique within one workbook,
// compared case-insensitively.
type sheetNamer struct {
	used map[string]struct{}
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{used: make(map[string]struct{})}
}

func (n *sheetNamer) next(label string) string {
	base := sheetNameReplacer.Replace(label)
	base = strings.Trim(base, "'")
	if base == "" {
		base = "Sheet"
	}
	name := truncateRunes(base, constants.MaxSheetNameLen)
	for counter := 1; n.taken(name); counter++ {
		suffix := "_" + strconv.Itoa(counter)
		name = truncateRunes(base, constants.MaxSheetNameLen-len(suffix)) + suffix
	}
	n.used[strings.ToLower(name)] = struct{}{}
	return name
}

func (n *sheetNamer) taken(name string) bool {
	_, ok := n.used[strings.ToLower(name)]
	return ok
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
