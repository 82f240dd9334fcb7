package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

// Outputs describes what one run produced. Empty paths mean the artifact was not written.
type Outputs struct {
	JobID          string                   `json:"job_id,omitempty"`
	TablesPath     string                   `json:"tables_path,omitempty"`
	DocumentPath   string                   `json:"document_path,omitempty"`
	ImageCount     int                      `json:"image_count"`
	Classification constants.Classification `json:"classification"`
	Strategy       constants.Strategy       `json:"strategy,omitempty"`
	Tables         int                      `json:"tables"`
	Attempts       []extract.Attempt        `json:"-"`
}

// Pipeline coordinates table extraction, assembly, text synthesis and image export
// for one opened document.
type Pipeline struct {
	caps      *Capabilities
	logger    *slog.Logger
	orch      *Orchestrator
	assembler *Assembler
	text      *TextSynthesizer
	images    *ImageExtractor
}

func New(caps *Capabilities, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	caps = caps.withDefaults(logger)
	return &Pipeline{
		caps:      caps,
		logger:    logger,
		orch:      NewOrchestrator(caps, logger),
		assembler: NewAssembler(caps, logger),
		text:      NewTextSynthesizer(caps, logger),
		images:    NewImageExtractor(logger),
	}
}

// Run opens path and writes every artifact into outDir, which must exist.
// Only session failures are returned; strategy and artifact failures are logged.
func (p *Pipeline) Run(ctx context.Context, path, outDir string) (Outputs, error) {
	logger := common.LoggerFrom(ctx, p.logger)
	start := time.Now()
	s, err := OpenSession(ctx, p.caps.Opener, path, p.logger)
	if err != nil {
		return Outputs{}, err
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Warn("pipeline.session.close_failed", "path", path, "error", err)
		}
	}()

	// 1) tables: classify and walk the strategy plan
	res := p.orch.ExtractTables(ctx, s)

	// 2) workbook
	tablesPath, err := p.assembler.Assemble(ctx, res, outDir, constants.BaseName(path))
	if err != nil {
		return Outputs{}, err
	}

	// 3) editable document, then 4) images
	docPath, _ := p.text.Synthesize(ctx, s, outDir)
	images := p.images.Extract(ctx, s.Document(), outDir)

	out := Outputs{
		TablesPath:     tablesPath,
		DocumentPath:   docPath,
		ImageCount:     images,
		Classification: res.Classification,
		Strategy:       res.Strategy,
		Tables:         len(res.Tables),
		Attempts:       res.Attempts,
	}
	logger.Info("pipeline.run.ok",
		"path", path,
		"classification", out.Classification,
		"strategy", out.Strategy,
		"tables", out.Tables,
		"images", out.ImageCount,
		"has_document", out.DocumentPath != "",
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
