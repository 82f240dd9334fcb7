package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/pipeline"
	"github.com/joseph-ayodele/docextract/internal/repository"
	"github.com/joseph-ayodele/docextract/internal/utils"
)

// Processor is the extraction entry point: it validates the input, records the run
// in the job ledger when one is configured, and runs the pipeline.
type Processor struct {
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
	jobsRepo repository.ExtractJobRepository
}

// NewProcessor builds a processor. jobsRepo may be nil to run without a ledger.
func NewProcessor(logger *slog.Logger, caps *pipeline.Capabilities, jobsRepo repository.ExtractJobRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:   logger,
		pipeline: pipeline.New(caps, logger),
		jobsRepo: jobsRepo,
	}
}

// Jobs returns the ledger, or nil.
func (p *Processor) Jobs() repository.ExtractJobRepository { return p.jobsRepo }

// Process extracts documentPath into outputDir, used as given.
func (p *Processor) Process(ctx context.Context, documentPath, outputDir string) (pipeline.Outputs, error) {
	jobID := uuid.Nil
	if p.jobsRepo != nil {
		job, err := p.jobsRepo.Start(ctx, documentPath, outputDir, constants.JobStatusRunning)
		if err != nil {
			p.logger.Warn("processor.ledger.start_failed", "path", documentPath, "error", err)
		} else {
			jobID = job.ID
		}
	}
	return p.run(ctx, jobID, documentPath, outputDir)
}

// Submit records a queued job and returns its id; ProcessJob runs it later.
// Without a ledger the returned id is Nil.
func (p *Processor) Submit(ctx context.Context, documentPath, outputDir string) (uuid.UUID, error) {
	if p.jobsRepo == nil {
		return uuid.Nil, nil
	}
	job, err := p.jobsRepo.Start(ctx, documentPath, outputDir, constants.JobStatusQueued)
	if err != nil {
		return uuid.Nil, err
	}
	return job.ID, nil
}

// ProcessJob runs a job created by Submit.
func (p *Processor) ProcessJob(ctx context.Context, jobID uuid.UUID, documentPath, outputDir string) (pipeline.Outputs, error) {
	if p.jobsRepo != nil && jobID != uuid.Nil {
		if err := p.jobsRepo.MarkRunning(ctx, jobID); err != nil {
			p.logger.Warn("processor.ledger.mark_running_failed", "job_id", jobID, "error", err)
		}
	}
	return p.run(ctx, jobID, documentPath, outputDir)
}

func (p *Processor) run(ctx context.Context, jobID uuid.UUID, documentPath, outputDir string) (pipeline.Outputs, error) {
	start := time.Now()
	if jobID != uuid.Nil {
		ctx = common.WithJobID(ctx, jobID.String())
	}
	p.logger.Info("processor.start", "job_id", jobID, "path", documentPath, "out", outputDir)

	out, err := p.process(ctx, documentPath, outputDir)
	if jobID != uuid.Nil {
		out.JobID = jobID.String()
	}
	if err != nil {
		p.logger.Error("processor.failed",
			"job_id", jobID,
			"path", documentPath,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		p.finishFailure(ctx, jobID, err)
		return out, err
	}

	p.finishSuccess(ctx, jobID, out)
	p.logger.Info("processor.done",
		"job_id", jobID,
		"path", documentPath,
		"tables", out.Tables,
		"images", out.ImageCount,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (p *Processor) process(ctx context.Context, documentPath, outputDir string) (pipeline.Outputs, error) {
	v := common.NewValidator().
		Field("document_path", documentPath, common.Required, common.PDFPath).
		Field("output_dir", outputDir, common.Required)
	if v.HasErrors() {
		return pipeline.Outputs{}, common.SessionError(v.ErrorMessage(), common.ErrInvalidInput)
	}
	if err := utils.EnsureDir(outputDir); err != nil {
		return pipeline.Outputs{}, common.SessionError("create output dir", err)
	}
	return p.pipeline.Run(ctx, documentPath, outputDir)
}

// ledger writes use a detached context so a cancelled run is still recorded
func (p *Processor) finishFailure(ctx context.Context, jobID uuid.UUID, cause error) {
	if p.jobsRepo == nil || jobID == uuid.Nil {
		return
	}
	lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := p.jobsRepo.FinishFailure(lctx, jobID, cause.Error()); err != nil {
		p.logger.Warn("processor.ledger.finish_failed", "job_id", jobID, "error", err)
	}
}

func (p *Processor) finishSuccess(ctx context.Context, jobID uuid.UUID, out pipeline.Outputs) {
	if p.jobsRepo == nil || jobID == uuid.Nil {
		return
	}
	lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	res := repository.JobResult{
		Classification: out.Classification,
		Strategy:       out.Strategy,
		TableCount:     out.Tables,
		ImageCount:     out.ImageCount,
		TablesPath:     out.TablesPath,
		DocumentPath:   out.DocumentPath,
	}
	if err := p.jobsRepo.FinishSuccess(lctx, jobID, res); err != nil {
		p.logger.Warn("processor.ledger.finish_failed", "job_id", jobID, "error", err)
	}
}
