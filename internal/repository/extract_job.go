package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/gen/ent"
	"github.com/joseph-ayodele/docextract/gen/ent/extractjob"
	"github.com/joseph-ayodele/docextract/internal/common"
)

// Job is one row of the extraction ledger.
type Job struct {
	ID             uuid.UUID
	SourcePath     string
	OutputDir      string
	Status         constants.JobStatus
	Classification constants.Classification
	Strategy       constants.Strategy
	TableCount     int
	ImageCount     int
	TablesPath     string
	DocumentPath   string
	ErrorMessage   string
	StartedAt      time.Time
	FinishedAt     *time.Time
}

// JobResult carries what a successful run produced.
type JobResult struct {
	Classification constants.Classification
	Strategy       constants.Strategy
	TableCount     int
	ImageCount     int
	TablesPath     string
	DocumentPath   string
}

type ExtractJobRepository interface {
	Start(ctx context.Context, sourcePath, outputDir string, status constants.JobStatus) (*Job, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	FinishSuccess(ctx context.Context, jobID uuid.UUID, res JobResult) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	Get(ctx context.Context, jobID uuid.UUID) (*Job, error)
	List(ctx context.Context, limit int) ([]*Job, error)
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(db *DB, log *slog.Logger) ExtractJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &extractJobRepo{ent: db.Client, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, sourcePath, outputDir string, status constants.JobStatus) (*Job, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetSourcePath(sourcePath).
		SetOutputDir(outputDir).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "source", sourcePath, "err", err)
		return nil, dbError("start job", err)
	}
	r.log.Info("extract_job started", "job_id", job.ID, "source", sourcePath, "status", status)
	return toJob(job), nil
}

func (r *extractJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		return jobError(jobID, "mark job running", err)
	}
	return nil
}

func (r *extractJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID, res JobResult) error {
	upd := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusSucceeded)).
		SetTableCount(res.TableCount).
		SetImageCount(res.ImageCount).
		SetFinishedAt(time.Now().UTC())
	if res.Classification != "" {
		upd.SetClassification(string(res.Classification))
	}
	if res.Strategy != "" {
		upd.SetStrategy(string(res.Strategy))
	}
	if res.TablesPath != "" {
		upd.SetTablesPath(res.TablesPath)
	}
	if res.DocumentPath != "" {
		upd.SetDocumentPath(res.DocumentPath)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("extract_job finish(OK) failed", "job_id", jobID, "err", err)
		return jobError(jobID, "finish job", err)
	}
	r.log.Info("extract_job finished (SUCCEEDED)", "job_id", jobID, "tables", res.TableCount, "images", res.ImageCount)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now().UTC()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return jobError(jobID, "fail job", err)
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *extractJobRepo) Get(ctx context.Context, jobID uuid.UUID) (*Job, error) {
	job, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		return nil, jobError(jobID, "get job", err)
	}
	return toJob(job), nil
}

// List returns the most recent jobs first.
func (r *extractJobRepo) List(ctx context.Context, limit int) ([]*Job, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	rows, err := r.ent.ExtractJob.Query().
		Order(ent.Desc(extractjob.FieldStartedAt), ent.Asc(extractjob.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, dbError("list jobs", err)
	}
	out := make([]*Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, toJob(row))
	}
	return out, nil
}

func dbError(op string, err error) error {
	return common.NewAppError("DB_ERROR", op, fmt.Errorf("%w: %w", common.ErrDatabase, err))
}

func jobError(jobID uuid.UUID, op string, err error) error {
	if ent.IsNotFound(err) {
		return common.NewAppError("NOT_FOUND", "job "+jobID.String(), common.ErrNotFound)
	}
	return dbError(op, common.WrapError(err, "job "+jobID.String()))
}

func toJob(e *ent.ExtractJob) *Job {
	job := &Job{
		ID:           e.ID,
		SourcePath:   e.SourcePath,
		OutputDir:    e.OutputDir,
		Status:       constants.JobStatus(e.Status),
		TableCount:   e.TableCount,
		ImageCount:   e.ImageCount,
		TablesPath:   deref(e.TablesPath),
		DocumentPath: deref(e.DocumentPath),
		ErrorMessage: deref(e.ErrorMessage),
		StartedAt:    e.StartedAt,
		FinishedAt:   e.FinishedAt,
	}
	if c, ok := constants.ParseClassification(deref(e.Classification)); ok {
		job.Classification = c
	}
	if e.Strategy != nil {
		job.Strategy = constants.Strategy(*e.Strategy)
	}
	return job
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
