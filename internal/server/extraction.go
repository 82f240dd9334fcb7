package server

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/pipeline"
	"github.com/joseph-ayodele/docextract/internal/ingest"
	"github.com/joseph-ayodele/docextract/internal/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// Processor runs one extraction.
type Processor interface {
	Process(ctx context.Context, documentPath, outputDir string) (pipeline.Outputs, error)
}

// DirectoryIngestor queues every PDF under a directory.
type DirectoryIngestor interface {
	IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]ingest.IngestionResult, ingest.DirStats, error)
}

// ExtractionService implements docextract.v1.Extraction. jobs and ingestor may
// be nil; the methods that need them then answer FailedPrecondition.
type ExtractionService struct {
	proc     Processor
	jobs     repository.ExtractJobRepository
	ingestor DirectoryIngestor
	outRoot  string
	sem      *semaphore.Weighted
	logger   *slog.Logger
}

var _ ExtractionServer = (*ExtractionService)(nil)

func NewExtractionService(proc Processor, jobs repository.ExtractJobRepository, ingestor DirectoryIngestor, outRoot string, maxConcurrent int64, logger *slog.Logger) *ExtractionService {
	if logger == nil {
		logger = slog.Default()
	}
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &ExtractionService{
		proc:     proc,
		jobs:     jobs,
		ingestor: ingestor,
		outRoot:  outRoot,
		sem:      semaphore.NewWeighted(maxConcurrent),
		logger:   logger,
	}
}

// Process extracts {path} into {output_dir}, or <outRoot>/<base> when output_dir is empty.
func (s *ExtractionService) Process(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	path := strings.TrimSpace(stringField(req, "path"))
	if path == "" {
		s.logger.Error("process request missing path")
		return nil, common.InvalidArgumentError("path is required")
	}
	outDir := strings.TrimSpace(stringField(req, "output_dir"))
	if outDir == "" {
		outDir = ingest.OutputDirFor(s.outRoot, path)
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	defer s.sem.Release(1)

	start := time.Now()
	s.logger.Info("server.process.start", "path", path, "out", outDir)
	out, err := s.proc.Process(ctx, path, outDir)
	if err != nil {
		s.logger.Error("server.process.failed", "path", path, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, toStatus(err, "process failed")
	}
	s.logger.Info("server.process.ok", "path", path, "job_id", out.JobID, "tables", out.Tables, "elapsed_ms", time.Since(start).Milliseconds())

	resp, err := structpb.NewStruct(outputsToMap(out, outDir))
	if err != nil {
		return nil, common.InternalErrorf("encode outputs: %v", err)
	}
	return resp, nil
}

// GetJob returns one ledger row by {job_id}.
func (s *ExtractionService) GetJob(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.jobs == nil {
		return nil, status.Error(codes.FailedPrecondition, "job ledger is not configured")
	}
	raw := strings.TrimSpace(stringField(req, "job_id"))
	v := common.NewValidator().Field("job_id", raw, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	id := uuid.MustParse(raw)
	job, err := s.jobs.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Warn("get job failed", "job_id", id, "error", err)
		}
		return nil, toStatus(err, "get job failed")
	}
	resp, err := structpb.NewStruct(jobToMap(job))
	if err != nil {
		return nil, common.InternalErrorf("encode job: %v", err)
	}
	return resp, nil
}

// ListJobs returns the most recent ledger rows, newest first, up to {limit}.
func (s *ExtractionService) ListJobs(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.jobs == nil {
		return nil, status.Error(codes.FailedPrecondition, "job ledger is not configured")
	}
	limit := int(numberField(req, "limit"))
	if limit < 0 {
		return nil, common.InvalidArgumentError("limit must not be negative")
	}
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	jobs, err := s.jobs.List(ctx, limit)
	if err != nil {
		s.logger.Warn("list jobs failed", "error", err)
		return nil, toStatus(err, "list jobs failed")
	}
	out := make([]any, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobToMap(j))
	}
	resp, err := structpb.NewStruct(map[string]any{"jobs": out})
	if err != nil {
		return nil, common.InternalErrorf("encode jobs: %v", err)
	}
	return resp, nil
}

// IngestDirectory queues every PDF under {root} for background extraction.
func (s *ExtractionService) IngestDirectory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.ingestor == nil {
		return nil, status.Error(codes.FailedPrecondition, "background queue is not configured")
	}
	root := strings.TrimSpace(stringField(req, "root"))
	if root == "" {
		return nil, common.InvalidArgumentError("root is required")
	}
	skipHidden := true
	if v, ok := req.GetFields()["skip_hidden"]; ok {
		skipHidden = v.GetBoolValue()
	}

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, skipHidden)
	if err != nil {
		s.logger.Error("directory ingest failed", "root", root, "error", err)
		return nil, toStatus(err, "ingest directory failed")
	}
	s.logger.Info("directory ingest completed",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)

	items := make([]any, 0, len(results))
	for _, r := range results {
		item := map[string]any{
			"source_path":  r.SourcePath,
			"output_dir":   r.OutputDir,
			"deduplicated": r.Deduplicated,
			"sha256":       r.HashHex,
		}
		if r.JobID != uuid.Nil {
			item["job_id"] = r.JobID.String()
		}
		if r.Err != "" {
			item["error"] = r.Err
		}
		items = append(items, item)
	}
	resp, err := structpb.NewStruct(map[string]any{
		"results": items,
		"stats": map[string]any{
			"scanned":      int64(stats.Scanned),
			"matched":      int64(stats.Matched),
			"succeeded":    int64(stats.Succeeded),
			"deduplicated": int64(stats.Deduplicated),
			"failed":       int64(stats.Failed),
		},
	})
	if err != nil {
		return nil, common.InternalErrorf("encode ingest results: %v", err)
	}
	return resp, nil
}

// toStatus maps a domain error onto a gRPC status. Internal failures keep msg only.
func toStatus(err error, msg string) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrValidation):
		return common.InvalidArgumentError(err.Error())
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError(err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return common.InternalError(msg)
	}
}

func stringField(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

func numberField(req *structpb.Struct, key string) float64 {
	return req.GetFields()[key].GetNumberValue()
}

func outputsToMap(out pipeline.Outputs, outDir string) map[string]any {
	m := map[string]any{
		"output_dir":     filepath.Clean(outDir),
		"classification": string(out.Classification),
		"strategy":       string(out.Strategy),
		"tables":         out.Tables,
		"image_count":    out.ImageCount,
		"tables_path":    out.TablesPath,
		"document_path":  out.DocumentPath,
	}
	if out.JobID != "" {
		m["job_id"] = out.JobID
	}
	attempts := make([]any, 0, len(out.Attempts))
	for _, a := range out.Attempts {
		am := map[string]any{
			"strategy": string(a.Strategy),
			"skipped":  a.Skipped,
			"tables":   a.Tables,
		}
		if a.Err != nil {
			am["error"] = a.Err.Error()
		}
		attempts = append(attempts, am)
	}
	m["attempts"] = attempts
	return m
}

func jobToMap(j *repository.Job) map[string]any {
	m := map[string]any{
		"job_id":         j.ID.String(),
		"source_path":    j.SourcePath,
		"output_dir":     j.OutputDir,
		"status":         string(j.Status),
		"classification": string(j.Classification),
		"strategy":       string(j.Strategy),
		"table_count":    j.TableCount,
		"image_count":    j.ImageCount,
		"tables_path":    j.TablesPath,
		"document_path":  j.DocumentPath,
		"started_at":     j.StartedAt.UTC().Format(time.RFC3339Nano),
	}
	if j.ErrorMessage != "" {
		m["error"] = j.ErrorMessage
	}
	if j.FinishedAt != nil {
		m["finished_at"] = j.FinishedAt.UTC().Format(time.RFC3339Nano)
	}
	return m
}
