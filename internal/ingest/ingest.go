package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/async"
)

// IngestionResult is the per-file ingest outcome.
type IngestionResult struct {
	SourcePath   string
	OutputDir    string
	JobID        uuid.UUID
	Deduplicated bool
	HashHex      string
	QueuedAt     time.Time
	TraceID      string
	Err          string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Submitter records a job before it is queued.
type Submitter interface {
	Submit(ctx context.Context, path, outputDir string) (uuid.UUID, error)
}

// Dispatcher turns discovered PDFs into queued extraction jobs. A file whose
// content was already queued by this process is skipped.
type Dispatcher struct {
	submitter Submitter
	queue     async.Queue
	outRoot   string
	logger    *slog.Logger

	mu   sync.Mutex
	seen map[string]struct{}
}

func NewDispatcher(submitter Submitter, queue async.Queue, outRoot string, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		submitter: submitter,
		queue:     queue,
		outRoot:   outRoot,
		logger:    logger,
		seen:      make(map[string]struct{}),
	}
}

// IngestPath queues one file into <outRoot>/<base>.
func (d *Dispatcher) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return IngestionResult{SourcePath: path}, fmt.Errorf("abs path: %w", err)
	}
	res := IngestionResult{SourcePath: abs, OutputDir: OutputDirFor(d.outRoot, abs)}
	if !constants.IsAllowed(abs) {
		return res, fmt.Errorf("unsupported or missing extension: %q", filepath.Ext(abs))
	}

	sum, err := hashFile(abs)
	if err != nil {
		return res, err
	}
	res.HashHex = sum

	d.mu.Lock()
	_, dup := d.seen[sum]
	if !dup {
		d.seen[sum] = struct{}{}
	}
	d.mu.Unlock()
	if dup {
		res.Deduplicated = true
		d.logger.Info("ingest.deduplicated", "path", abs, "sha256", sum)
		return res, nil
	}

	if d.submitter != nil {
		id, err := d.submitter.Submit(ctx, abs, res.OutputDir)
		if err != nil {
			d.forget(sum)
			return res, fmt.Errorf("submit: %w", err)
		}
		res.JobID = id
	}
	res.QueuedAt = time.Now().UTC()
	res.TraceID = uuid.NewString()
	job := async.Job{JobID: res.JobID, Path: abs, OutputDir: res.OutputDir, SubmittedAt: res.QueuedAt, TraceID: res.TraceID}
	if err := d.queue.Enqueue(ctx, job); err != nil {
		d.forget(sum)
		return res, fmt.Errorf("enqueue: %w", err)
	}
	return res, nil
}

// IngestDirectory walks root and queues every matching file.
func (d *Dispatcher) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}
	var (
		results []IngestionResult
		stats   DirStats
	)
	err := filepath.WalkDir(root, func(path string, e fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && path != root && IsHidden(path) {
			if e.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if e.IsDir() {
			return nil
		}
		stats.Scanned++
		if !constants.IsAllowed(path) {
			return nil
		}
		stats.Matched++
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := d.IngestPath(ctx, path)
		switch {
		case err != nil:
			res.Err = err.Error()
			stats.Failed++
		case res.Deduplicated:
			stats.Deduplicated++
		default:
			stats.Succeeded++
		}
		results = append(results, res)
		return nil
	})
	return results, stats, err
}

func (d *Dispatcher) forget(sum string) {
	d.mu.Lock()
	delete(d.seen, sum)
	d.mu.Unlock()
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
