package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one document waiting for extraction.
type Job struct {
	JobID       uuid.UUID // ledger id; Nil when no ledger is configured
	Path        string
	OutputDir   string
	SubmittedAt time.Time
	TraceID     string    // request id carried into the job's context
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
