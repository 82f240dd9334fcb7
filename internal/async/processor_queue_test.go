package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/pipeline"
)

type recordingProcessor struct {
	mu     sync.Mutex
	paths  []string
	traces []string
	fail   map[string]bool
}

func (r *recordingProcessor) ProcessJob(ctx context.Context, _ uuid.UUID, path, _ string) (pipeline.Outputs, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	r.traces = append(r.traces, common.RequestIDFromContext(ctx))
	if r.fail[path] {
		return pipeline.Outputs{}, errors.New("boom")
	}
	return pipeline.Outputs{Tables: 1}, nil
}

func TestQueueProcessesInOrder(t *testing.T) {
	proc := &recordingProcessor{fail: map[string]bool{"b.pdf": true}}
	q := NewProcessorQueue(proc, nil, WithWorkers(1), WithQueueSize(4), WithProcessTimeout(time.Second))

	for _, p := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		if err := q.Enqueue(context.Background(), Job{Path: p}); err != nil {
			t.Fatal(err)
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.paths) != 3 || proc.paths[0] != "a.pdf" || proc.paths[2] != "c.pdf" {
		t.Errorf("processed = %v", proc.paths)
	}
}

func TestEnqueueAfterShutdown(t *testing.T) {
	q := NewProcessorQueue(&recordingProcessor{}, nil)
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
	if err := q.Enqueue(context.Background(), Job{Path: "late.pdf"}); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("err = %v, want ErrQueueClosed", err)
	}
}

func TestQueueCarriesTraceID(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewProcessorQueue(proc, nil)
	if err := q.Enqueue(context.Background(), Job{Path: "a.pdf", TraceID: "trace-1"}); err != nil {
		t.Fatal(err)
	}
	q.Shutdown(context.Background())

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.traces) != 1 || proc.traces[0] != "trace-1" {
		t.Errorf("traces = %v", proc.traces)
	}
}
