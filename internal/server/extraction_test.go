package server

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/core/pipeline"
	"github.com/joseph-ayodele/docextract/internal/ingest"
	"github.com/joseph-ayodele/docextract/internal/repository"
)

type fakeProcessor struct {
	mu    sync.Mutex
	calls [][2]string
	out   pipeline.Outputs
	err   error
	block chan struct{}
}

func (p *fakeProcessor) Process(ctx context.Context, path, outDir string) (pipeline.Outputs, error) {
	p.mu.Lock()
	p.calls = append(p.calls, [2]string{path, outDir})
	p.mu.Unlock()
	if p.block != nil {
		select {
		case <-p.block:
		case <-ctx.Done():
			return pipeline.Outputs{}, ctx.Err()
		}
	}
	return p.out, p.err
}

type fakeIngestor struct {
	root string
}

func (f *fakeIngestor) IngestDirectory(_ context.Context, root string, _ bool) ([]ingest.IngestionResult, ingest.DirStats, error) {
	f.root = root
	res := []ingest.IngestionResult{{SourcePath: filepath.Join(root, "a.pdf"), OutputDir: "/out/a", JobID: uuid.New()}}
	return res, ingest.DirStats{Scanned: 2, Matched: 1, Succeeded: 1}, nil
}

func startServer(t *testing.T, svc *ExtractionService) *ExtractionClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	RegisterExtractionServer(srv, svc)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return NewExtractionClient(conn)
}

func request(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(fields)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func openLedger(t *testing.T) repository.ExtractJobRepository {
	t.Helper()
	ctx := context.Background()
	db, err := repository.Open(ctx, repository.Config{DSN: filepath.Join(t.TempDir(), "ledger.db")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close(nil) })
	if err := db.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	return repository.NewExtractJobRepository(db, nil)
}

func TestProcess(t *testing.T) {
	proc := &fakeProcessor{out: pipeline.Outputs{
		JobID:          "job-1",
		TablesPath:     "/out/report/report_tables.xlsx",
		Classification: constants.Digital,
		Strategy:       constants.StrategyNative,
		Tables:         2,
		ImageCount:     1,
		Attempts:       []extract.Attempt{{Strategy: constants.StrategyNative, Tables: 2}},
	}}
	client := startServer(t, NewExtractionService(proc, nil, nil, "/out", 1, nil))
	ctx := context.Background()

	resp, err := client.Process(ctx, request(t, map[string]any{"path": "/in/report.pdf"}))
	if err != nil {
		t.Fatal(err)
	}
	if got := proc.calls[0][1]; got != filepath.Join("/out", "report") {
		t.Fatalf("default output dir = %q", got)
	}
	f := resp.GetFields()
	if f["tables"].GetNumberValue() != 2 || f["strategy"].GetStringValue() != "Nativa" || f["job_id"].GetStringValue() != "job-1" {
		t.Fatalf("unexpected response: %v", resp)
	}
	if n := len(f["attempts"].GetListValue().GetValues()); n != 1 {
		t.Fatalf("attempts = %d", n)
	}

	if _, err := client.Process(ctx, request(t, map[string]any{"path": "/in/x.pdf", "output_dir": "/custom"})); err != nil {
		t.Fatal(err)
	}
	if got := proc.calls[1][1]; got != "/custom" {
		t.Fatalf("explicit output dir = %q", got)
	}
}

func TestProcessErrors(t *testing.T) {
	tests := []struct {
		name string
		req  map[string]any
		err  error
		code codes.Code
	}{
		{"missing path", map[string]any{}, nil, codes.InvalidArgument},
		{"invalid input", map[string]any{"path": "/in/a.txt"}, common.SessionError("bad", common.ErrInvalidInput), codes.InvalidArgument},
		{"session failure", map[string]any{"path": "/in/a.pdf"}, common.SessionError("open", errors.New("corrupt")), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := startServer(t, NewExtractionService(&fakeProcessor{err: tt.err}, nil, nil, "/out", 1, nil))
			_, err := client.Process(context.Background(), request(t, tt.req))
			if status.Code(err) != tt.code {
				t.Fatalf("code = %v, want %v (%v)", status.Code(err), tt.code, err)
			}
		})
	}
}

func TestProcessConcurrencyLimit(t *testing.T) {
	proc := &fakeProcessor{block: make(chan struct{})}
	client := startServer(t, NewExtractionService(proc, nil, nil, "/out", 1, nil))

	done := make(chan error, 1)
	go func() {
		_, err := client.Process(context.Background(), request(t, map[string]any{"path": "/in/a.pdf"}))
		done <- err
	}()
	deadline := time.Now().Add(2 * time.Second)
	for {
		proc.mu.Lock()
		n := len(proc.calls)
		proc.mu.Unlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("first request never reached the processor")
		}
		time.Sleep(5 * time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := client.Process(ctx, request(t, map[string]any{"path": "/in/b.pdf"}))
	if status.Code(err) != codes.DeadlineExceeded {
		t.Fatalf("second request: %v", err)
	}
	proc.mu.Lock()
	if len(proc.calls) != 1 {
		t.Fatalf("second request ran while the first held the slot")
	}
	proc.mu.Unlock()

	close(proc.block)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
}

func TestJobs(t *testing.T) {
	ctx := context.Background()
	jobs := openLedger(t)
	job, err := jobs.Start(ctx, "/in/a.pdf", "/out/a", constants.JobStatusRunning)
	if err != nil {
		t.Fatal(err)
	}
	if err := jobs.FinishSuccess(ctx, job.ID, repository.JobResult{Classification: "DIGITAL", Strategy: "Nativa", TableCount: 3}); err != nil {
		t.Fatal(err)
	}
	client := startServer(t, NewExtractionService(&fakeProcessor{}, jobs, nil, "/out", 1, nil))

	got, err := client.GetJob(ctx, request(t, map[string]any{"job_id": job.ID.String()}))
	if err != nil {
		t.Fatal(err)
	}
	f := got.GetFields()
	if f["status"].GetStringValue() != string(constants.JobStatusSucceeded) || f["table_count"].GetNumberValue() != 3 {
		t.Fatalf("unexpected job: %v", got)
	}
	if f["finished_at"].GetStringValue() == "" {
		t.Fatal("finished_at missing")
	}

	list, err := client.ListJobs(ctx, request(t, map[string]any{}))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(list.GetFields()["jobs"].GetListValue().GetValues()); n != 1 {
		t.Fatalf("jobs = %d", n)
	}

	_, err = client.GetJob(ctx, request(t, map[string]any{"job_id": uuid.NewString()}))
	if status.Code(err) != codes.NotFound {
		t.Fatalf("unknown job: %v", err)
	}
	_, err = client.GetJob(ctx, request(t, map[string]any{"job_id": "nope"}))
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("bad id: %v", err)
	}
	_, err = client.ListJobs(ctx, request(t, map[string]any{"limit": -1}))
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("negative limit: %v", err)
	}
}

func TestWithoutLedgerOrQueue(t *testing.T) {
	client := startServer(t, NewExtractionService(&fakeProcessor{}, nil, nil, "/out", 1, nil))
	ctx := context.Background()

	_, err := client.ListJobs(ctx, request(t, map[string]any{}))
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("ListJobs: %v", err)
	}
	_, err = client.IngestDirectory(ctx, request(t, map[string]any{"root": "/in"}))
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("IngestDirectory: %v", err)
	}
}

func TestIngestDirectory(t *testing.T) {
	ing := &fakeIngestor{}
	client := startServer(t, NewExtractionService(&fakeProcessor{}, nil, ing, "/out", 1, nil))

	resp, err := client.IngestDirectory(context.Background(), request(t, map[string]any{"root": "/in"}))
	if err != nil {
		t.Fatal(err)
	}
	if ing.root != "/in" {
		t.Fatalf("root = %q", ing.root)
	}
	stats := resp.GetFields()["stats"].GetStructValue().GetFields()
	if stats["matched"].GetNumberValue() != 1 || stats["scanned"].GetNumberValue() != 2 {
		t.Fatalf("stats = %v", stats)
	}
	results := resp.GetFields()["results"].GetListValue().GetValues()
	if len(results) != 1 || results[0].GetStructValue().GetFields()["job_id"].GetStringValue() == "" {
		t.Fatalf("results = %v", results)
	}
}
