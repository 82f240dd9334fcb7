package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/core/pipeline"
	"github.com/joseph-ayodele/docextract/internal/repository"
)

type stubDoc struct{ path string }

func (d stubDoc) Path() string   { return d.path }
func (d stubDoc) PageCount() int { return 1 }
func (d stubDoc) PageText(context.Context, int) (string, error) {
	return "Nombre Edad Ciudad Nombre Edad Ciudad Nombre Edad Ciudad Nombre", nil
}
func (d stubDoc) FindTables(_ context.Context, _ int, s extract.TableSettings) ([]extract.Grid, error) {
	if s.Mode != extract.TableModeLines {
		return nil, nil
	}
	return []extract.Grid{{{"Nombre", "Edad"}, {"Ana", "30"}}}, nil
}
func (d stubDoc) Rasterize(context.Context, int, float64) ([]byte, error) {
	return nil, errors.New("no rasterizer")
}
func (d stubDoc) Images(context.Context, int) ([]extract.EmbeddedImage, error) { return nil, nil }
func (d stubDoc) Close() error                                                  { return nil }

type stubOpener struct{ err error }

func (o stubOpener) Open(_ context.Context, path string) (extract.Document, error) {
	if o.err != nil {
		return nil, o.err
	}
	return stubDoc{path: path}, nil
}

func writePDF(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte("%PDF-1.4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func newLedger(t *testing.T) repository.ExtractJobRepository {
	t.Helper()
	db, err := repository.Open(context.Background(), repository.Config{DSN: filepath.Join(t.TempDir(), "jobs.db")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close(nil) })
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatal(err)
	}
	return repository.NewExtractJobRepository(db, nil)
}

func TestProcessRecordsSuccess(t *testing.T) {
	ctx := context.Background()
	jobs := newLedger(t)
	p := NewProcessor(nil, &pipeline.Capabilities{Opener: stubOpener{}}, jobs)

	in := writePDF(t, "planilla.pdf")
	outDir := filepath.Join(t.TempDir(), "planilla")
	out, err := p.Process(ctx, in, outDir)
	if err != nil {
		t.Fatal(err)
	}
	if out.Tables != 1 || out.TablesPath != filepath.Join(outDir, "planilla_tables.xlsx") {
		t.Errorf("outputs = %+v", out)
	}
	if _, err := os.Stat(out.TablesPath); err != nil {
		t.Error(err)
	}

	id, err := uuid.Parse(out.JobID)
	if err != nil {
		t.Fatalf("job id %q: %v", out.JobID, err)
	}
	job, err := jobs.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if job.Status != constants.JobStatusSucceeded || job.TableCount != 1 || job.Classification != "DIGITAL" {
		t.Errorf("job = %+v", job)
	}
}

func TestProcessSessionFailures(t *testing.T) {
	ctx := context.Background()
	jobs := newLedger(t)

	p := NewProcessor(nil, &pipeline.Capabilities{Opener: stubOpener{}}, jobs)
	out, err := p.Process(ctx, filepath.Join(t.TempDir(), "notes.txt"), t.TempDir())
	if !errors.Is(err, common.ErrSession) || !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid-input session failure", err)
	}
	id, _ := uuid.Parse(out.JobID)
	if job, err := jobs.Get(ctx, id); err != nil || job.Status != constants.JobStatusFailed {
		t.Errorf("job = %+v err=%v", job, err)
	}

	p = NewProcessor(nil, &pipeline.Capabilities{Opener: stubOpener{err: errors.New("encrypted")}}, nil)
	if _, err := p.Process(ctx, writePDF(t, "x.pdf"), t.TempDir()); !errors.Is(err, common.ErrSession) {
		t.Errorf("err = %v, want session failure", err)
	}
}

func TestSubmitThenProcessJob(t *testing.T) {
	ctx := context.Background()
	jobs := newLedger(t)
	p := NewProcessor(nil, &pipeline.Capabilities{Opener: stubOpener{}}, jobs)

	in := writePDF(t, "a.pdf")
	id, err := p.Submit(ctx, in, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if job, _ := jobs.Get(ctx, id); job == nil || job.Status != constants.JobStatusQueued {
		t.Fatalf("queued job = %+v", job)
	}
	if _, err := p.ProcessJob(ctx, id, in, t.TempDir()); err != nil {
		t.Fatal(err)
	}
	if job, _ := jobs.Get(ctx, id); job == nil || job.Status != constants.JobStatusSucceeded {
		t.Errorf("finished job = %+v", job)
	}

	noLedger := NewProcessor(nil, &pipeline.Capabilities{Opener: stubOpener{}}, nil)
	if id, err := noLedger.Submit(ctx, in, t.TempDir()); err != nil || id != uuid.Nil {
		t.Errorf("Submit without ledger = %v, %v", id, err)
	}
}
