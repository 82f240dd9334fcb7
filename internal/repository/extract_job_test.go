package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), Config{DSN: filepath.Join(t.TempDir(), "ledger.db")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close(nil) })
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate should be idempotent: %v", err)
	}
	return db
}

func TestJobLifecycle(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	if err := db.HealthCheck(ctx, 0, nil); err != nil {
		t.Fatal(err)
	}
	repo := NewExtractJobRepository(db, nil)

	ok, err := repo.Start(ctx, "/in/a.pdf", "/out/a", constants.JobStatusQueued)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.MarkRunning(ctx, ok.ID); err != nil {
		t.Fatal(err)
	}
	res := JobResult{Classification: constants.Digital, Strategy: constants.StrategyNative, TableCount: 2, ImageCount: 1, TablesPath: "/out/a/a_tables.xlsx"}
	if err := repo.FinishSuccess(ctx, ok.ID, res); err != nil {
		t.Fatal(err)
	}

	bad, err := repo.Start(ctx, "/in/b.pdf", "/out/b", constants.JobStatusRunning)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.FinishFailure(ctx, bad.ID, "open document: not a pdf"); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, ok.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != constants.JobStatusSucceeded || got.TableCount != 2 || got.Strategy != constants.StrategyNative || got.Classification != constants.Digital || got.FinishedAt == nil {
		t.Errorf("job = %+v", got)
	}
	if got.TablesPath != res.TablesPath || got.DocumentPath != "" {
		t.Errorf("paths = %q, %q", got.TablesPath, got.DocumentPath)
	}

	failed, err := repo.Get(ctx, bad.ID)
	if err != nil {
		t.Fatal(err)
	}
	if failed.Status != constants.JobStatusFailed || failed.ErrorMessage == "" {
		t.Errorf("failed job = %+v", failed)
	}

	jobs, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 2 {
		t.Errorf("listed %d jobs, want 2", len(jobs))
	}
}

func TestJobNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewExtractJobRepository(openTestDB(t), nil)
	if _, err := repo.Get(ctx, uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Get err = %v, want ErrNotFound", err)
	}
	if err := repo.FinishFailure(ctx, uuid.New(), "x"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("FinishFailure err = %v, want ErrNotFound", err)
	}
}

func TestSQLiteDSN(t *testing.T) {
	if got := sqliteDSN("ledger.db"); got != "ledger.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)" {
		t.Errorf("sqliteDSN = %q", got)
	}
	if got := sqliteDSN("file:x.db?mode=rwc"); got != "file:x.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)" {
		t.Errorf("sqliteDSN with query = %q", got)
	}
	if got := sqliteDSN(""); got != ":memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)" {
		t.Errorf("sqliteDSN empty = %q", got)
	}
	if DialectFor("postgres://u@h/db") != Postgres || DialectFor("./ledger.db") != SQLite {
		t.Error("DialectFor misclassified")
	}
}

func TestStartRejectsUnknownStatus(t *testing.T) {
	repo := NewExtractJobRepository(openTestDB(t), nil)
	if _, err := repo.Start(context.Background(), "/in/a.pdf", "/out/a", constants.JobStatus("DONE")); !errors.Is(err, common.ErrDatabase) {
		t.Errorf("Start err = %v, want database error", err)
	}
}

func TestOpenLedger(t *testing.T) {
	ctx := context.Background()
	none, err := OpenLedger(ctx, common.DatabaseConfig{}, nil)
	if err != nil || none != nil {
		t.Fatalf("empty DSN: ledger=%v err=%v", none, err)
	}
	if none.Repo() != nil {
		t.Fatal("nil ledger should have no repo")
	}
	none.Close(nil)

	l, err := OpenLedger(ctx, common.DatabaseConfig{DSN: filepath.Join(t.TempDir(), "ledger.db")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close(nil)
	if _, err := l.Repo().List(ctx, 0); err != nil {
		t.Fatal(err)
	}
}
