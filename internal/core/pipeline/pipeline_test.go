package pipeline

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

func TestRunDigital(t *testing.T) {
	dir := t.TempDir()
	doc := &fakeDoc{
		path:  "/in/ventas.pdf",
		texts: []string{longText(), longText()},
		grids: map[gridKey][]extract.Grid{
			{1, extract.TableModeLines}: {{{"Name", "Age"}, {"Ana", "30"}, {"Luis", "41"}}},
		},
		images: map[int][]extract.EmbeddedImage{0: {{Data: []byte{0xff, 0xd8}, Ext: "jpg"}}},
	}
	caps := &Capabilities{Opener: &fakeOpener{doc: doc}, Converter: &fakeConverter{}}

	out, err := New(caps, nil).Run(context.Background(), doc.path, dir)
	if err != nil {
		t.Fatal(err)
	}
	if out.Classification != constants.Digital || out.Strategy != constants.StrategyNative || out.Tables != 1 {
		t.Errorf("outputs = %+v", out)
	}
	if out.TablesPath != filepath.Join(dir, "ventas_tables.xlsx") || out.DocumentPath != filepath.Join(dir, "ventas_edit.docx") {
		t.Errorf("paths = %q, %q", out.TablesPath, out.DocumentPath)
	}
	if out.ImageCount != 1 {
		t.Errorf("images = %d", out.ImageCount)
	}
	if !doc.closed {
		t.Error("session not closed")
	}

	f, err := excelize.OpenFile(out.TablesPath)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("P2_Nativa")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || rows[0][0] != "Name" || rows[2][1] != "41" {
		t.Errorf("sheet rows = %v", rows)
	}
}

func TestRunScannedNothingAvailable(t *testing.T) {
	dir := t.TempDir()
	doc := &fakeDoc{texts: []string{"", ""}}
	out, err := New(&Capabilities{Opener: &fakeOpener{doc: doc}}, nil).Run(context.Background(), "/in/scan.pdf", dir)
	if err != nil {
		t.Fatal(err)
	}
	if out.TablesPath != "" || out.DocumentPath != "" || out.ImageCount != 0 || out.Tables != 0 {
		t.Errorf("outputs = %+v", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "scan_tables.xlsx")); !os.IsNotExist(err) {
		t.Error("no workbook should be written")
	}
}

func TestRunOpenFailure(t *testing.T) {
	caps := &Capabilities{Opener: &fakeOpener{err: errors.New("not a pdf")}}
	if _, err := New(caps, nil).Run(context.Background(), "/in/x.pdf", t.TempDir()); !errors.Is(err, common.ErrSession) {
		t.Errorf("err = %v, want session failure", err)
	}
}

func TestRunLogsCarryJobID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	doc := &fakeDoc{
		texts: []string{longText()},
		grids: map[gridKey][]extract.Grid{
			{0, extract.TableModeLines}: {{{"Name", "Age"}, {"Ana", "30"}, {"Luis", "41"}}},
		},
	}
	ctx := common.WithJobID(context.Background(), "job-42")
	if _, err := New(&Capabilities{Opener: &fakeOpener{doc: doc}}, logger).Run(ctx, "/in/ventas.pdf", t.TempDir()); err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatal(err)
		}
		msg, _ := rec["msg"].(string)
		if !strings.HasPrefix(msg, "pipeline.") {
			continue
		}
		if rec["job_id"] != "job-42" {
			t.Errorf("%s: job_id = %v", msg, rec["job_id"])
		}
		seen[msg] = true
	}
	for _, want := range []string{"pipeline.classify", "pipeline.strategy.done", "pipeline.assemble.ok", "pipeline.run.ok"} {
		if !seen[want] {
			t.Errorf("missing %s event", want)
		}
	}
}
