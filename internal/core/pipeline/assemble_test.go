package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

func TestSheetNamer(t *testing.T) {
	n := newSheetNamer()
	long := strings.Repeat("L", 40)
	labels := []string{"P1_IA", "P1_IA", "p1_ia", "P2_a/b:c", long, long, long}
	seen := map[string]bool{}
	var got []string
	for _, l := range labels {
		name := n.next(l)
		got = append(got, name)
		key := strings.ToLower(name)
		if seen[key] {
			t.Errorf("duplicate name %q", name)
		}
		seen[key] = true
		if utf8.RuneCountInString(name) > 31 {
			t.Errorf("name %q exceeds 31 characters", name)
		}
	}
	want := []string{"P1_IA", "P1_IA_1", "p1_ia_2", "P2_a_b_c", strings.Repeat("L", 31), strings.Repeat("L", 29) + "_1", strings.Repeat("L", 29) + "_2"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAssemble(t *testing.T) {
	wb := &fakeWorkbook{}
	caps := (&Capabilities{NewWorkbook: func() Workbook { return wb }}).withDefaults(nil)
	a := NewAssembler(caps, nil)

	path, err := a.Assemble(context.Background(), extract.Result{}, "/out", "doc")
	if err != nil || path != "" {
		t.Fatalf("empty result: path=%q err=%v", path, err)
	}
	if wb.saved != "" {
		t.Fatal("empty result must not write a workbook")
	}

	res := extract.Result{Tables: []extract.Table{
		{Label: "P1_IA", Header: []string{"a"}},
		{Label: "P1_IA"},
	}}
	path, err = a.Assemble(context.Background(), res, "/out", "doc")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/out", "doc_tables.xlsx") || wb.saved != path {
		t.Errorf("path = %q saved = %q", path, wb.saved)
	}
	if len(wb.sheets) != 2 || wb.sheets[1].name != "P1_IA_1" {
		t.Errorf("sheets = %+v", wb.sheets)
	}

	failing := &fakeWorkbook{saveErr: errors.New("disk full")}
	caps.NewWorkbook = func() Workbook { return failing }
	if _, err := a.Assemble(context.Background(), res, "/out", "doc"); !errors.Is(err, common.ErrSession) {
		t.Errorf("err = %v, want session failure", err)
	}
}
