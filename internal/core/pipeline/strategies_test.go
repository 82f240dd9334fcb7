package pipeline

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

func TestNativeLinesFirst(t *testing.T) {
	doc := &fakeDoc{
		texts: []string{"", ""},
		grids: map[gridKey][]extract.Grid{
			{1, extract.TableModeLines}: {{{"Name", "Age"}, {"Ana", "30"}, {"Luis", "41"}}},
		},
	}
	tables, err := NewNativeExtractor(nil).Extract(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	tb := tables[0]
	if tb.Label != "P2_Nativa" || tb.Page != 2 || tb.Strategy != constants.StrategyNative {
		t.Errorf("table = %+v", tb)
	}
	if !reflect.DeepEqual(tb.Header, []string{"Name", "Age"}) || len(tb.Rows) != 2 {
		t.Errorf("header=%v rows=%v", tb.Header, tb.Rows)
	}
	want := []gridKey{
		{0, extract.TableModeLines}, {0, extract.TableModeText},
		{1, extract.TableModeLines},
	}
	if !reflect.DeepEqual(doc.tableCalls, want) {
		t.Errorf("calls = %v, want %v", doc.tableCalls, want)
	}
}

func TestNativeTextFallback(t *testing.T) {
	text := []extract.Grid{{{"A", "B"}, {"1", "2"}}}
	tests := []struct {
		name    string
		lines   []extract.Grid
		lineErr error
		useText bool
	}{
		{"no line grids", nil, nil, true},
		{"line call fails", nil, errors.New("no content stream"), true},
		{"single column first row", []extract.Grid{{{"only"}, {"x"}}}, nil, true},
		{"two columns", []extract.Grid{{{"L1", "L2"}, {"a", "b"}}}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &fakeDoc{
				texts: []string{""},
				grids: map[gridKey][]extract.Grid{
					{0, extract.TableModeLines}: tt.lines,
					{0, extract.TableModeText}:  text,
				},
				gridErr: map[gridKey]error{{0, extract.TableModeLines}: tt.lineErr},
			}
			tables, _ := NewNativeExtractor(nil).Extract(context.Background(), doc)
			if len(tables) != 1 {
				t.Fatalf("got %d tables", len(tables))
			}
			gotText := tables[0].Header[0] == "A"
			if gotText != tt.useText {
				t.Errorf("used text mode = %v, want %v", gotText, tt.useText)
			}
		})
	}
}

func TestNativeKeepsAndLabels(t *testing.T) {
	doc := &fakeDoc{
		texts: []string{""},
		grids: map[gridKey][]extract.Grid{
			{0, extract.TableModeLines}: {
				{{"H1", "H2"}, {"a", "b", "extra"}, {"", ""}, {"c"}},
				{{"header only", "x"}},
				{{"E1", "E2"}, {" ", "\x00"}},
				{{"K", "V"}, {"k", "v"}},
			},
		},
	}
	tables, err := NewNativeExtractor(nil).Extract(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(tables) != 2 {
		t.Fatalf("got %d tables, want 2", len(tables))
	}
	if tables[0].Label != "P1_Nativa_1" || tables[1].Label != "P1_Nativa_2" {
		t.Errorf("labels = %q, %q", tables[0].Label, tables[1].Label)
	}
	rows := tables[0].Rows
	if len(rows) != 3 {
		t.Fatalf("blank rows must be kept, got %d rows", len(rows))
	}
	for i, r := range rows {
		if len(r) != 2 {
			t.Errorf("row %d has %d cells, want 2", i, len(r))
		}
	}
	if !reflect.DeepEqual(cellTexts(rows[2]), []string{"c", ""}) || rows[2][1].Present {
		t.Errorf("padded row = %+v", rows[2])
	}
}

func TestAIExtractor(t *testing.T) {
	det := &fakeDetector{
		regions: []extract.Region{{Page: 2, Index: 0}, {Page: 0, Index: 1}, {Page: 0, Index: 0}},
		grids: map[int]extract.Grid{
			0:   {{"Producto", "Precio"}, {"pan", "1"}, {"leche", "2", "x"}},
			1:   {{"only"}, {"one row"}},
			200: {{"", "Name", "Name"}, {"a", "b", "c"}, {"d"}},
		},
	}
	tables, err := NewAIExtractor(det, nil).Extract(context.Background(), &fakeDoc{texts: []string{"", "", ""}})
	if err != nil {
		t.Fatal(err)
	}
	if len(tables) != 2 {
		t.Fatalf("got %d tables, want 2", len(tables))
	}
	if tables[0].Label != "P1_IA" || tables[1].Label != "P3_IA" {
		t.Errorf("labels = %q, %q", tables[0].Label, tables[1].Label)
	}
	if !reflect.DeepEqual(tables[1].Header, []string{"Col_1", "Name", "Name_3"}) {
		t.Errorf("header = %q", tables[1].Header)
	}
	for _, tb := range tables {
		for _, r := range tb.Rows {
			if len(r) != len(tb.Header) {
				t.Errorf("%s: ragged row %v", tb.Label, r)
			}
		}
	}

	det.formatErr = map[int]error{0: errors.New("bad region")}
	tables, err = NewAIExtractor(det, nil).Extract(context.Background(), &fakeDoc{texts: []string{"", "", ""}})
	if err != nil || len(tables) != 1 || tables[0].Page != 3 {
		t.Errorf("region failure should be skipped: tables=%+v err=%v", tables, err)
	}

	det.detectErr = errors.New("quota")
	if _, err := NewAIExtractor(det, nil).Extract(context.Background(), &fakeDoc{}); err == nil {
		t.Error("detect failure should fail the strategy")
	}
}

func TestBandRows(t *testing.T) {
	words := []extract.Word{
		{Text: "30", Confidence: 90, Left: 300, Top: 102},
		{Text: "Ana", Confidence: 90, Left: 100, Top: 100},
		{Text: "Luis", Confidence: 90, Left: 100, Top: 200},
		{Text: "noise", Confidence: 30, Left: 50, Top: 200},
		{Text: "  ", Confidence: 99, Left: 10, Top: 200},
	}
	got := bandRows(words)
	want := [][]string{{"Ana", "30"}, {"Luis"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bandRows = %q, want %q", got, want)
	}
}

func TestOCRExtractor(t *testing.T) {
	ocr := &fakeOCR{
		words: map[int][]extract.Word{
			0: {
				{Text: "Ana", Confidence: 90, Left: 100, Top: 100},
				{Text: "30", Confidence: 90, Left: 300, Top: 102},
				{Text: "Luis", Confidence: 90, Left: 100, Top: 200},
			},
			1: {{Text: "single", Confidence: 95, Left: 1, Top: 1}},
		},
		failOn: map[int]bool{2: true},
	}
	doc := &fakeDoc{texts: []string{"", "", "", ""}, rastErr: map[int]error{3: errors.New("pdftoppm")}}
	tables, err := NewOCRExtractor(ocr, "spa", nil).Extract(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	tb := tables[0]
	if tb.Label != "P1_OCR" || tb.Header != nil || tb.Strategy != constants.StrategyOCR {
		t.Errorf("table = %+v", tb)
	}
	if len(tb.Rows) != 2 || len(tb.Rows[1]) != 2 || tb.Rows[1][1].Present {
		t.Errorf("rows = %+v", tb.Rows)
	}
	for _, l := range ocr.langs {
		if l != "spa" {
			t.Errorf("lang = %q", l)
		}
	}
}
