package pipeline

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

func strategies(atts []extract.Attempt) []constants.Strategy {
	out := make([]constants.Strategy, len(atts))
	for i, a := range atts {
		out[i] = a.Strategy
	}
	return out
}

func TestOrchestratorDigitalNativeWins(t *testing.T) {
	det := &fakeDetector{}
	doc := &fakeDoc{
		texts: []string{longText(), longText()},
		grids: map[gridKey][]extract.Grid{
			{1, extract.TableModeLines}: {{{"Name", "Age"}, {"Ana", "30"}, {"Luis", "41"}}},
		},
	}
	caps := &Capabilities{Tables: det}
	res := NewOrchestrator(caps, nil).ExtractTables(context.Background(), NewSession(doc, nil))

	if res.Classification != constants.Digital || res.Strategy != constants.StrategyNative {
		t.Fatalf("result = %+v", res)
	}
	if len(res.Tables) != 1 || res.Tables[0].Label != "P2_Nativa" {
		t.Fatalf("tables = %+v", res.Tables)
	}
	if det.detectCalls != 0 {
		t.Errorf("ML detector invoked %d times", det.detectCalls)
	}
}

func TestOrchestratorDigitalFallsBackToAI(t *testing.T) {
	det := &fakeDetector{
		regions: []extract.Region{{Page: 0}},
		grids:   map[int]extract.Grid{0: {{"a", "b"}, {"1", "2"}, {"3", "4"}}},
	}
	doc := &fakeDoc{texts: []string{longText()}}
	res := NewOrchestrator(&Capabilities{Tables: det}, nil).ExtractTables(context.Background(), NewSession(doc, nil))
	if res.Strategy != constants.StrategyAI || len(res.Tables) != 1 {
		t.Fatalf("result = %+v", res)
	}
	want := []constants.Strategy{constants.StrategyNative, constants.StrategyAI}
	if got := strategies(res.Attempts); !reflect.DeepEqual(got, want) {
		t.Errorf("attempts = %v, want %v", got, want)
	}
}

func TestOrchestratorScannedNoEngines(t *testing.T) {
	doc := &fakeDoc{texts: []string{"", ""}}
	res := NewOrchestrator(&Capabilities{}, nil).ExtractTables(context.Background(), NewSession(doc, nil))
	if res.Classification != constants.Scanned || len(res.Tables) != 0 || res.Strategy != "" {
		t.Fatalf("result = %+v", res)
	}
	if len(res.Attempts) != 2 || !res.Attempts[0].Skipped || !res.Attempts[1].Skipped {
		t.Errorf("attempts = %+v", res.Attempts)
	}
	if len(doc.tableCalls) != 0 {
		t.Error("structural table finder must not run for scanned documents")
	}
}

func TestOrchestratorFoldsFailures(t *testing.T) {
	det := &fakeDetector{detectErr: errors.New("timeout")}
	ocr := &fakeOCR{panicky: true}
	doc := &fakeDoc{texts: []string{""}}
	res := NewOrchestrator(&Capabilities{Tables: det, OCR: ocr}, nil).ExtractTables(context.Background(), NewSession(doc, nil))

	if len(res.Tables) != 0 {
		t.Fatalf("tables = %+v", res.Tables)
	}
	if len(res.Attempts) != 2 {
		t.Fatalf("attempts = %+v", res.Attempts)
	}
	for _, a := range res.Attempts {
		if a.Skipped || !errors.Is(a.Err, common.ErrStrategy) {
			t.Errorf("attempt %s: skipped=%v err=%v", a.Strategy, a.Skipped, a.Err)
		}
	}
}

func TestOrchestratorScannedOCR(t *testing.T) {
	ocr := &fakeOCR{words: map[int][]extract.Word{
		0: {
			{Text: "Ana", Confidence: 90, Left: 100, Top: 100},
			{Text: "30", Confidence: 90, Left: 300, Top: 102},
			{Text: "Luis", Confidence: 90, Left: 100, Top: 200},
		},
	}}
	doc := &fakeDoc{texts: []string{""}}
	caps := &Capabilities{OCR: ocr, Lang: "eng"}
	o := NewOrchestrator(caps, nil)

	first := o.ExtractTables(context.Background(), NewSession(doc, nil))
	second := o.ExtractTables(context.Background(), NewSession(doc, nil))
	if first.Strategy != constants.StrategyOCR || len(first.Tables) != 1 {
		t.Fatalf("result = %+v", first)
	}
	if !reflect.DeepEqual(first.Tables, second.Tables) {
		t.Error("repeated extraction differs")
	}
	if !first.Attempts[0].Skipped {
		t.Error("AI attempt should be recorded as skipped")
	}
}
