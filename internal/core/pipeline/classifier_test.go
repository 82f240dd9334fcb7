package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/joseph-ayodele/docextract/constants"
)

func TestClassify(t *testing.T) {
	long := strings.Repeat("x", 51)
	tests := []struct {
		name string
		doc  *fakeDoc
		want constants.Classification
	}{
		{"text on first page", &fakeDoc{texts: []string{long}}, constants.Digital},
		{"exactly fifty runes", &fakeDoc{texts: []string{strings.Repeat("ñ", 50)}}, constants.Scanned},
		{"whitespace does not count", &fakeDoc{texts: []string{"  " + strings.Repeat("a", 50) + "\n\n  "}}, constants.Scanned},
		{"text on third page", &fakeDoc{texts: []string{"", " ", long}}, constants.Digital},
		{"only fourth page has text", &fakeDoc{texts: []string{"", "", "", long}}, constants.Scanned},
		{"no pages", &fakeDoc{}, constants.Scanned},
		{"read failure", &fakeDoc{texts: []string{"", long}, textErr: map[int]error{0: errors.New("bad xref")}}, constants.Scanned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewSession(tt.doc, nil).Classify(context.Background()); got != tt.want {
				t.Errorf("Classify = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyMemoized(t *testing.T) {
	doc := &fakeDoc{texts: []string{"", "", ""}}
	s := NewSession(doc, nil)
	first := s.Classify(context.Background())
	calls := doc.textCalls
	doc.texts[0] = strings.Repeat("x", 80)
	if got := s.Classify(context.Background()); got != first {
		t.Errorf("second Classify = %s, want memoized %s", got, first)
	}
	if doc.textCalls != calls {
		t.Errorf("document read again: %d calls, want %d", doc.textCalls, calls)
	}
}
