package ocr

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
)

type stubRunner struct {
	stdout, stderr []byte
	err            error

	calls  [][]string
	inputs [][]byte
}

func (s *stubRunner) Run(_ context.Context, name string, _ *slog.Logger, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	if len(args) > 0 {
		if b, err := os.ReadFile(args[0]); err == nil {
			s.inputs = append(s.inputs, b)
		}
	}
	return s.stdout, s.stderr, s.err
}

const sampleTSV = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
	"1\t1\t0\t0\t0\t0\t0\t0\t1700\t2200\t-1\t\n" +
	"4\t1\t1\t1\t1\t0\t90\t100\t400\t30\t-1\t\n" +
	"5\t1\t1\t1\t1\t1\t90\t100\t80\t30\t96.5\tNombre\n" +
	"5\t1\t1\t1\t1\t2\t300\t102\t60\t30\t91\tEdad\n" +
	"5\t1\t1\t1\t2\t1\t90\t200\t60\t30\t12.25\t \n" +
	"5\t1\t1\t1\t2\t2\t300\t200\t60\t30\t88\n"

func TestParseTSV(t *testing.T) {
	words, err := ParseTSV([]byte(sampleTSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 4 {
		t.Fatalf("got %d words, want 4: %+v", len(words), words)
	}
	first := words[0]
	if first.Text != "Nombre" || first.Left != 90 || first.Top != 100 || first.Confidence != 96.5 {
		t.Errorf("first word = %+v", first)
	}
	if words[3].Text != "" {
		t.Errorf("missing text column should give empty word, got %q", words[3].Text)
	}
}

func TestParseTSVMalformed(t *testing.T) {
	bad := "header\n5\t1\t1\t1\t1\t1\tx\t100\t80\t30\t96\tword\n"
	if _, err := ParseTSV([]byte(bad)); err == nil {
		t.Fatal("expected error for non-numeric left")
	}
}

func TestRecognizeWordsArgs(t *testing.T) {
	r := &stubRunner{stdout: []byte(sampleTSV)}
	e := NewTesseractWithRunner(Config{PSM: 6, TessdataDir: "/td"}, r, nil)

	words, err := e.RecognizeWords(context.Background(), []byte("png-bytes"), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 4 {
		t.Fatalf("words = %d", len(words))
	}
	call := strings.Join(r.calls[0], " ")
	for _, want := range []string{"tesseract ", " stdout -l spa", "--psm 6", "--tessdata-dir /td", " tsv"} {
		if !strings.Contains(call, want) {
			t.Errorf("call %q missing %q", call, want)
		}
	}
	if string(r.inputs[0]) != "png-bytes" {
		t.Errorf("image not passed through temp file: %q", r.inputs[0])
	}
}

func TestRecognizeTextNormalizes(t *testing.T) {
	r := &stubRunner{stdout: []byte("Hola   mundo\r\n\n\n\n-----\nfin\f")}
	e := NewTesseractWithRunner(Config{}, r, nil)
	got, err := e.RecognizeText(context.Background(), []byte("img"), "eng")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hola mundo\n\nfin" {
		t.Errorf("text = %q", got)
	}
	if !strings.Contains(strings.Join(r.calls[0], " "), "-l eng") {
		t.Errorf("explicit language ignored: %v", r.calls[0])
	}
}

func TestCheckAvailable(t *testing.T) {
	ok := &stubRunner{stdout: []byte("tesseract 5.3.0\n leptonica-1.82.0\n")}
	if err := NewTesseractWithRunner(Config{}, ok, nil).CheckAvailable(context.Background()); err != nil {
		t.Fatalf("CheckAvailable() = %v", err)
	}
	missing := &stubRunner{err: errors.New("exec: \"tesseract\": executable file not found in $PATH")}
	if err := NewTesseractWithRunner(Config{}, missing, nil).CheckAvailable(context.Background()); err == nil {
		t.Fatal("CheckAvailable() should fail when binary is missing")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"a\t\tb", "a b"},
		{"line  \nnext", "line\nnext"},
		{"x\n\n\n\ny", "x\n\ny"},
		{"top\n|||||\nbottom", "top\n\nbottom"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
