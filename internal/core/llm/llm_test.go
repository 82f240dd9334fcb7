package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/joseph-ayodele/docextract/internal/common"
)

func TestValidatorAcceptsPageTables(t *testing.T) {
	v, err := NewValidator(BuildPageTablesJSONSchema())
	if err != nil {
		t.Fatal(err)
	}
	ok := `{"tables":[{"header":["a","b"],"rows":[["1","2"],["3","4"]]}]}`
	if err := v.Validate([]byte(ok)); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	bad := `{"tables":[{"header":["a"],"rows":[[1]]}]}`
	if err := v.Validate([]byte(bad)); err == nil {
		t.Fatal("numeric cell should fail validation")
	}
	if err := ValidateJSONAgainstSchema(BuildTableJSONSchema(), []byte(`{"header":[]}`)); err == nil {
		t.Fatal("missing rows should fail validation")
	}
}

func TestSanitizeTables(t *testing.T) {
	in := "```json\n{\"tables\":[{\"header\":[\"Item\",null],\"rows\":[[\"x\",12.5],\"junk\",[true,\"y\"]],\"title\":\"t\"}]}\n```"
	out, fixes, err := SanitizeTables([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(fixes) == 0 {
		t.Fatal("expected fixes to be reported")
	}
	if err := ValidateJSONAgainstSchema(BuildPageTablesJSONSchema(), out); err != nil {
		t.Fatalf("sanitized payload still invalid: %v\n%s", err, out)
	}
	var pt PageTables
	if err := json.Unmarshal(out, &pt); err != nil {
		t.Fatal(err)
	}
	got := pt.Tables[0]
	if got.Header[1] != "" {
		t.Errorf("null header cell = %q, want empty", got.Header[1])
	}
	if len(got.Rows) != 2 || got.Rows[0][1] != "12.5" || got.Rows[1][0] != "true" {
		t.Errorf("rows = %v", got.Rows)
	}
}

func TestSanitizeTablesMissingKey(t *testing.T) {
	out, fixes, err := SanitizeTables([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"tables":[]}` || len(fixes) != 1 {
		t.Errorf("out=%s fixes=%v", out, fixes)
	}
	if _, _, err := SanitizeTables([]byte("not json")); err == nil {
		t.Error("expected error for non-JSON content")
	}
}

func TestTableGridFlatten(t *testing.T) {
	g := TableGrid{Header: []string{"h"}, Rows: [][]string{{"a"}, {"b"}}}.Grid()
	if len(g) != 3 || g[0][0] != "h" || g[2][0] != "b" {
		t.Errorf("grid = %v", g)
	}
	if g := (TableGrid{Rows: [][]string{{"a"}}}).Grid(); len(g) != 1 {
		t.Errorf("headerless grid = %v", g)
	}
}

func TestImageDataURL(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
	u, ok := ImageDataURL(png)
	if !ok || !strings.HasPrefix(u, "data:image/png;base64,") {
		t.Errorf("url = %q ok=%v", u, ok)
	}
	if _, ok := ImageDataURL(nil); ok {
		t.Error("empty image should not be attachable")
	}
}

func TestSendJSONCarriesRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx := common.WithRequestID(context.Background(), "req-9")
	if _, status, err := SendJSON(ctx, srv.Client(), srv.URL, map[string]any{"a": 1}, nil, nil); err != nil || status != http.StatusOK {
		t.Fatalf("status=%d err=%v", status, err)
	}
	if got != "req-9" {
		t.Errorf("%s = %q, want req-9", RequestIDHeader, got)
	}

	if _, _, err := Get(context.Background(), srv.Client(), srv.URL, nil, nil); err != nil {
		t.Fatal(err)
	}
	if got == "" || got == "req-9" {
		t.Errorf("fresh request id = %q", got)
	}
}
