package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

type fakeDoc struct {
	pages     int
	rasterErr map[int]error
}

func (d *fakeDoc) Path() string   { return "fake.pdf" }
func (d *fakeDoc) PageCount() int { return d.pages }
func (d *fakeDoc) PageText(context.Context, int) (string, error) {
	return "", nil
}
func (d *fakeDoc) FindTables(context.Context, int, extract.TableSettings) ([]extract.Grid, error) {
	return nil, nil
}
func (d *fakeDoc) Rasterize(_ context.Context, page int, _ float64) ([]byte, error) {
	if err := d.rasterErr[page]; err != nil {
		return nil, err
	}
	return []byte("\x89PNG\r\n\x1a\npage"), nil
}
func (d *fakeDoc) Images(context.Context, int) ([]extract.EmbeddedImage, error) { return nil, nil }
func (d *fakeDoc) Close() error                                                  { return nil }

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{{"message": map[string]any{"content": content}}},
	})
	return string(b)
}

func newTestClient(t *testing.T, srv *httptest.Server, lenient bool) *Client {
	t.Helper()
	c, err := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Lenient: lenient}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestDetectAndFormat(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer k" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "data:image/png;base64,") {
			t.Errorf("request carries no page image")
		}
		calls.Add(1)
		_, _ = io.WriteString(w, chatResponse(`{"tables":[{"header":["Name","Age"],"rows":[["Ana","30"],["Luis","41"]]}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, false)
	regions, err := c.DetectTables(context.Background(), &fakeDoc{pages: 2})
	if err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 2 || len(regions) != 2 {
		t.Fatalf("calls=%d regions=%d", calls.Load(), len(regions))
	}
	if regions[1].Page != 1 || regions[1].Index != 0 {
		t.Errorf("second region = %+v", regions[1])
	}
	grid, err := c.Format(context.Background(), regions[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(grid) != 3 || grid[0][0] != "Name" || grid[2][1] != "41" {
		t.Errorf("grid = %v", grid)
	}
}

func TestDetectSendsRequestIDPerPage(t *testing.T) {
	var (
		mu  sync.Mutex
		ids []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		ids = append(ids, r.Header.Get("X-Request-ID"))
		mu.Unlock()
		_, _ = io.WriteString(w, chatResponse(`{"tables":[]}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(t, srv, false).DetectTables(context.Background(), &fakeDoc{pages: 2}); err != nil {
		t.Fatal(err)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(ids) != 2 || ids[0] == "" || ids[1] == "" || ids[0] == ids[1] {
		t.Errorf("request ids = %q, want two distinct ids", ids)
	}
}

func TestDetectSkipsFailedPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, chatResponse(`{"tables":[{"header":["a"],"rows":[["1"],["2"]]}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, false)
	doc := &fakeDoc{pages: 2, rasterErr: map[int]error{0: errors.New("boom")}}
	regions, err := c.DetectTables(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) != 1 || regions[0].Page != 1 {
		t.Errorf("regions = %+v", regions)
	}

	doc.rasterErr[1] = errors.New("boom")
	if _, err := c.DetectTables(context.Background(), doc); err == nil {
		t.Error("expected error when every page fails")
	}
}

func TestDetectLenient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, chatResponse("```json\n{\"tables\":[{\"header\":[\"n\"],\"rows\":[[1],[2]]}]}\n```"))
	}))
	defer srv.Close()

	if _, err := newTestClient(t, srv, false).DetectTables(context.Background(), &fakeDoc{pages: 1}); err == nil {
		t.Fatal("strict client should reject numeric cells")
	}
	regions, err := newTestClient(t, srv, true).DetectTables(context.Background(), &fakeDoc{pages: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) != 1 {
		t.Fatalf("regions = %+v", regions)
	}
}

func TestFormatRejectsEmptyRegion(t *testing.T) {
	c, err := NewClient(Config{APIKey: "k"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Format(context.Background(), extract.Region{Raw: []byte(`{"header":[],"rows":[]}`)}); err == nil {
		t.Error("expected error for empty region")
	}
	if _, err := c.Format(context.Background(), extract.Region{Raw: []byte(`nope`)}); err == nil {
		t.Error("expected decode error")
	}
}

func TestCheckAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gpt-4o-mini" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{"id":"gpt-4o-mini"}`)
	}))
	defer srv.Close()

	if err := newTestClient(t, srv, false).CheckAvailable(context.Background()); err != nil {
		t.Fatal(err)
	}
	c, _ := NewClient(Config{BaseURL: srv.URL, Model: "missing"}, nil)
	c.cfg.APIKey = ""
	if err := c.CheckAvailable(context.Background()); !errors.Is(err, errNoAPIKey) {
		t.Errorf("err = %v, want errNoAPIKey", err)
	}
	c.cfg.APIKey = "k"
	if err := c.CheckAvailable(context.Background()); err == nil {
		t.Error("expected check failure for unknown model")
	}
}
