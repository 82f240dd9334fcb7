package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
	"github.com/joseph-ayodele/docextract/internal/core/llm"
	"github.com/joseph-ayodele/docextract/internal/utils"
)

var errNoAPIKey = errors.New("OPENAI_API_KEY is not set")

// CheckAvailable checks that a key is configured and the endpoint answers.
func (c *Client) CheckAvailable(ctx context.Context) error {
	if c.cfg.APIKey == "" {
		return errNoAPIKey
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/models/" + c.cfg.Model
	raw, status, err := llm.Get(ctx, c.http, endpoint, c.headers(), c.log)
	if err != nil {
		return fmt.Errorf("openai check (status %d): %w: %s", status, err, utils.Truncate(string(raw), 256))
	}
	c.log.Info("llm.tables.available", "model", c.cfg.Model, "base_url", c.cfg.BaseURL)
	return nil
}

// DetectTables sends every page image to the model and returns one region per table found.
// A page that fails is logged and skipped; the call fails only when every page failed.
func (c *Client) DetectTables(ctx context.Context, doc extract.Document) ([]extract.Region, error) {
	start := time.Now()
	var (
		regions []extract.Region
		lastErr error
		failed  int
	)
	pages := doc.PageCount()
	for p := 0; p < pages; p++ {
		if err := ctx.Err(); err != nil {
			return regions, err
		}
		tables, err := c.detectPage(ctx, doc, p)
		if err != nil {
			c.log.Warn("llm.tables.page_failed", "page", p+1, "error", err)
			lastErr = err
			failed++
			continue
		}
		for i, t := range tables {
			raw, err := json.Marshal(t)
			if err != nil {
				continue
			}
			regions = append(regions, extract.Region{Page: p, Index: i, Raw: raw})
		}
	}
	c.log.Info("llm.tables.detected",
		"pages", pages,
		"failed_pages", failed,
		"regions", len(regions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if pages > 0 && failed == pages {
		return nil, fmt.Errorf("table detection failed on all %d pages: %w", pages, lastErr)
	}
	return regions, nil
}

// Format turns one detected region into header-first rows.
func (c *Client) Format(_ context.Context, region extract.Region) (extract.Grid, error) {
	var t llm.TableGrid
	if err := json.Unmarshal(region.Raw, &t); err != nil {
		return nil, fmt.Errorf("decode region %d on page %d: %w", region.Index, region.Page+1, err)
	}
	if len(t.Header) == 0 && len(t.Rows) == 0 {
		return nil, fmt.Errorf("region %d on page %d is empty", region.Index, region.Page+1)
	}
	return extract.Grid(t.Grid()), nil
}

func (c *Client) detectPage(ctx context.Context, doc extract.Document, page int) ([]llm.TableGrid, error) {
	rid := uuid.New().String()
	ctx = common.WithRequestID(ctx, rid)
	img, err := doc.Rasterize(ctx, page, c.cfg.Scale)
	if err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	dataURL, ok := llm.ImageDataURL(img)
	if !ok {
		return nil, fmt.Errorf("page image not attachable (%d bytes)", len(img))
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(llm.BuildPageTablesJSONSchema())},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": fmt.Sprintf("Page %d. Return ONLY JSON that matches the provided schema.", page+1)},
				{"type": "image_url", "image_url": map[string]any{"url": dataURL, "detail": "high"}},
			}},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, c.headers(), c.log)
	if err != nil {
		return nil, fmt.Errorf("openai: %w: %s", err, utils.Truncate(string(raw), 512))
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, fmt.Errorf("no choices in openai response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := c.validator.Validate(content); err != nil {
		if !c.cfg.Lenient {
			return nil, fmt.Errorf("schema validation failed: %w", err)
		}
		cleaned, fixes, sErr := llm.SanitizeTables(content)
		if sErr != nil {
			return nil, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := c.validator.Validate(cleaned); vErr != nil {
			return nil, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.log.Warn("llm.tables.lenient_sanitize_applied", "req_id", rid, "page", page+1, "fixes", fixes)
		content = cleaned
	}

	var out llm.PageTables
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, fmt.Errorf("unmarshal tables: %w", err)
	}
	c.log.Debug("llm.tables.page_ok", "req_id", rid, "page", page+1, "tables", len(out.Tables))
	return out.Tables, nil
}

func (c *Client) headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
}

const systemPrompt = "You are a table extractor. Look at the page image and find every data table on it. " +
	"For each table return its column header cells and its body rows, top to bottom, copying cell text exactly as printed. " +
	"Use an empty string for an empty cell. Do not merge tables, and do not invent tables from running prose. " +
	"If the page has no table, return {\"tables\": []}."

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
