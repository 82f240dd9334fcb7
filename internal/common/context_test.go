package common

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoggerFrom(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	LoggerFrom(context.Background(), base).Info("plain")
	if strings.Contains(buf.String(), "job_id") {
		t.Fatalf("unexpected job_id: %s", buf.String())
	}

	buf.Reset()
	ctx := WithRequestID(WithJobID(context.Background(), "job-7"), "req-3")
	LoggerFrom(ctx, base).Info("scoped")
	out := buf.String()
	if !strings.Contains(out, `"job_id":"job-7"`) || !strings.Contains(out, `"request_id":"req-3"`) {
		t.Fatalf("missing ids: %s", out)
	}
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := WithTimeout(context.Background(), 0)
	if _, ok := ctx.Deadline(); ok {
		t.Fatal("zero timeout should not set a deadline")
	}
	cancel()
	if ctx.Err() == nil {
		t.Fatal("cancel should still work")
	}

	ctx, cancel = WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("expected a deadline")
	}
}
