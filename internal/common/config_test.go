package common

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"OCR_LANG", "GRPC_ADDR", "QUEUE_WORKERS", "OPENAI_TIMEOUT", "LOG_LEVEL", "AI_TABLES_DISABLED"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig()

	if cfg.OCR.Lang != "spa" {
		t.Errorf("OCR.Lang = %q, want spa", cfg.OCR.Lang)
	}
	if cfg.Server.GRPCAddr != ":8080" {
		t.Errorf("GRPCAddr = %q", cfg.Server.GRPCAddr)
	}
	if cfg.Output.QueueWorkers != 1 {
		t.Errorf("QueueWorkers = %d, want 1", cfg.Output.QueueWorkers)
	}
	if cfg.LLM.Timeout != 60*time.Second {
		t.Errorf("LLM.Timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("OCR_LANG", "eng")
	t.Setenv("QUEUE_WORKERS", "3")
	t.Setenv("OPENAI_TIMEOUT", "5s")
	t.Setenv("AI_TABLES_DISABLED", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OPENAI_TEMPERATURE", "not-a-number")

	cfg := LoadConfig()
	if cfg.OCR.Lang != "eng" || cfg.Output.QueueWorkers != 3 || cfg.LLM.Timeout != 5*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if !cfg.LLM.Disabled {
		t.Error("LLM.Disabled = false, want true")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.LLM.Temperature != 0 {
		t.Errorf("bad float should fall back to default, got %v", cfg.LLM.Temperature)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"no output dir", func(c *Config) { c.Output.Dir = "" }, false},
		{"no lang", func(c *Config) { c.OCR.Lang = "" }, false},
		{"zero concurrency", func(c *Config) { c.Server.MaxConcurrent = 0 }, false},
		{"zero workers", func(c *Config) { c.Output.QueueWorkers = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("error %v does not wrap ErrInvalidInput", err)
				}
			}
		})
	}
}
