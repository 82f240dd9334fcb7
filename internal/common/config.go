package common

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	LLM      LLMConfig
	Convert  ConvertConfig
	Output   OutputConfig
	LogLevel slog.Level
}

// DatabaseConfig holds job ledger configuration. An empty DSN disables the ledger.
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr      string
	MaxConcurrent int64
}

// OCRConfig holds OCR and rasterization configuration
type OCRConfig struct {
	Tesseract   string
	Pdftoppm    string
	TessdataDir string
	Lang        string
	PSM         int
	Disabled    bool
}

// LLMConfig holds configuration for the ML table detector
type LLMConfig struct {
	BaseURL           string
	Model             string
	APIKey            string
	Temperature       float32
	Timeout           time.Duration
	RequestsPerMinute int
	Disabled          bool
}

// ConvertConfig holds the high-fidelity converter configuration
type ConvertConfig struct {
	Pdf2docx string
	Disabled bool
}

// OutputConfig holds output and ingest configuration
type OutputConfig struct {
	Dir           string
	WatchDir      string
	WatchDebounce time.Duration
	QueueWorkers  int
	QueueSize     int
	JobTimeout    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 1),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:      getEnv("GRPC_ADDR", ":8080"),
			MaxConcurrent: int64(getEnvAsInt("SERVER_MAX_CONCURRENT", 1)),
		},
		OCR: OCRConfig{
			Tesseract:   getEnv("TESSERACT_BIN", "tesseract"),
			Pdftoppm:    getEnv("PDFTOPPM_BIN", "pdftoppm"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			Lang:        getEnv("OCR_LANG", "spa"),
			PSM:         getEnvAsInt("OCR_PSM", 0),
			Disabled:    getEnvAsBool("OCR_DISABLED", false),
		},
		LLM: LLMConfig{
			BaseURL:           getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:             getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:            getEnv("OPENAI_API_KEY", ""),
			Temperature:       getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:           getEnvAsDuration("OPENAI_TIMEOUT", 60*time.Second),
			RequestsPerMinute: getEnvAsInt("OPENAI_RPM", 30),
			Disabled:          getEnvAsBool("AI_TABLES_DISABLED", false),
		},
		Convert: ConvertConfig{
			Pdf2docx: getEnv("PDF2DOCX_BIN", "pdf2docx"),
			Disabled: getEnvAsBool("CONVERT_DISABLED", false),
		},
		Output: OutputConfig{
			Dir:           getEnv("OUTPUT_DIR", "./output"),
			WatchDir:      getEnv("WATCH_DIR", ""),
			WatchDebounce: getEnvAsDuration("WATCH_DEBOUNCE", 2*time.Second),
			QueueWorkers:  getEnvAsInt("QUEUE_WORKERS", 1),
			QueueSize:     getEnvAsInt("QUEUE_SIZE", 64),
			JobTimeout:    getEnvAsDuration("JOB_TIMEOUT", 10*time.Minute),
		},
		LogLevel: getEnvAsLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsLevel(key string, defaultValue slog.Level) slog.Level {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(value)); err != nil {
		return defaultValue
	}
	return lvl
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return NewAppError("CONFIG_ERROR", "OUTPUT_DIR is required", ErrInvalidInput)
	}
	if c.OCR.Lang == "" {
		return NewAppError("CONFIG_ERROR", "OCR_LANG is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Server.MaxConcurrent < 1 {
		return NewAppError("CONFIG_ERROR", "SERVER_MAX_CONCURRENT must be at least 1", ErrInvalidInput)
	}
	if c.Output.QueueWorkers < 1 {
		return NewAppError("CONFIG_ERROR", "QUEUE_WORKERS must be at least 1", ErrInvalidInput)
	}
	if !c.LLM.Disabled && c.LLM.RequestsPerMinute < 0 {
		return NewAppError("CONFIG_ERROR", "OPENAI_RPM must not be negative", ErrInvalidInput)
	}
	return nil
}
