package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/joseph-ayodele/docextract/internal/core/llm"
)

// Config for the vision table detector.
type Config struct {
	APIKey            string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL           string        // default https://api.openai.com/v1
	Model             string        // must accept image input, e.g. "gpt-4o-mini"
	Temperature       float32       // 0..2
	Timeout           time.Duration // http client timeout
	RequestsPerMinute int           // 0 disables throttling
	Scale             float64       // page raster scale sent to the model
	Lenient           bool          // coerce common shape slips before validating
}

// Client detects and formats tables by sending page images to a chat completions endpoint.
type Client struct {
	cfg       Config
	http      *http.Client
	log       *slog.Logger
	limiter   *rate.Limiter
	validator *llm.Validator
}

func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if logger == nil {
		logger = slog.Default()
	}
	v, err := llm.NewValidator(llm.BuildPageTablesJSONSchema())
	if err != nil {
		return nil, err
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}
	return &Client{
		cfg:       cfg,
		http:      &http.Client{Timeout: cfg.Timeout},
		log:       logger,
		limiter:   limiter,
		validator: v,
	}, nil
}
