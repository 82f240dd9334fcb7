package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core"
	"github.com/joseph-ayodele/docextract/internal/core/pipeline"
	"github.com/joseph-ayodele/docextract/internal/ingest"
	repo "github.com/joseph-ayodele/docextract/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	cfg := common.LoadConfig()

	var (
		in        = flag.String("in", "", "PDF file to extract")
		dir       = flag.String("dir", "", "extract every PDF under this directory instead of -in")
		out       = flag.String("out", "", "output directory (default: $OUTPUT_DIR/<name>, or $OUTPUT_DIR with -dir)")
		noAI      = flag.Bool("no-ai", cfg.LLM.Disabled, "disable the ML table detector")
		noOCR     = flag.Bool("no-ocr", cfg.OCR.Disabled, "disable OCR")
		noConvert = flag.Bool("no-convert", cfg.Convert.Disabled, "disable the high-fidelity converter")
		lang      = flag.String("lang", cfg.OCR.Lang, "OCR language")
	)
	flag.Parse()

	if (*in == "") == (*dir == "") {
		printError("Error: exactly one of -in or -dir is required\n")
		flag.Usage()
		os.Exit(2)
	}
	cfg.LLM.Disabled = *noAI
	cfg.OCR.Disabled = *noOCR
	cfg.Convert.Disabled = *noConvert
	cfg.OCR.Lang = *lang
	if *out != "" && *dir != "" {
		cfg.Output.Dir = *out
	}
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(2)
	}

	// logs go to stderr so stdout carries only the JSON result
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ledger, err := repo.OpenLedger(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open job ledger", "error", err)
		os.Exit(1)
	}
	defer ledger.Close(logger)

	caps := core.BuildCapabilities(ctx, cfg, logger)
	processor := core.NewProcessor(logger, caps, ledger.Repo())

	if *in != "" {
		outDir := *out
		if outDir == "" {
			outDir = ingest.OutputDirFor(cfg.Output.Dir, *in)
		}
		res, err := processor.Process(ctx, *in, outDir)
		if err != nil {
			logger.Error("extraction failed", "path", *in, "error", err)
			os.Exit(1)
		}
		printJSON(res)
		return
	}

	results, failures := processDir(ctx, processor, *dir, cfg.Output.Dir, logger)
	printJSON(results)
	if failures > 0 {
		os.Exit(1)
	}
}

type dirResult struct {
	Path    string            `json:"path"`
	Outputs *pipeline.Outputs `json:"outputs,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// processDir extracts each PDF under root in walk order, one at a time.
func processDir(ctx context.Context, processor *core.Processor, root, outRoot string, logger *slog.Logger) ([]dirResult, int) {
	var (
		results  []dirResult
		failures int
	)
	err := filepath.WalkDir(root, func(path string, e fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path != root && ingest.IsHidden(path) {
			if e.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if e.IsDir() || !constants.IsAllowed(path) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := processor.Process(ctx, path, ingest.OutputDirFor(outRoot, path))
		if err != nil {
			failures++
			results = append(results, dirResult{Path: path, Error: err.Error()})
			return nil
		}
		results = append(results, dirResult{Path: path, Outputs: &res})
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("directory walk failed", "root", root, "error", err)
		failures++
	}
	logger.Info("batch processing complete", "root", root, "files", len(results), "failures", failures)
	return results, failures
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		printError("Error: encode result: %v\n", err)
		os.Exit(1)
	}
}
