package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

// strategy is one entry of an extraction plan.
type strategy struct {
	name      constants.Strategy
	available func(*Capabilities) bool
	run       func(context.Context, extract.Document) ([]extract.Table, error)
}

// Orchestrator runs the extraction plan for a document's classification and keeps
// the tables of the first strategy that finds any.
type Orchestrator struct {
	caps   *Capabilities
	logger *slog.Logger
	plans  map[constants.Classification][]strategy
}

func NewOrchestrator(caps *Capabilities, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Orchestrator{caps: caps, logger: logger}

	native := strategy{
		name:      constants.StrategyNative,
		available: func(*Capabilities) bool { return true },
		run: func(ctx context.Context, doc extract.Document) ([]extract.Table, error) {
			return NewNativeExtractor(logger).Extract(ctx, doc)
		},
	}
	ai := strategy{
		name:      constants.StrategyAI,
		available: func(c *Capabilities) bool { return c.Tables != nil },
		run: func(ctx context.Context, doc extract.Document) ([]extract.Table, error) {
			return NewAIExtractor(caps.Tables, logger).Extract(ctx, doc)
		},
	}
	ocr := strategy{
		name:      constants.StrategyOCR,
		available: func(c *Capabilities) bool { return c.OCR != nil },
		run: func(ctx context.Context, doc extract.Document) ([]extract.Table, error) {
			return NewOCRExtractor(caps.OCR, caps.Lang, logger).Extract(ctx, doc)
		},
	}
	o.plans = map[constants.Classification][]strategy{
		constants.Digital: {native, ai},
		constants.Scanned: {ai, ocr},
	}
	return o
}

// ExtractTables classifies the session's document and walks its plan.
// Strategy failures are recorded on the result and never returned.
func (o *Orchestrator) ExtractTables(ctx context.Context, s *Session) extract.Result {
	logger := common.LoggerFrom(ctx, o.logger)
	class := s.Classify(ctx)
	res := extract.Result{Classification: class}

	for _, st := range o.plans[class] {
		if ctx.Err() != nil {
			break
		}
		if !st.available(o.caps) {
			logger.Info("pipeline.strategy.skipped", "strategy", st.name, "reason", "engine unavailable")
			res.Attempts = append(res.Attempts, extract.Attempt{Strategy: st.name, Skipped: true})
			continue
		}
		start := time.Now()
		tables, err := o.attempt(ctx, st, s.Document())
		res.Attempts = append(res.Attempts, extract.Attempt{Strategy: st.name, Tables: len(tables), Err: err})
		if err != nil {
			logger.Warn("pipeline.strategy.failed",
				"strategy", st.name,
				"error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			continue
		}
		logger.Info("pipeline.strategy.done",
			"strategy", st.name,
			"tables", len(tables),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		if len(tables) > 0 {
			res.Strategy = st.name
			res.Tables = tables
			break
		}
	}
	return res
}

// attempt runs one strategy, folding errors and panics into a strategy failure
// with no tables.
func (o *Orchestrator) attempt(ctx context.Context, st strategy, doc extract.Document) (tables []extract.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			tables = nil
			err = common.StrategyError(string(st.name), fmt.Errorf("panic: %v", r))
		}
	}()
	tables, err = st.run(ctx, doc)
	if err != nil {
		return nil, common.StrategyError(string(st.name), err)
	}
	return tables, nil
}
