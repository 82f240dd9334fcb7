package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

const (
	classifySamplePages = 3
	digitalMinRunes     = 50 // a page with more selectable text than this is digital
)

// Classify decides once whether the session's document carries selectable text.
// Later calls return the memoized value.
func (s *Session) Classify(ctx context.Context) constants.Classification {
	s.classifyOnce.Do(func() {
		logger := common.LoggerFrom(ctx, s.logger)
		s.classification = classify(ctx, s.doc, logger)
		logger.Info("pipeline.classify", "path", s.doc.Path(), "classification", s.classification)
	})
	return s.classification
}

func classify(ctx context.Context, doc extract.Document, logger *slog.Logger) (c constants.Classification) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("pipeline.classify.panic", "panic", fmt.Sprint(r))
			c = constants.Scanned
		}
	}()

	pages := min(doc.PageCount(), classifySamplePages)
	for p := 0; p < pages; p++ {
		text, err := doc.PageText(ctx, p)
		if err != nil {
			logger.Warn("pipeline.classify.read_failed", "page", p+1, "error", err)
			return constants.Scanned
		}
		if utf8.RuneCountInString(strings.TrimSpace(text)) > digitalMinRunes {
			return constants.Digital
		}
	}
	return constants.Scanned
}
