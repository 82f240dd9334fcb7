package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core/extract"
)

// Session owns one opened document for the duration of a Process call.
type Session struct {
	doc    extract.Document
	logger *slog.Logger

	classifyOnce   sync.Once
	classification constants.Classification
}

// OpenSession opens path with opener. Failure here is a session failure.
func OpenSession(ctx context.Context, opener extract.Opener, path string, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opener == nil {
		return nil, common.SessionError("no document reader configured", nil)
	}
	doc, err := opener.Open(ctx, path)
	if err != nil {
		return nil, common.SessionError("open document", err)
	}
	return &Session{doc: doc, logger: logger}, nil
}

// NewSession wraps an already opened document.
func NewSession(doc extract.Document, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{doc: doc, logger: logger}
}

func (s *Session) Document() extract.Document { return s.doc }

func (s *Session) Close() error { return s.doc.Close() }
