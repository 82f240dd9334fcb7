package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/docextract/internal/common"
)

// Ledger bundles an open, migrated database with its job repository.
type Ledger struct {
	DB   *DB
	Jobs ExtractJobRepository
}

// ConfigFrom maps the application database settings onto a connection config.
func ConfigFrom(c common.DatabaseConfig) Config {
	return Config{
		DSN:              c.DSN,
		MaxConns:         c.MaxConns,
		MinConns:         c.MinConns,
		MaxConnLifetime:  c.MaxConnLifetime,
		MaxConnIdleTime:  c.MaxConnIdleTime,
		DialTimeout:      c.DialTimeout,
		StatementTimeout: c.StatementTimeout,
	}
}

// OpenLedger opens, pings and migrates the job ledger. It returns nil when no DSN is set.
func OpenLedger(ctx context.Context, c common.DatabaseConfig, logger *slog.Logger) (*Ledger, error) {
	if c.DSN == "" {
		return nil, nil
	}
	db, err := Open(ctx, ConfigFrom(c), logger)
	if err != nil {
		return nil, common.NewAppError("LEDGER_OPEN", "open job ledger", fmt.Errorf("%w: %w", common.ErrDatabase, err))
	}
	if err := db.HealthCheck(ctx, 5*time.Second, logger); err != nil {
		db.Close(logger)
		return nil, common.NewAppError("LEDGER_PING", "ping job ledger", fmt.Errorf("%w: %w", common.ErrDatabase, err))
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close(logger)
		return nil, common.NewAppError("LEDGER_MIGRATE", "migrate job ledger", fmt.Errorf("%w: %w", common.ErrDatabase, err))
	}
	return &Ledger{DB: db, Jobs: NewExtractJobRepository(db, logger)}, nil
}

// Close releases the ledger connections. A nil ledger is a no-op.
func (l *Ledger) Close(logger *slog.Logger) {
	if l == nil {
		return
	}
	l.DB.Close(logger)
}

// Repo returns the job repository, or nil for a nil ledger.
func (l *Ledger) Repo() ExtractJobRepository {
	if l == nil {
		return nil
	}
	return l.Jobs
}
