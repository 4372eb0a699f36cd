// Package store persists cleaning-run history behind a driver-selected
// backend. The record store itself is never persisted; only run
// metadata and summaries are.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/cleanse-cli/internal/config"
	"github.com/sells-group/cleanse-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for cleaning runs.
type Store interface {
	CreateRun(ctx context.Context, input string) (*model.Run, error)
	CompleteRun(ctx context.Context, runID string, summary *model.Summary) error
	FailRun(ctx context.Context, runID string, runErr error) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	Migrate(ctx context.Context) error
	Close() error
}

// New opens the backend selected by cfg.Driver and runs migrations.
func New(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Driver {
	case "sqlite":
		s, err = NewSQLite(cfg.DatabaseURL)
	case "postgres":
		s, err = NewPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
