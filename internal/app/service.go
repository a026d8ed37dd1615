// Package app wires the snapshot store and the report generator behind one
// service used by both CLI modes.
package app

import (
	"context"
	"fmt"

	"github.com/okian/namepulse/internal/adapters/ingest"
	"github.com/okian/namepulse/internal/adapters/repository"
	"github.com/okian/namepulse/internal/adapters/repository/sqlite"
	"github.com/okian/namepulse/internal/config"
	"github.com/okian/namepulse/internal/domain/model"
	"github.com/okian/namepulse/internal/report"
	"github.com/okian/namepulse/pkg/logger"
)

// Service owns a loaded snapshot and produces reports from it. Reports are
// recomputed from the snapshot on every call and never cached — they belong
// to whoever renders them.
type Service struct {
	store     repository.Store
	generator *report.Generator
	closer    func() error
	log       logger.Logger
}

// New loads the snapshot named by cfg and builds the report generator.
// With cfg.DBDir set the snapshot is written through SQLite so later runs
// can skip the CSV; otherwise everything stays in memory.
func New(ctx context.Context, cfg *config.Config) (*Service, error) {
	log := logger.Named("app")

	records, err := ingest.LoadFile(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", cfg.DataPath, err)
	}
	log.Info(ctx, "snapshot loaded",
		logger.String("path", cfg.DataPath),
		logger.Int("records", len(records)),
	)

	tl := model.NewTimeline(cfg.Decades)

	var store repository.Store
	closer := func() error { return nil }
	if cfg.DBDir != "" {
		db, err := sqlite.NewStore(cfg.DBDir)
		if err != nil {
			return nil, fmt.Errorf("opening snapshot db: %w", err)
		}
		if err := db.ReplaceSnapshot(ctx, cfg.Decades, records); err != nil {
			db.Close()
			return nil, fmt.Errorf("writing snapshot db: %w", err)
		}
		store = db
		closer = db.Close
	} else {
		store = repository.NewMemStore(tl, records)
	}

	gen := report.NewGenerator(store,
		report.WithTopListSize(cfg.TopListSize),
		report.WithEvergreenMinDecades(cfg.EvergreenMinDecades),
		report.WithSuffixPatterns(cfg.SuffixPatterns),
		report.WithSpecialChars(cfg.SpecialChars),
		report.WithLogger(log.Named("report")),
	)

	return &Service{store: store, generator: gen, closer: closer, log: log}, nil
}

// Report computes a fresh report from the loaded snapshot.
func (s *Service) Report(ctx context.Context) (*report.Report, error) {
	return s.generator.Generate(ctx)
}

// Close releases the underlying store.
func (s *Service) Close() error {
	return s.closer()
}
