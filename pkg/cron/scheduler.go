// Package cron provides scheduled background jobs using robfig/cron.
package cron

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
	"github.com/joshua0006/moneybee/internal/domain/parse"
)

// Scheduler periodically re-reads the CSV override tables and swaps them into
// the live parser and search index. Operators edit the CSVs in place; the
// process picks them up on the next tick without a restart.
type Scheduler struct {
	cron          *cron.Cron
	parser        *parse.Parser
	searchIndex   *catalog.SearchIndex
	merchantsPath string
	keywordsPath  string
	logger        *slog.Logger
}

// NewScheduler creates a new job scheduler.
func NewScheduler(parser *parse.Parser, searchIndex *catalog.SearchIndex, merchantsPath, keywordsPath string, logger *slog.Logger) *Scheduler {
	// Standard 5-field cron format, no seconds.
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:          c,
		parser:        parser,
		searchIndex:   searchIndex,
		merchantsPath: merchantsPath,
		keywordsPath:  keywordsPath,
		logger:        logger,
	}
}

// Start registers the reload job on the given schedule and begins ticking.
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, s.reloadCatalog)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.String("schedule", schedule),
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

// RunNow manually triggers the catalog reload (for testing/admin).
func (s *Scheduler) RunNow() {
	go s.reloadCatalog()
}

// reloadCatalog re-reads the override files and swaps the result into the
// parser and the merchant search index. A bad file keeps the previous tables.
func (s *Scheduler) reloadCatalog() {
	cat, err := catalog.LoadWithOverrides(s.merchantsPath, s.keywordsPath)
	if err != nil {
		s.logger.Error("catalog reload failed, keeping previous tables", slog.Any("error", err))
		return
	}

	s.parser.Reload(cat)
	if s.searchIndex != nil {
		if err := s.searchIndex.Rebuild(cat); err != nil {
			s.logger.Error("search index rebuild failed", slog.Any("error", err))
		}
	}
}
