package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
	"github.com/joshua0006/moneybee/internal/domain/enrich"
	"github.com/joshua0006/moneybee/internal/domain/parse"
	"github.com/joshua0006/moneybee/internal/domain/parse/handler"
	"github.com/joshua0006/moneybee/pkg/config"
	"github.com/joshua0006/moneybee/pkg/cron"
	"github.com/joshua0006/moneybee/pkg/metrics"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	Catalog     *catalog.Catalog
	Parser      *parse.Parser
	SearchIndex *catalog.SearchIndex
	Remote      enrich.RemoteParser
	Service     *enrich.Service
	Scheduler   *cron.Scheduler
	Metrics     *metrics.Metrics

	ParseHandler *handler.ParseHandler
}

// InitDependencies initializes all application dependencies
func InitDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initCatalog(); err != nil {
		return nil, fmt.Errorf("failed to init catalog: %w", err)
	}

	if err := deps.initServices(ctx); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")

	return deps, nil
}

// initCatalog loads the builtin tables plus any CSV overrides and builds the
// parser and the merchant search index over them.
func (d *Dependencies) initCatalog() error {
	cat, err := catalog.LoadWithOverrides(d.Config.Parser.MerchantsCSVPath, d.Config.Parser.KeywordsCSVPath)
	if err != nil {
		return err
	}
	d.Catalog = cat

	d.Parser = parse.NewParser(cat, d.Logger).
		WithDefaultCurrency(d.Config.Parser.DefaultCurrency)

	index, err := catalog.NewSearchIndex(cat)
	if err != nil {
		return err
	}
	d.SearchIndex = index

	d.Logger.Info("catalog loaded",
		slog.Int("categories", len(cat.Categories())),
		slog.Int("merchants", len(cat.Merchants())),
	)
	return nil
}

// initServices wires the enrichment pipeline. A missing Gemini key disables
// remote augmentation; every parse is then local-only.
func (d *Dependencies) initServices(ctx context.Context) error {
	if d.Config.Observability.MetricsEnabled {
		d.Metrics = metrics.New(prometheus.DefaultRegisterer)
	}

	if d.Config.Gemini.APIKey != "" {
		remote, err := enrich.NewGeminiParser(ctx, d.Config.Gemini.APIKey, d.Config.Gemini.Model)
		if err != nil {
			return fmt.Errorf("failed to init gemini parser: %w", err)
		}
		d.Remote = remote
		d.Logger.Info("remote augmentation enabled")
	} else {
		d.Logger.Info("GEMINI_API_KEY not set, remote augmentation disabled")
	}

	d.Service = enrich.NewService(d.Parser, d.Remote, d.Logger).
		WithThreshold(d.Config.Parser.AIFallbackThreshold).
		WithTimeout(d.Config.Parser.RemoteTimeout).
		WithMetrics(d.Metrics)

	if d.Config.Parser.ReloadSchedule != "" {
		d.Scheduler = cron.NewScheduler(
			d.Parser,
			d.SearchIndex,
			d.Config.Parser.MerchantsCSVPath,
			d.Config.Parser.KeywordsCSVPath,
			d.Logger,
		)
		if err := d.Scheduler.Start(d.Config.Parser.ReloadSchedule); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
	}

	d.Logger.Info("services initialized")
	return nil
}

// initHandlers initializes all handler dependencies
func (d *Dependencies) initHandlers() {
	d.ParseHandler = handler.NewParseHandler(d.Service, d.Parser, d.SearchIndex, d.Logger)
	d.Logger.Info("handlers initialized")
}

// Cleanup closes all resources
func (d *Dependencies) Cleanup() {
	if d.Scheduler != nil {
		<-d.Scheduler.Stop().Done()
	}
	if d.SearchIndex != nil {
		_ = d.SearchIndex.Close()
	}
	d.Logger.Info("cleanup completed")
}
