package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"trend_scout/internal/analysis"
	"trend_scout/internal/catalog"
	"trend_scout/internal/config"
	"trend_scout/internal/domain"
	"trend_scout/internal/language"
	"trend_scout/internal/metrics"
	"trend_scout/internal/normalize"
	"trend_scout/internal/scoring"
	"trend_scout/internal/service"
	"trend_scout/internal/source/apify"
	"trend_scout/internal/source/rss"
)

// loadConfig falls back to built-in defaults when the default config file is absent.
func loadConfig(cmdChanged bool) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err == nil {
		return cfg, nil
	}
	if !cmdChanged && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, err
}

type pipeline struct {
	catalog      *catalog.Catalog
	collector    *metrics.Collector
	orchestrator *service.Orchestrator
}

func buildPipeline(cfg *config.Config, reg prometheus.Registerer, logger *slog.Logger) (*pipeline, error) {
	collector := metrics.NewCollector(reg)

	cat := catalog.Default()
	if len(cfg.Catalog) > 0 {
		cat = catalog.New(cfg.Catalog)
	}

	fetchers, err := buildFetchers(cfg, logger)
	if err != nil {
		return nil, err
	}

	var analyzer scoring.Analyzer
	if cfg.Analysis.Enabled() {
		analyzer = analysis.NewClient(analysis.Config{
			APIKey:           cfg.Analysis.APIKey,
			Model:            cfg.Analysis.Model,
			MaxTokens:        cfg.Analysis.MaxTokens,
			Temperature:      cfg.Analysis.Temperature,
			Timeout:          cfg.Analysis.Timeout,
			RatePerMinute:    cfg.Analysis.RatePerMinute,
			Burst:            cfg.Analysis.Burst,
			FailureThreshold: cfg.Analysis.Breaker.FailureThreshold,
			FailureWindow:    cfg.Analysis.Breaker.Window,
			BreakerDelay:     cfg.Analysis.Breaker.Delay,
		}, collector, logger)
	} else {
		logger.Warn("analysis api key not set, enrichment disabled")
	}

	scorer := scoring.NewScorer(analyzer, scoring.Config{
		Candidates:  cfg.Analysis.Candidates,
		TextLimit:   cfg.Analysis.TextLimit,
		Concurrency: cfg.Analysis.Concurrency,
	}, logger)

	orchestrator := service.NewOrchestrator(
		fetchers,
		cat,
		normalize.New(logger),
		language.English{},
		scorer,
		collector,
		logger,
	)

	return &pipeline{
		catalog:      cat,
		collector:    collector,
		orchestrator: orchestrator,
	}, nil
}

func buildFetchers(cfg *config.Config, logger *slog.Logger) ([]service.Fetcher, error) {
	fetchers := []service.Fetcher{
		rss.New(rss.Config{
			Timeout:   cfg.RSS.Timeout,
			MaxFeeds:  cfg.RSS.MaxFeeds,
			UserAgent: cfg.RSS.UserAgent,
		}, logger),
	}

	if cfg.Apify.Token == "" {
		logger.Warn("apify token not set, social platforms disabled")
		return fetchers, nil
	}

	apifyCfg := apify.Config{
		BaseURL:        cfg.Apify.BaseURL,
		Token:          cfg.Apify.Token,
		Timeout:        cfg.Apify.Timeout,
		MaxAttempts:    cfg.Apify.Retry.MaxAttempts,
		InitialBackoff: cfg.Apify.Retry.InitialBackoff,
		MaxBackoff:     cfg.Apify.Retry.MaxBackoff,
	}

	for _, p := range domain.Platforms() {
		actor, ok := cfg.Apify.Actors[string(p)]
		if !ok || p == domain.PlatformRSS {
			continue
		}
		fetchers = append(fetchers, apify.New(p, apify.Actor{
			ID:            actor.ActorID,
			TermsField:    actor.TermsField,
			TermTemplate:  actor.TermTemplate,
			TermsAsURLs:   actor.TermsAsURLs,
			MaxTerms:      actor.MaxTerms,
			LimitField:    actor.LimitField,
			SinceOperator: actor.SinceOperator,
			DaysBackField: actor.DaysBackField,
			Input:         actor.Input,
		}, apifyCfg, logger))
	}

	for name := range cfg.Apify.Actors {
		if p, ok := domain.ParsePlatform(name); !ok || p == domain.PlatformRSS {
			return nil, fmt.Errorf("apify.actors: unsupported platform %q", name)
		}
	}

	return fetchers, nil
}

// parsePlatforms maps names to platforms; an empty list selects every platform.
func parsePlatforms(names []string) ([]domain.Platform, error) {
	if len(names) == 0 {
		return domain.Platforms(), nil
	}
	platforms := make([]domain.Platform, 0, len(names))
	for _, name := range names {
		p, ok := domain.ParsePlatform(name)
		if !ok {
			return nil, fmt.Errorf("unknown source %q", name)
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}

// resolveCategories checks names against the catalog; an empty list selects every category.
func resolveCategories(cat *catalog.Catalog, names []string) ([]string, error) {
	if len(names) == 0 {
		return cat.Categories(), nil
	}
	for _, name := range names {
		if !cat.Has(name) {
			return nil, fmt.Errorf("unknown category %q", name)
		}
	}
	return names, nil
}
