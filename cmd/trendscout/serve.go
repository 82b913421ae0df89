package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"trend_scout/internal/api"
	"trend_scout/internal/domain"
	"trend_scout/internal/jobs"
	"trend_scout/internal/metrics"
	"trend_scout/internal/publisher"
	"trend_scout/internal/scheduler"
	"trend_scout/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, job runner and optional scheduler",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := setupLogger("info")

	cfg, err := loadConfig(cmd.Flags().Changed("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return err
	}

	logger = setupLogger(cfg.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	p, err := buildPipeline(cfg, reg, logger)
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		return err
	}

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			return err
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	registry := jobs.NewRegistry(cfg.Jobs.TTL, logger)
	runner := service.NewRunner(p.orchestrator, registry, pub, p.collector, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Schedule.Interval > 0 {
		platforms, err := parsePlatforms(cfg.Schedule.Platforms)
		if err != nil {
			logger.Error("invalid schedule", "error", err)
			return err
		}
		categories, err := resolveCategories(p.catalog, cfg.Schedule.Categories)
		if err != nil {
			logger.Error("invalid schedule", "error", err)
			return err
		}

		sched := scheduler.NewScheduler(runner, domain.WorkflowParams{
			Categories:     categories,
			Platforms:      platforms,
			DaysBack:       cfg.Workflow.DaysBack,
			LimitPerSource: cfg.Workflow.LimitPerSource,
			TopN:           cfg.Workflow.TopN,
		}, cfg.Schedule.Interval, logger)

		go func() {
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	server := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: api.NewRouter(&api.RouterDeps{
			Submitter: runner,
			Jobs:      registry,
			Catalog:   p.catalog,
			Defaults: api.WorkflowDefaults{
				DaysBack:       cfg.Workflow.DaysBack,
				LimitPerSource: cfg.Workflow.LimitPerSource,
				TopN:           cfg.Workflow.TopN,
			},
			Metrics: metrics.Handler(reg),
			Logger:  logger,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting trend scout", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server error", "error", err)
			return err
		}
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if err := runner.Shutdown(shutdownCtx); err != nil {
		logger.Error("runner shutdown error", "error", err)
	}

	logger.Info("stopped")
	return nil
}
