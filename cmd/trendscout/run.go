package main

import (
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"trend_scout/internal/domain"
)

var (
	runCategories []string
	runSources    []string
	runDaysBack   int
	runTopN       int
)

var errDaysBack = errors.New("days-back must be between 1 and 30")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one workflow and print the ranked stories as JSON",
	Args:  cobra.NoArgs,
	RunE:  runOnce,
}

func init() {
	runCmd.Flags().StringSliceVar(&runCategories, "categories", nil, "categories to search (default all)")
	runCmd.Flags().StringSliceVar(&runSources, "sources", nil, "sources to search (default all)")
	runCmd.Flags().IntVar(&runDaysBack, "days-back", 0, "days to look back, 1-30 (default from config)")
	runCmd.Flags().IntVar(&runTopN, "top-n", 0, "number of stories to return (default from config)")
}

func runOnce(cmd *cobra.Command, _ []string) error {
	logger := setupLogger("info")

	cfg, err := loadConfig(cmd.Flags().Changed("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return err
	}

	logger = setupLogger(cfg.LogLevel)

	p, err := buildPipeline(cfg, prometheus.NewRegistry(), logger)
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		return err
	}

	params, err := runParams(p, cfg.Workflow.DaysBack, cfg.Workflow.LimitPerSource, cfg.Workflow.TopN)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stories, err := p.orchestrator.RunWorkflow(ctx, params)
	if err != nil {
		logger.Error("workflow failed", "error", err)
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(stories)
}

func runParams(p *pipeline, daysBack, limit, topN int) (domain.WorkflowParams, error) {
	categories, err := resolveCategories(p.catalog, runCategories)
	if err != nil {
		return domain.WorkflowParams{}, err
	}
	platforms, err := parsePlatforms(runSources)
	if err != nil {
		return domain.WorkflowParams{}, err
	}
	if runDaysBack != 0 {
		daysBack = runDaysBack
	}
	if daysBack < 1 || daysBack > 30 {
		return domain.WorkflowParams{}, errDaysBack
	}
	if runTopN != 0 {
		topN = runTopN
	}

	return domain.WorkflowParams{
		Categories:     categories,
		Platforms:      platforms,
		DaysBack:       daysBack,
		LimitPerSource: limit,
		TopN:           topN,
	}, nil
}
