package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/hrpulse/internal/cli"
	"github.com/alexanderramin/hrpulse/internal/config"
	"github.com/alexanderramin/hrpulse/internal/intelligence"
	"github.com/alexanderramin/hrpulse/internal/llm"
	"github.com/alexanderramin/hrpulse/internal/logging"
	"github.com/alexanderramin/hrpulse/internal/metrics"
	"github.com/alexanderramin/hrpulse/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metricsMgr := metrics.NewManager()
	var metricsFile string

	app := &cli.App{
		Now: time.Now,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	app.Setup = func(ctx context.Context, opts cli.Options) error {
		cfg, err := config.Load(ctx, opts.ConfigPath)
		if err != nil {
			return err
		}
		if opts.DatasetPath != "" {
			cfg.Dataset = opts.DatasetPath
		}
		if opts.LogLevel != "" {
			cfg.LogLevel = opts.LogLevel
		}
		metricsFile = cfg.MetricsFile

		logger, err := logging.New(os.Stderr, cfg.LogLevel)
		if err != nil {
			return err
		}

		dataset, err := seed.Open(ctx, cfg.Dataset, logger)
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}
		metricsMgr.SetDatasetSize(len(dataset.Employees()))

		observer := llm.MultiObserver{metricsMgr}
		llmCfg := cfg.LLM()
		if llmCfg.LogCalls {
			observer = append(observer, llm.NewLogObserver(logger))
		}
		client := llm.New(llmCfg, observer)

		deps := intelligence.Deps{
			Client:   client,
			Logger:   logger,
			Recorder: metricsMgr,
			Now:      app.Now,
		}

		app.Dataset = dataset
		app.Logger = logger
		app.LLM = llmCfg
		app.Client = client
		app.Assistant = intelligence.NewAssistant(deps)
		app.Rationale = intelligence.NewRationaleService(deps)
		app.Messages = intelligence.NewMessageService(deps)
		return nil
	}

	rootCmd := cli.NewRootCmd(app)
	err := rootCmd.ExecuteContext(ctx)

	if metricsFile != "" {
		if werr := metricsMgr.WriteTextfile(metricsFile); werr != nil {
			fmt.Fprintf(os.Stderr, "Warning: writing metrics: %v\n", werr)
		}
	}
	return err
}
