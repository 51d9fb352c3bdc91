package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey/spam-corpus-prep/internal/config"
	"github.com/mikey/spam-corpus-prep/internal/core"
	"github.com/mikey/spam-corpus-prep/internal/di"
	"github.com/mikey/spam-corpus-prep/internal/ports"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "spam-corpus-prep",
		Short:         "Normalize a labelled email dataset and write test and train splits",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(configFile)
			if err != nil {
				return err
			}
			if err := cfg.BindFlags(cmd.Flags()); err != nil {
				return err
			}

			// Build the dependency injection container
			container, err := di.BuildContainer(cfg, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to build dependency container: %w", err)
			}

			return container.Invoke(func(logger *zap.Logger, runner ports.PipelineRunner, sinks []core.SplitSink) error {
				return run(cmd.Context(), logger, runner, sinks)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Path to config file")
	flags.String("input", "./emails.csv", "Input CSV with text and spam columns")
	flags.String("encoding", "utf-8", "Input encoding (utf-8, latin1, windows-1252)")
	flags.String("spam-test", "../test/spam_test.csv", "Output file for the spam test split")
	flags.String("spam-train", "../train/spam_train.csv", "Output file for the spam train split")
	flags.String("ham-test", "../test/ham_test.csv", "Output file for the ham test split")
	flags.String("ham-train", "../train/ham_train.csv", "Output file for the ham train split")
	flags.Int("test-size", 10, "Number of records per label in the test split")
	flags.Int("train-offset", 12, "Index per label where the train split starts")
	flags.Bool("export", false, "Also export the splits to a database")
	flags.String("export-driver", "sqlite", "Export database driver (sqlite, mysql)")
	flags.String("export-dsn", "./corpus.db", "Export database path or DSN")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "console", "Log format (console, json)")

	return cmd
}

// run is the main application function that gets all dependencies injected
func run(parent context.Context, logger *zap.Logger, runner ports.PipelineRunner, sinks []core.SplitSink) error {
	defer logger.Sync()

	// Close any sinks holding connections
	defer func() {
		for _, s := range sinks {
			if stopper, ok := s.(interface{ Stop() }); ok {
				stopper.Stop()
			}
		}
	}()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := runner.Run(ctx)
	if err != nil {
		logger.Error("Corpus preparation failed", zap.Error(err))
		return err
	}

	logger.Info("Corpus preparation complete",
		zap.String("run_id", summary.RunID),
		zap.Int(core.SpamTest, summary.Splits[core.SpamTest]),
		zap.Int(core.SpamTrain, summary.Splits[core.SpamTrain]),
		zap.Int(core.HamTest, summary.Splits[core.HamTest]),
		zap.Int(core.HamTrain, summary.Splits[core.HamTrain]))

	return nil
}
