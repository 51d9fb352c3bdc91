package di

import (
	"io"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/spam-corpus-prep/internal/adapters/report"
	"github.com/mikey/spam-corpus-prep/internal/config"
	"github.com/mikey/spam-corpus-prep/internal/core"
	"github.com/mikey/spam-corpus-prep/internal/factory"
	"github.com/mikey/spam-corpus-prep/internal/logging"
	"github.com/mikey/spam-corpus-prep/internal/ports"
)

// BuildContainer creates and configures a dependency injection container.
// The run report is printed to out.
func BuildContainer(cfg *config.Config, out io.Writer) (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewSourceFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewSinkFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}

	// Register text normalizer
	if err := container.Provide(func(f *factory.TextProcessorFactory) (core.TextNormalizer, error) {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register record source
	if err := container.Provide(func(f *factory.SourceFactory) (core.RecordSource, error) {
		return f.CreateRecordSource()
	}); err != nil {
		return nil, err
	}

	// Register split sinks
	if err := container.Provide(func(f *factory.SinkFactory) ([]core.SplitSink, error) {
		return f.CreateSplitSinks()
	}); err != nil {
		return nil, err
	}

	// Register reporter
	if err := container.Provide(func(logger *zap.Logger) core.Reporter {
		return report.NewConsoleReporter(out, logger)
	}); err != nil {
		return nil, err
	}

	// Register split boundaries
	if err := container.Provide(func(cfg *config.Config) (core.SplitBounds, error) {
		return cfg.GetSplit()
	}); err != nil {
		return nil, err
	}

	// Register preparation service
	if err := container.Provide(core.NewPreparationService); err != nil {
		return nil, err
	}

	// Register pipeline runner
	if err := container.Provide(func(s *core.PreparationService) ports.PipelineRunner {
		return s
	}); err != nil {
		return nil, err
	}

	return container, nil
}
