package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikey/spam-corpus-prep/internal/adapters/sink"
	"github.com/mikey/spam-corpus-prep/internal/config"
	"github.com/mikey/spam-corpus-prep/internal/core"
	"go.uber.org/zap"
)

// SinkFactory creates split sinks based on configuration
type SinkFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewSinkFactory creates a new sink factory
func NewSinkFactory(cfg *config.Config, logger *zap.Logger) *SinkFactory {
	return &SinkFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateSplitSinks creates the CSV sink and, when enabled, the database export sink
func (f *SinkFactory) CreateSplitSinks() ([]core.SplitSink, error) {
	sinks := []core.SplitSink{sink.NewCSVSink(f.cfg.GetOutputs(), f.logger)}

	export := f.cfg.GetExport()
	if !export.Enabled {
		return sinks, nil
	}

	exportSink, err := f.createExportSink(export)
	if err != nil {
		return nil, err
	}
	f.logger.Info("Exporting splits to database", zap.String("driver", export.Driver))

	return append(sinks, exportSink), nil
}

func (f *SinkFactory) createExportSink(export config.ExportConfig) (core.SplitSink, error) {
	sourcePath := f.cfg.GetInput().Path

	switch export.Driver {
	case "memory":
		return sink.NewMemorySink(f.logger), nil
	case "sqlite":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(export.DSN), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return sink.NewSQLiteSink(export.DSN, sourcePath, f.logger)
	case "mysql":
		return sink.NewMySQLSink(export.DSN, sourcePath, f.logger)
	default:
		return nil, fmt.Errorf("unsupported export driver: %s", export.Driver)
	}
}
