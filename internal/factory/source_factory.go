package factory

import (
	"github.com/mikey/spam-corpus-prep/internal/adapters/source"
	"github.com/mikey/spam-corpus-prep/internal/config"
	"github.com/mikey/spam-corpus-prep/internal/core"
	"go.uber.org/zap"
)

// SourceFactory creates record sources based on configuration
type SourceFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewSourceFactory creates a new source factory
func NewSourceFactory(cfg *config.Config, logger *zap.Logger) *SourceFactory {
	return &SourceFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateRecordSource creates the CSV record source of the configured input
func (f *SourceFactory) CreateRecordSource() (core.RecordSource, error) {
	input := f.cfg.GetInput()
	return source.NewCSVSource(input.Path, input.Encoding, f.logger)
}
