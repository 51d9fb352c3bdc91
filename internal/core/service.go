package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PreparationService turns a labelled email dataset into test and train splits
type PreparationService struct {
	source     RecordSource
	normalizer TextNormalizer
	sinks      []SplitSink
	reporter   Reporter
	logger     *zap.Logger
	bounds     SplitBounds
}

// NewPreparationService creates a new preparation service
func NewPreparationService(
	source RecordSource,
	normalizer TextNormalizer,
	sinks []SplitSink,
	reporter Reporter,
	logger *zap.Logger,
	bounds SplitBounds,
) *PreparationService {
	return &PreparationService{
		source:     source,
		normalizer: normalizer,
		sinks:      sinks,
		reporter:   reporter,
		logger:     logger,
		bounds:     bounds,
	}
}

// Normalize derives the filtered text of every record, preserving order
func (s *PreparationService) Normalize(ctx context.Context, records []Record) ([]FilteredRecord, error) {
	out := make([]FilteredRecord, len(records))
	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = FilteredRecord{
			Record:       r,
			FilteredText: s.normalizer.Normalize(r.Text),
		}
	}
	return out, nil
}

// Run loads, normalizes, partitions and writes the corpus
func (s *PreparationService) Run(ctx context.Context) (*RunSummary, error) {
	runID := uuid.NewString()
	logger := s.logger.With(zap.String("run_id", runID))

	records, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records from %s: %w", s.source.Location(), err)
	}
	logger.Info("Loaded records",
		zap.String("source", s.source.Location()),
		zap.Int("count", len(records)))

	counts := CountByLabel(records)
	s.reporter.LabelCounts(counts)

	filtered, err := s.Normalize(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize records: %w", err)
	}
	logger.Debug("Normalized records", zap.Int("count", len(filtered)))

	summary := &RunSummary{
		RunID:  runID,
		Counts: counts,
		Splits: make(map[string]int, len(SplitNames)),
	}

	for _, split := range Partition(filtered, s.bounds) {
		for _, sink := range s.sinks {
			if err := sink.Write(ctx, runID, split); err != nil {
				return nil, fmt.Errorf("failed to write split %s: %w", split.Name, err)
			}
		}
		summary.Splits[split.Name] = len(split.Records)
		logger.Info("Wrote split",
			zap.String("split", split.Name),
			zap.Int("records", len(split.Records)))
	}

	s.reporter.Done()
	return summary, nil
}
