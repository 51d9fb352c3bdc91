package sink

import (
	"context"
	"sync"

	"github.com/mikey/spam-corpus-prep/internal/core"
	"go.uber.org/zap"
)

// MemorySink keeps the last written copy of each split in memory
type MemorySink struct {
	splits map[string]core.Split
	runs   map[string]string
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewMemorySink creates a new in-memory sink
func NewMemorySink(logger *zap.Logger) *MemorySink {
	return &MemorySink{
		splits: make(map[string]core.Split),
		runs:   make(map[string]string),
		logger: logger,
	}
}

// Write stores a copy of the split
func (s *MemorySink) Write(ctx context.Context, runID string, split core.Split) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]core.FilteredRecord, len(split.Records))
	copy(records, split.Records)

	s.splits[split.Name] = core.Split{Name: split.Name, Records: records}
	s.runs[split.Name] = runID

	s.logger.Debug("Stored split in memory", zap.String("split", split.Name), zap.Int("records", len(records)))
	return nil
}

// Get returns the stored split and whether it was written
func (s *MemorySink) Get(name string) (core.Split, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	split, ok := s.splits[name]
	return split, ok
}

// RunID returns the run that last wrote the split
func (s *MemorySink) RunID(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.runs[name]
}
