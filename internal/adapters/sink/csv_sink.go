package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mikey/spam-corpus-prep/internal/core"
	"go.uber.org/zap"
)

// Header is the header row of every split file
var Header = []string{"filtered_text", "spam"}

// CSVSink writes each split to its own delimited file
type CSVSink struct {
	paths  map[string]string
	logger *zap.Logger
}

// NewCSVSink creates a CSV sink writing splits to the given paths, keyed by split name
func NewCSVSink(paths map[string]string, logger *zap.Logger) *CSVSink {
	return &CSVSink{
		paths:  paths,
		logger: logger,
	}
}

// Write truncates the split's file and writes the header and its records
func (s *CSVSink) Write(ctx context.Context, runID string, split core.Split) (err error) {
	path, ok := s.paths[split.Name]
	if !ok {
		return fmt.Errorf("no output path configured for split %s", split.Name)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range split.Records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.Write([]string{r.FilteredText, r.Spam.String()}); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	s.logger.Debug("Wrote split file",
		zap.String("split", split.Name),
		zap.String("file", path),
		zap.Int("records", len(split.Records)))

	return nil
}
