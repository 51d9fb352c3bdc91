package core

import (
	"context"
	"errors"
)

var (
	// ErrMissingColumn is returned when the source lacks a required column
	ErrMissingColumn = errors.New("missing required column")
	// ErrInvalidLabel is returned when a label value is not an integer
	ErrInvalidLabel = errors.New("invalid label")
)

// RecordSource loads the labelled dataset
type RecordSource interface {
	// Load returns every record in source order
	Load(ctx context.Context) ([]Record, error)

	// Location describes where the records come from
	Location() string
}

// TextNormalizer derives the filtered text of a record
type TextNormalizer interface {
	Normalize(text string) string
}

// SplitSink persists a named split
type SplitSink interface {
	// Write stores the split, replacing any previous content of the same name
	Write(ctx context.Context, runID string, split Split) error
}

// Reporter prints run diagnostics for the operator
type Reporter interface {
	// LabelCounts reports the per-label record counts of the source
	LabelCounts(counts []LabelCount)

	// Done reports completion
	Done()
}
