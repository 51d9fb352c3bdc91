package ports

import (
	"context"

	"github.com/mikey/spam-corpus-prep/internal/core"
)

// PipelineRunner defines the interface for running the corpus preparation
type PipelineRunner interface {
	// Run prepares the corpus and returns a summary of what was written
	Run(ctx context.Context) (*core.RunSummary, error)
}
