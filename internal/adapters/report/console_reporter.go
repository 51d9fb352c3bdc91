package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mikey/spam-corpus-prep/internal/core"
	"go.uber.org/zap"
)

// ConsoleReporter prints run diagnostics in the layout of a grouped count table
type ConsoleReporter struct {
	out    io.Writer
	logger *zap.Logger
}

// NewConsoleReporter creates a new console reporter
func NewConsoleReporter(out io.Writer, logger *zap.Logger) *ConsoleReporter {
	return &ConsoleReporter{
		out:    out,
		logger: logger,
	}
}

// LabelCounts prints the number of records per label
func (r *ConsoleReporter) LabelCounts(counts []core.LabelCount) {
	labelWidth := len("spam")
	countWidth := len("text")
	for _, c := range counts {
		labelWidth = max(labelWidth, len(c.Label.String()))
		countWidth = max(countWidth, len(strconv.Itoa(c.Count)))
	}

	fmt.Fprintf(r.out, "%*s  %*s\n", labelWidth, "", countWidth, "text")
	fmt.Fprintf(r.out, "%-*s  %*s\n", labelWidth, "spam", countWidth, "")
	for _, c := range counts {
		fmt.Fprintf(r.out, "%-*s  %*d\n", labelWidth, c.Label.String(), countWidth, c.Count)
		r.logger.Debug("Label count", zap.Int("label", int(c.Label)), zap.Int("count", c.Count))
	}
}

// Done prints the completion marker
func (r *ConsoleReporter) Done() {
	fmt.Fprintln(r.out, "done")
}
