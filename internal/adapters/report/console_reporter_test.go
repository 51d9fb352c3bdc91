package report

import (
	"bytes"
	"testing"

	"github.com/mikey/spam-corpus-prep/internal/core"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestConsoleReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf, zap.NewNop())

	r.LabelCounts([]core.LabelCount{
		{Label: core.Ham, Count: 4360},
		{Label: core.Spam, Count: 1368},
	})
	r.Done()

	assert.Equal(t, ""+
		"      text\n"+
		"spam      \n"+
		"0     4360\n"+
		"1     1368\n"+
		"done\n", buf.String())
}

func TestConsoleReporterWideCounts(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf, zap.NewNop())

	r.LabelCounts([]core.LabelCount{{Label: core.Spam, Count: 123456}})

	assert.Equal(t, ""+
		"        text\n"+
		"spam        \n"+
		"1     123456\n", buf.String())
}
