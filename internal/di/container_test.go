package di

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/mikey/spam-corpus-prep/internal/config"
	"github.com/mikey/spam-corpus-prep/internal/core"
	"github.com/mikey/spam-corpus-prep/internal/ports"
)

func TestContainerRunsPipeline(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "emails.csv")

	var b strings.Builder
	b.WriteString("\"text\",\"spam\"\n")
	for i := 0; i < 14; i++ {
		b.WriteString("\"Subject: cheap meds, order 24 now!\",1\n")
	}
	b.WriteString("\"Subject: re: lunch at 12\",0\n")
	require.NoError(t, os.WriteFile(input, []byte(b.String()), 0o644))

	v := config.NewEmptyViper()
	v.Set("input.path", input)
	for _, name := range core.SplitNames {
		v.Set("output."+name, filepath.Join(dir, name+".csv"))
	}
	v.Set("logging.level", "error")

	var out bytes.Buffer
	container, err := BuildContainer(config.NewFromViper(v), &out)
	require.NoError(t, err)

	var summary *core.RunSummary
	err = container.Invoke(func(runner ports.PipelineRunner) error {
		var err error
		summary, err = runner.Run(context.Background())
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Splits[core.SpamTest])
	assert.Equal(t, 2, summary.Splits[core.SpamTrain])
	assert.Equal(t, 1, summary.Splits[core.HamTest])
	assert.Equal(t, 0, summary.Splits[core.HamTrain])

	spamTrain, err := os.ReadFile(filepath.Join(dir, core.SpamTrain+".csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(spamTrain), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "filtered_text,spam", lines[0])
	assert.Equal(t, "cheap meds order thisisanumber,1", lines[1])

	hamTest, err := os.ReadFile(filepath.Join(dir, core.HamTest+".csv"))
	require.NoError(t, err)
	assert.Equal(t, "filtered_text,spam\nlunch thisisanumber,0\n", string(hamTest))

	assert.True(t, strings.HasSuffix(out.String(), "done\n"))
}

func TestContainerRejectsBadSplit(t *testing.T) {
	v := config.NewEmptyViper()
	v.Set("split.test_size", -1)
	v.Set("logging.level", "error")

	container, err := BuildContainer(config.NewFromViper(v), &bytes.Buffer{})
	require.NoError(t, err)

	err = container.Invoke(func(runner ports.PipelineRunner) {})
	assert.ErrorIs(t, dig.RootCause(err), config.ErrInvalidSplit)
}
