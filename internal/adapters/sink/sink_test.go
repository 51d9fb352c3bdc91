package sink

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mikey/spam-corpus-prep/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSplit() core.Split {
	return core.Split{
		Name: core.SpamTest,
		Records: []core.FilteredRecord{
			{Record: core.Record{Text: "Subject: FREE 1000 dollars", Spam: core.Spam}, FilteredText: "thisisanumber dollars"},
			{Record: core.Record{Text: "Subject: a, b", Spam: core.Spam}, FilteredText: "needs, quoting"},
			{Record: core.Record{Text: "Subject:", Spam: core.Spam}, FilteredText: ""},
		},
	}
}

func csvPaths(dir string) map[string]string {
	return map[string]string{
		core.SpamTest:  filepath.Join(dir, "spam_test.csv"),
		core.SpamTrain: filepath.Join(dir, "spam_train.csv"),
		core.HamTest:   filepath.Join(dir, "ham_test.csv"),
		core.HamTrain:  filepath.Join(dir, "ham_train.csv"),
	}
}

func TestCSVSinkWrite(t *testing.T) {
	dir := t.TempDir()
	paths := csvPaths(dir)
	s := NewCSVSink(paths, zap.NewNop())

	require.NoError(t, s.Write(context.Background(), "run-1", testSplit()))

	data, err := os.ReadFile(paths[core.SpamTest])
	require.NoError(t, err)
	assert.Equal(t, "filtered_text,spam\n"+
		"thisisanumber dollars,1\n"+
		"\"needs, quoting\",1\n"+
		",1\n", string(data))
}

func TestCSVSinkEmptySplit(t *testing.T) {
	paths := csvPaths(t.TempDir())
	s := NewCSVSink(paths, zap.NewNop())

	require.NoError(t, s.Write(context.Background(), "run-1", core.Split{Name: core.HamTrain}))

	data, err := os.ReadFile(paths[core.HamTrain])
	require.NoError(t, err)
	assert.Equal(t, "filtered_text,spam\n", string(data))
}

func TestCSVSinkOverwriteIsDeterministic(t *testing.T) {
	paths := csvPaths(t.TempDir())
	s := NewCSVSink(paths, zap.NewNop())

	require.NoError(t, s.Write(context.Background(), "run-1", testSplit()))
	first, err := os.ReadFile(paths[core.SpamTest])
	require.NoError(t, err)

	require.NoError(t, s.Write(context.Background(), "run-2", testSplit()))
	second, err := os.ReadFile(paths[core.SpamTest])
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCSVSinkErrors(t *testing.T) {
	dir := t.TempDir()

	s := NewCSVSink(map[string]string{}, zap.NewNop())
	assert.Error(t, s.Write(context.Background(), "run-1", testSplit()))

	s = NewCSVSink(map[string]string{
		core.SpamTest: filepath.Join(dir, "missing", "spam_test.csv"),
	}, zap.NewNop())
	err := s.Write(context.Background(), "run-1", testSplit())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMemorySink(t *testing.T) {
	s := NewMemorySink(zap.NewNop())

	_, ok := s.Get(core.SpamTest)
	assert.False(t, ok)

	split := testSplit()
	require.NoError(t, s.Write(context.Background(), "run-1", split))
	split.Records[0].FilteredText = "mutated"

	got, ok := s.Get(core.SpamTest)
	require.True(t, ok)
	assert.Equal(t, "thisisanumber dollars", got.Records[0].FilteredText)
	assert.Equal(t, "run-1", s.RunID(core.SpamTest))
}

func TestSQLiteSink(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteSink(filepath.Join(t.TempDir(), "corpus.db"), "emails.csv", zap.NewNop())
	require.NoError(t, err)
	defer s.Stop()

	require.NoError(t, s.Write(ctx, "run-1", testSplit()))
	// rewriting the same split replaces its rows
	require.NoError(t, s.Write(ctx, "run-1", testSplit()))

	records, err := s.ReadSplit(ctx, "run-1", core.SpamTest)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "thisisanumber dollars", records[0].FilteredText)
	assert.Equal(t, "needs, quoting", records[1].FilteredText)
	assert.Equal(t, "", records[2].FilteredText)
	for _, r := range records {
		assert.Equal(t, core.Spam, r.Spam)
	}

	records, err = s.ReadSplit(ctx, "run-2", core.SpamTest)
	require.NoError(t, err)
	assert.Empty(t, records)
}
