package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mikey/spam-corpus-prep/internal/core"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	textColumn  = "text"
	labelColumn = "spam"
)

// CSVSource reads labelled emails from a delimited file with a header row
type CSVSource struct {
	path     string
	encoding encoding.Encoding
	logger   *zap.Logger
}

// LookupEncoding resolves an encoding name from configuration
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported input encoding: %s", name)
	}
}

// NewCSVSource creates a new CSV record source
func NewCSVSource(path, encodingName string, logger *zap.Logger) (*CSVSource, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &CSVSource{
		path:     path,
		encoding: enc,
		logger:   logger,
	}, nil
}

// Location returns the path of the source file
func (s *CSVSource) Location() string {
	return s.path
}

// Load reads every record of the file in order
func (s *CSVSource) Load(ctx context.Context) ([]core.Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.read(ctx, file)
}

func (s *CSVSource) read(ctx context.Context, r io.Reader) ([]core.Record, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(s.encoding.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input has no header", core.ErrMissingColumn)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	textIdx, err := findColIndex(header, textColumn)
	if err != nil {
		return nil, err
	}
	labelIdx, err := findColIndex(header, labelColumn)
	if err != nil {
		return nil, err
	}

	var records []core.Record
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		if textIdx >= len(row) || labelIdx >= len(row) {
			return nil, fmt.Errorf("%w: record %d has %d fields", core.ErrMissingColumn, n, len(row))
		}

		label, err := core.ParseLabel(row[labelIdx])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", n, err)
		}

		records = append(records, core.Record{
			Text: row[textIdx],
			Spam: label,
		})
	}

	s.logger.Debug("Read input file",
		zap.String("file", s.path),
		zap.Strings("header", header),
		zap.Int("records", len(records)))

	return records, nil
}

// findColIndex finds the index of a column name in the header row
func findColIndex(header []string, target string) (int, error) {
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), target) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", core.ErrMissingColumn, target)
}
