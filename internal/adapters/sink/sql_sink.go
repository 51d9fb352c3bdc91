package sink

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mikey/spam-corpus-prep/internal/core"
	"go.uber.org/zap"
)

// dialect holds the driver specific statements of a SQL sink
type dialect struct {
	driver    string
	schema    []string
	insertRun string
}

// SQLSink exports splits into a relational database
type SQLSink struct {
	db         *sql.DB
	dialect    dialect
	sourcePath string
	logger     *zap.Logger
}

func newSQLSink(db *sql.DB, d dialect, sourcePath string, logger *zap.Logger) (*SQLSink, error) {
	for _, stmt := range d.schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return &SQLSink{
		db:         db,
		dialect:    d,
		sourcePath: sourcePath,
		logger:     logger,
	}, nil
}

// Write replaces the rows of the split for this run inside a transaction
func (s *SQLSink) Write(ctx context.Context, runID string, split core.Split) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.dialect.insertRun,
		runID, time.Now().UTC().Format(time.RFC3339), s.sourcePath); err != nil {
		return fmt.Errorf("failed to register run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM corpus_splits
		WHERE run_id = ? AND split_name = ?
	`, runID, split.Name); err != nil {
		return fmt.Errorf("failed to clear split: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO corpus_splits (run_id, split_name, position, filtered_text, spam)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range split.Records {
		if _, err := stmt.ExecContext(ctx, runID, split.Name, i, r.FilteredText, int(r.Spam)); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit split: %w", err)
	}

	s.logger.Debug("Exported split",
		zap.String("driver", s.dialect.driver),
		zap.String("split", split.Name),
		zap.Int("records", len(split.Records)))

	return nil
}

// ReadSplit returns the exported records of a split in order
func (s *SQLSink) ReadSplit(ctx context.Context, runID, name string) ([]core.FilteredRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT filtered_text, spam
		FROM corpus_splits
		WHERE run_id = ? AND split_name = ?
		ORDER BY position
	`, runID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query split: %w", err)
	}
	defer rows.Close()

	var records []core.FilteredRecord
	for rows.Next() {
		var r core.FilteredRecord
		var label int
		if err := rows.Scan(&r.FilteredText, &label); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		r.Spam = core.Label(label)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Stop closes the database connection
func (s *SQLSink) Stop() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close database", zap.String("driver", s.dialect.driver), zap.Error(err))
	}
}
