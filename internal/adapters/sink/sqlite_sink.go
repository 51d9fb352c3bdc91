package sink

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

var sqliteDialect = dialect{
	driver: "sqlite3",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS corpus_runs (
			run_id TEXT PRIMARY KEY,
			created_at TEXT,
			source_path TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS corpus_splits (
			run_id TEXT NOT NULL,
			split_name TEXT NOT NULL,
			position INTEGER NOT NULL,
			filtered_text TEXT,
			spam INTEGER,
			PRIMARY KEY (run_id, split_name, position)
		)`,
	},
	insertRun: `INSERT OR IGNORE INTO corpus_runs (run_id, created_at, source_path) VALUES (?, ?, ?)`,
}

// NewSQLiteSink opens (or creates) a SQLite database for split export
func NewSQLiteSink(dbPath, sourcePath string, logger *zap.Logger) (*SQLSink, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	return newSQLSink(db, sqliteDialect, sourcePath, logger)
}
