package sink

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

var mysqlDialect = dialect{
	driver: "mysql",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS corpus_runs (
			run_id VARCHAR(36) PRIMARY KEY,
			created_at VARCHAR(32),
			source_path TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS corpus_splits (
			run_id VARCHAR(36) NOT NULL,
			split_name VARCHAR(32) NOT NULL,
			position INT NOT NULL,
			filtered_text MEDIUMTEXT,
			spam TINYINT,
			PRIMARY KEY (run_id, split_name, position)
		)`,
	},
	insertRun: `INSERT IGNORE INTO corpus_runs (run_id, created_at, source_path) VALUES (?, ?, ?)`,
}

// NewMySQLSink connects to MySQL for split export
func NewMySQLSink(dsn, sourcePath string, logger *zap.Logger) (*SQLSink, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	return newSQLSink(db, mysqlDialect, sourcePath, logger)
}
