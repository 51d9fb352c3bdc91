package config

import (
	"fmt"

	"github.com/mikey/spam-corpus-prep/internal/core"
)

// InputConfig represents the configuration of the source dataset
type InputConfig struct {
	Path     string
	Encoding string
}

// ExportConfig represents the configuration of the optional database export
type ExportConfig struct {
	Enabled bool
	Driver  string
	DSN     string
}

// LoggingConfig represents the logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// GetInput returns the input configuration
func (c *Config) GetInput() InputConfig {
	return InputConfig{
		Path:     c.GetString("input.path"),
		Encoding: c.GetString("input.encoding"),
	}
}

// GetOutputs returns the destination file of each split
func (c *Config) GetOutputs() map[string]string {
	return map[string]string{
		core.SpamTest:  c.GetString("output.spam_test"),
		core.SpamTrain: c.GetString("output.spam_train"),
		core.HamTest:   c.GetString("output.ham_test"),
		core.HamTrain:  c.GetString("output.ham_train"),
	}
}

// GetSplit returns the split boundaries
func (c *Config) GetSplit() (core.SplitBounds, error) {
	bounds := core.SplitBounds{
		TestSize:    c.GetInt("split.test_size"),
		TrainOffset: c.GetInt("split.train_offset"),
	}
	if bounds.TestSize < 0 || bounds.TrainOffset < 0 {
		return core.SplitBounds{}, fmt.Errorf("%w: test_size=%d train_offset=%d",
			ErrInvalidSplit, bounds.TestSize, bounds.TrainOffset)
	}
	return bounds, nil
}

// GetExport returns the export configuration
func (c *Config) GetExport() ExportConfig {
	return ExportConfig{
		Enabled: c.GetBool("export.enabled"),
		Driver:  c.GetString("export.driver"),
		DSN:     c.GetString("export.dsn"),
	}
}

// GetLogging returns the logging configuration
func (c *Config) GetLogging() LoggingConfig {
	return LoggingConfig{
		Level:  c.GetString("logging.level"),
		Format: c.GetString("logging.format"),
	}
}
