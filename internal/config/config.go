package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidSplit is returned when split boundaries are negative
var ErrInvalidSplit = errors.New("invalid split boundaries")

// flagKeys maps command line flag names to configuration keys
var flagKeys = map[string]string{
	"input":         "input.path",
	"encoding":      "input.encoding",
	"spam-test":     "output.spam_test",
	"spam-train":    "output.spam_train",
	"ham-test":      "output.ham_test",
	"ham-train":     "output.ham_train",
	"test-size":     "split.test_size",
	"train-offset":  "split.train_offset",
	"export":        "export.enabled",
	"export-driver": "export.driver",
	"export-dsn":    "export.dsn",
	"log-level":     "logging.level",
	"log-format":    "logging.format",
}

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance.
// An explicit configFile must exist; otherwise config.yaml is searched in the usual locations.
func New(configFile string) (*Config, error) {
	v := NewEmptyViper()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/spam-corpus-prep/")
		v.AddConfigPath("$HOME/.spam-corpus-prep")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Environment variables
	v.SetEnvPrefix("CORPUS_PREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// BindFlags binds the command line flags that are present in fs onto their keys.
// Flags left at their default do not override the file or environment.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := c.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Input defaults
	v.SetDefault("input.path", "./emails.csv")
	v.SetDefault("input.encoding", "utf-8")

	// Output defaults
	v.SetDefault("output.spam_test", "../test/spam_test.csv")
	v.SetDefault("output.spam_train", "../train/spam_train.csv")
	v.SetDefault("output.ham_test", "../test/ham_test.csv")
	v.SetDefault("output.ham_train", "../train/ham_train.csv")

	// Split defaults
	v.SetDefault("split.test_size", 10)
	v.SetDefault("split.train_offset", 12)

	// Export defaults
	v.SetDefault("export.enabled", false)
	v.SetDefault("export.driver", "sqlite")
	v.SetDefault("export.dsn", "./corpus.db")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
