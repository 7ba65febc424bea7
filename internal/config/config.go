package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"csv-reader/internal/logger"
	"csv-reader/internal/services"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "CSVREADER"

// Config is the runtime configuration. Viewer state that survives restarts
// (recent files, last viewed file) lives in the toolkit preferences instead.
type Config struct {
	LogLevel        string        `mapstructure:"log_level"`
	JSONLogs        bool          `mapstructure:"json_logs"`
	MaxRecentFiles  int           `mapstructure:"max_recent_files"`
	MetricsInterval time.Duration `mapstructure:"metrics_interval"`
}

// Level returns the parsed log level.
func (c Config) Level() logger.LogLevel {
	return logger.ParseLevel(c.LogLevel)
}

// NewViper returns a viper instance reading CSVREADER_* variables, with defaults set.
// Callers bind command-line flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("json_logs", false)
	v.SetDefault("max_recent_files", services.DefaultMaxRecentFiles)
	v.SetDefault("metrics_interval", 30*time.Second)
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		LogLevel:        v.GetString("log_level"),
		JSONLogs:        v.GetBool("json_logs"),
		MaxRecentFiles:  v.GetInt("max_recent_files"),
		MetricsInterval: v.GetDuration("metrics_interval"),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	if cfg.MaxRecentFiles < 1 {
		return fmt.Errorf("max_recent_files must be positive, got %d", cfg.MaxRecentFiles)
	}
	if cfg.MetricsInterval <= 0 {
		return fmt.Errorf("metrics_interval must be positive, got %s", cfg.MetricsInterval)
	}
	return nil
}
