// Package config loads runtime configuration: a YAML file with
// environment-variable overrides. Local development can keep overrides in
// .env.local, loaded when APP_ENV=local.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration.
type Config struct {
	// Database is the SQLite database path.
	Database string `yaml:"database"`

	// LogDir is the directory holding the append-only job log sinks.
	LogDir string `yaml:"log_dir"`

	// Redis configures the optional product cache; an empty Addr
	// disables caching entirely.
	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig configures the optional product cache.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// Default returns the configuration used when no file or overrides are
// present. The log directory matches the original deployment layout.
func Default() Config {
	return Config{
		Database: "crm.db",
		LogDir:   "/tmp",
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then environment overrides.
//
// When APP_ENV=local, .env.local is loaded first so local overrides reach
// the environment before they are read.
func Load(path string) (Config, error) {
	loadDotEnv()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// loadDotEnv loads .env.local for local development only. A missing file
// is not an error; the system environment still applies.
func loadDotEnv() {
	if os.Getenv("APP_ENV") != "local" {
		return
	}
	if err := godotenv.Load(".env.local"); err != nil {
		slog.Debug(".env.local not loaded", "error", err)
	}
}

// applyEnvOverrides lets the environment win over file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CRM_DATABASE"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("CRM_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("CRM_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
}

// Sink file names, one per job, inside LogDir.
const (
	heartbeatLogName = "crm_heartbeat_log.txt"
	remindersLogName = "order_reminders_log.txt"
	restockLogName   = "low_stock_updates_log.txt"
	reportLogName    = "crm_report_log.txt"
)

// HeartbeatLog returns the heartbeat sink path.
func (c Config) HeartbeatLog() string { return filepath.Join(c.LogDir, heartbeatLogName) }

// RemindersLog returns the order-reminder sink path.
func (c Config) RemindersLog() string { return filepath.Join(c.LogDir, remindersLogName) }

// RestockLog returns the low-stock-update sink path.
func (c Config) RestockLog() string { return filepath.Join(c.LogDir, restockLogName) }

// ReportLog returns the weekly-report sink path.
func (c Config) ReportLog() string { return filepath.Join(c.LogDir, reportLogName) }
