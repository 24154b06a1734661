package config

import "time"

// Config holds runtime settings for the VMIS CLI.
//
// Fields:
//   - BaseURL: origin every endpoint path is resolved against.
//   - DatabasePath: SQLite file holding the persisted session.
//   - LogLevel: debug, info, warn or error.
//   - HTTPTimeout: per-request limit; zero means no limit.
type Config struct {
	BaseURL      string
	DatabasePath string
	LogLevel     string
	HTTPTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/"
	c.DatabasePath = "vmis.db"
	c.LogLevel = "warn"
	c.HTTPTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
