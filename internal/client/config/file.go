package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/vmis/internal/flagx"
	"github.com/dmitrijs2005/vmis/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file decoding. The timeout
// is a timex.Duration so files may say "5s" or give integer nanoseconds.
// Keys that are absent leave the corresponding Config value alone.
type FileConfig struct {
	BaseURL      string          `json:"base_url" yaml:"base_url"`
	DatabasePath string          `json:"database_path" yaml:"database_path"`
	LogLevel     string          `json:"log_level" yaml:"log_level"`
	HTTPTimeout  *timex.Duration `json:"http_timeout" yaml:"http_timeout"`
}

// parseFile overlays Config with values from the file named by -c/-config.
// Files ending in .yaml or .yml are read as YAML, anything else as JSON.
// Panics on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.HTTPTimeout != nil {
		cfg.HTTPTimeout = fc.HTTPTimeout.Duration
	}
}
