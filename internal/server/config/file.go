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

// FileConfig is the on-disk shape of the server configuration. Durations use
// timex.Duration, so both "15m" and integer nanoseconds are accepted. Absent
// keys keep the value Config already has.
type FileConfig struct {
	EndpointAddr          string          `json:"endpoint_addr" yaml:"endpoint_addr"`
	DatabaseDSN           string          `json:"database_dsn" yaml:"database_dsn"`
	SecretKey             string          `json:"secret_key" yaml:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration" yaml:"token_validity_duration"`
	ShutdownTimeout       *timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel              string          `json:"log_level" yaml:"log_level"`
}

// parseFile loads the file given with -c/-config, if any, into config.
// A .yaml or .yml extension selects YAML; anything else is read as JSON.
// Unreadable or malformed files panic.
func parseFile(config *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddr, c.EndpointAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
