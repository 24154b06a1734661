// Package config loads runtime configuration for the VMIS CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-d string   session database file
//	-l string   log level
//	-t int      HTTP timeout (seconds)
//
// # File schema
//
//	{
//	  "base_url": "https://vmis.example.org/api/",
//	  "database_path": "/var/lib/vmis/session.db",
//	  "log_level": "info",
//	  "http_timeout": "15s"
//	}
//
// Environment variables are not read.
package config
