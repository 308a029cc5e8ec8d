// Package config provides configuration management for the timestamp service.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (highest priority)
//  2. YAML configuration file
//  3. Default values (lowest priority)
//
// Supported environment variables:
//   - WORKSHOP_TS_HTTP_PORT: HTTP server port (1-65535)
//   - WORKSHOP_TS_LOG_LEVEL: Log level (debug, info, warn, error)
//   - WORKSHOP_TS_LOG_FORMAT: Log output format (json, text)
//
// Example configuration file (tsgen.yaml):
//
//	http_port: 8080
//	log_level: "info"
//	log_format: "json"
//
// The timestamp format and timezone are fixed and not configurable.
package config
