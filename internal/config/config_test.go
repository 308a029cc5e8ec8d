package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig writes content to a temporary config file and returns its path
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "tsgen.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig_Success(t *testing.T) {
	configPath := writeConfig(t, `
http_port: 9100
log_level: "debug"
log_format: "text"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.HTTPPort != 9100 {
		t.Errorf("HTTPPort = %v, want 9100", cfg.HTTPPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %v, want text", cfg.LogFormat)
	}
}

func TestLoad_ApplyDefaults_Success(t *testing.T) {
	configPath := writeConfig(t, "{}\n")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"HTTPPort", cfg.HTTPPort, DefaultHTTPPort},
		{"LogLevel", cfg.LogLevel, DefaultLogLevel},
		{"LogFormat", cfg.LogFormat, DefaultLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EmptyPath_UsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v, want nil", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(\"\") = %+v, want %+v", *cfg, *Default())
	}
}

func TestLoad_EnvOverrides_Success(t *testing.T) {
	configPath := writeConfig(t, `
http_port: 8080
log_level: "info"
`)

	t.Setenv(EnvHTTPPort, "9090")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFormat, "text")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %v, want 9090 (env override)", cfg.HTTPPort)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %v, want error (env override)", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %v, want text (env override)", cfg.LogFormat)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "port too high",
			content: "http_port: 70000\n",
			wantErr: "http_port must be between",
		},
		{
			name:    "negative port",
			content: "http_port: -1\n",
			wantErr: "http_port must be between",
		},
		{
			name:    "unknown log level",
			content: "log_level: chatty\n",
			wantErr: "log_level must be one of",
		},
		{
			name:    "unknown log format",
			content: "log_format: xml\n",
			wantErr: "log_format must be one of",
		},
		{
			name:    "malformed yaml",
			content: "http_port: [\n",
			wantErr: "failed to parse config file",
		},
		{
			name:    "non-integer port env",
			content: "{}\n",
			env:     map[string]string{EnvHTTPPort: "eighty"},
			wantErr: "invalid WORKSHOP_TS_HTTP_PORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			configPath := writeConfig(t, tt.content)

			_, err := Load(configPath)
			if err == nil {
				t.Fatalf("Load() error = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile_Error(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() error = nil, want error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want wrapped not-exist error", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v, want nil", err)
	}

	cfg.HTTPPort = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with port 0 should fail")
	}
}
