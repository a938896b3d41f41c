package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/veldt-labs/synthgen/pkg/apperrors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SYNTHGEN_INPUT_PATH", "SYNTHGEN_OUTPUT_PATH", "SYNTHGEN_TARGET_NEW_ROWS",
		"SYNTHGEN_CHUNK_SIZE", "SYNTHGEN_SEED", "SYNTHGEN_WRITE_RETRIES", "SYNTHGEN_LOG_LEVEL",
	} {
		os.Unsetenv(key)
	}
}

func TestLoad_YAMLValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
input_path: "seed.csv"
output_path: "out.csv"
target_new_rows: 5000
chunk_size: 250
seed: 42
log_level: "debug"
`)

	cfg, err := Load(path, "test")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.InputPath != "seed.csv" {
		t.Errorf("InputPath = %q, want seed.csv", cfg.InputPath)
	}
	if cfg.TargetNewRows != 5000 {
		t.Errorf("TargetNewRows = %d, want 5000", cfg.TargetNewRows)
	}
	if cfg.ChunkSize != 250 {
		t.Errorf("ChunkSize = %d, want 250", cfg.ChunkSize)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Version != "test" {
		t.Errorf("Version = %q, want test", cfg.Version)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
target_new_rows: 5000
chunk_size: 250
`)

	t.Setenv("SYNTHGEN_TARGET_NEW_ROWS", "77")
	t.Setenv("SYNTHGEN_CHUNK_SIZE", "11")

	cfg, err := Load(path, "test")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TargetNewRows != 77 {
		t.Errorf("TargetNewRows = %d, want env override 77", cfg.TargetNewRows)
	}
	if cfg.ChunkSize != 11 {
		t.Errorf("ChunkSize = %d, want env override 11", cfg.ChunkSize)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"), "test")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ChunkSize != 500000 {
		t.Errorf("ChunkSize = %d, want default 500000", cfg.ChunkSize)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "zero target is allowed", mutate: func(c *Config) { c.TargetNewRows = 0 }, wantErr: false},
		{name: "negative target", mutate: func(c *Config) { c.TargetNewRows = -1 }, wantErr: true},
		{name: "zero chunk size", mutate: func(c *Config) { c.ChunkSize = 0 }, wantErr: true},
		{name: "negative chunk size", mutate: func(c *Config) { c.ChunkSize = -5 }, wantErr: true},
		{name: "empty input path", mutate: func(c *Config) { c.InputPath = "" }, wantErr: true},
		{name: "empty output path", mutate: func(c *Config) { c.OutputPath = "" }, wantErr: true},
		{name: "negative write retries", mutate: func(c *Config) { c.WriteRetries = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				InputPath:     "in.csv",
				OutputPath:    "out.csv",
				TargetNewRows: 100,
				ChunkSize:     10,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidConfig) {
					t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
