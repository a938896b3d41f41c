package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/veldt-labs/synthgen/pkg/apperrors"
)

// Config holds all configuration for synthgen.
// Configuration can come from a YAML file (config.yaml) or environment
// variables. Environment variables always override YAML values.
type Config struct {
	// InputPath is the seed CSV to fit the joint model against.
	InputPath string `yaml:"input_path" env:"SYNTHGEN_INPUT_PATH" env-default:"student_lifestyle_dataset.csv"`

	// OutputPath is the sink CSV. The seed is written first (with header),
	// then generated chunks are appended without repeating the header.
	OutputPath string `yaml:"output_path" env:"SYNTHGEN_OUTPUT_PATH" env-default:"student_lifestyle_synthetic.csv"`

	// TargetNewRows is how many synthetic rows to generate in total.
	TargetNewRows int64 `yaml:"target_new_rows" env:"SYNTHGEN_TARGET_NEW_ROWS" env-default:"1000000"`

	// ChunkSize bounds how many rows are sampled and repaired per
	// iteration, which bounds peak memory regardless of TargetNewRows.
	ChunkSize int `yaml:"chunk_size" env:"SYNTHGEN_CHUNK_SIZE" env-default:"500000"`

	// Seed seeds the sampler's random source. Zero means derive from the
	// current time, so two runs differ unless a seed is pinned.
	Seed uint64 `yaml:"seed" env:"SYNTHGEN_SEED" env-default:"0"`

	// WriteRetries enables bounded retry of failed sink writes.
	// Zero (the default) fails the run on the first write error.
	WriteRetries int `yaml:"write_retries" env:"SYNTHGEN_WRITE_RETRIES" env-default:"0"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"SYNTHGEN_LOG_LEVEL" env-default:"info"`

	Version string `yaml:"-"` // Set at load time, not from config
}

// Load reads configuration from path with environment variable overrides.
// A missing config file is not an error: all options have defaults and can
// be supplied through the environment alone. The version parameter is
// injected at build time and set on the returned Config.
func Load(path, version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks option ranges that would otherwise surface as confusing
// mid-run failures.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("%w: input_path must not be empty", apperrors.ErrInvalidConfig)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output_path must not be empty", apperrors.ErrInvalidConfig)
	}
	if c.TargetNewRows < 0 {
		return fmt.Errorf("%w: target_new_rows must be >= 0, got %d", apperrors.ErrInvalidConfig, c.TargetNewRows)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk_size must be > 0, got %d", apperrors.ErrInvalidConfig, c.ChunkSize)
	}
	if c.WriteRetries < 0 {
		return fmt.Errorf("%w: write_retries must be >= 0, got %d", apperrors.ErrInvalidConfig, c.WriteRetries)
	}
	return nil
}
