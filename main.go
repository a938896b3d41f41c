package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/veldt-labs/synthgen/pkg/codec"
	"github.com/veldt-labs/synthgen/pkg/config"
	"github.com/veldt-labs/synthgen/pkg/dataset"
	"github.com/veldt-labs/synthgen/pkg/generate"
	"github.com/veldt-labs/synthgen/pkg/model"
	"github.com/veldt-labs/synthgen/pkg/retry"
	"github.com/veldt-labs/synthgen/pkg/schema"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath, Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("synthgen starting",
		zap.String("version", cfg.Version),
		zap.String("input", cfg.InputPath),
		zap.String("output", cfg.OutputPath),
		zap.Int64("target_new_rows", cfg.TargetNewRows),
		zap.Int("chunk_size", cfg.ChunkSize))

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Generation failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	seed, err := dataset.Load(cfg.InputPath)
	if err != nil {
		return err
	}
	logger.Info("seed loaded",
		zap.Int("rows", seed.NumRows()),
		zap.Int("columns", len(seed.Columns)))

	roles, err := schema.Analyze(seed)
	if err != nil {
		return err
	}
	cdc, err := codec.Build(seed, roles.Categorical)
	if err != nil {
		return err
	}
	joint, err := model.Fit(seed, roles, cdc)
	if err != nil {
		return err
	}
	logger.Info("joint model fitted",
		zap.Int("modeled_columns", joint.Dim()),
		zap.Int("seed_rows", joint.Rows))

	maxID, err := seed.MaxIdentifier(roles.Identifier)
	if err != nil {
		return err
	}

	sink, err := dataset.NewSinkWriter(cfg.OutputPath, seed, logger)
	if err != nil {
		return err
	}

	sampler := model.NewSampler(joint, samplerSeed(cfg.Seed), logger)

	opts := generate.Options{}
	if cfg.WriteRetries > 0 {
		opts.WriteRetry = retry.ForWrites(cfg.WriteRetries)
	}

	gen, err := generate.New(roles, cdc, sampler, sink,
		maxID+1, cfg.TargetNewRows, cfg.ChunkSize, logger, opts)
	if err != nil {
		return err
	}
	if err := gen.Run(context.Background()); err != nil {
		sink.Close()
		return err
	}
	return sink.Close()
}

// samplerSeed resolves the configured RNG seed; zero derives one from the
// clock so unpinned runs differ.
func samplerSeed(configured uint64) uint64 {
	if configured != 0 {
		return configured
	}
	return uint64(time.Now().UnixNano())
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = zap.NewAtomicLevelAt(lvl)
	return logConfig.Build()
}
