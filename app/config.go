package app

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// Config holds the settings an example reads from its environment.
type Config struct {
	// GP_LOG_LEVEL, one of DEBUG, INFO, WARN or ERROR. Defaults to INFO.
	LogLevel slog.Level

	// GP_SAMPLE_COUNT, either 1 or 4. Defaults to 1.
	SampleCount uint32

	// WGPU_PROFILE=1 writes a cpu profile of the run
	Profile bool
}

func ConfigFromEnv() (Config, error) {
	cfg := Config{
		LogLevel:    slog.LevelInfo,
		SampleCount: 1,
	}

	if value := os.Getenv("GP_LOG_LEVEL"); value != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(value)); err != nil {
			return Config{}, fmt.Errorf("parse GP_LOG_LEVEL: %w", err)
		}
	}

	if value := os.Getenv("GP_SAMPLE_COUNT"); value != "" {
		count, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return Config{}, fmt.Errorf("parse GP_SAMPLE_COUNT: %w", err)
		}

		if count != 1 && count != 4 {
			return Config{}, fmt.Errorf("GP_SAMPLE_COUNT must be 1 or 4, got %d", count)
		}

		cfg.SampleCount = uint32(count)
	}

	cfg.Profile = os.Getenv("WGPU_PROFILE") == "1"

	return cfg, nil
}

// SetupLogging installs a text logger on stderr as the default logger.
func SetupLogging(cfg Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     cfg.LogLevel,
	})

	slog.SetDefault(slog.New(handler))
}
