// Package logging builds the application's zerolog logger from configuration
package logging

import (
	"io"
	"os"
	"time"

	"github.com/amirphl/signage-admin/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing to stdout, a rotated file, or both.
// The returned closer flushes the file writer and is safe to call when no file is used.
func New(cfg config.LoggingConfig, deployment config.DeploymentConfig) (*zerolog.Logger, io.Closer) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	var stdout io.Writer = os.Stdout
	if cfg.Format == "console" {
		stdout = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	var closer io.Closer = nopCloser{}
	var out io.Writer
	switch cfg.Output {
	case "file", "both":
		rotator := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		closer = rotator
		out = rotator
		if cfg.Output == "both" {
			out = zerolog.MultiLevelWriter(stdout, rotator)
		}
	default:
		out = stdout
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "signage-admin").
		Str("env", deployment.Environment).
		Str("version", deployment.Version).
		Logger()
	return &logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
