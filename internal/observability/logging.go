// Package observability builds the zap loggers shared by the game engine,
// the simulator and the interactive client.
//
// Every logger is named "dungeon". Fight-scoped children come from
// EncounterLogger and carry the fight number, both combatants and the floor,
// so a simulation log can be filtered down to a single encounter.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/dungeon/internal/config"
)

// RootName is the name of every logger built by NewLogger.
const RootName = "dungeon"

// formats maps a logging.format value to its base zap configuration.
var formats = map[string]func() zap.Config{
	"json":    zap.NewProductionConfig,
	"console": zap.NewDevelopmentConfig,
}

// NewLogger creates a structured logger from the given logging configuration.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a logger named RootName writing to cfg.Output
// (stderr when empty), or a non-nil error.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}
	base, ok := formats[cfg.Format]
	if !ok {
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zc := base()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// Every encounter record is kept.
	zc.Sampling = nil
	zc.DisableStacktrace = true
	if len(cfg.Output) > 0 {
		zc.OutputPaths = cfg.Output
		zc.ErrorOutputPaths = cfg.Output
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Named(RootName), nil
}

// EncounterLogger scopes logger to one fight.
func EncounterLogger(logger *zap.Logger, fight int, player, enemy string, floor uint32) *zap.Logger {
	return logger.Named("encounter").With(
		zap.Int("fight", fight),
		zap.String("player", player),
		zap.String("enemy", enemy),
		zap.Uint32("floor", floor),
	)
}
