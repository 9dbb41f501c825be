// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zap logger shared by the CLI and the corpus
// loaders. Diagnostics go to stderr so stdout carries only results.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps routine progress quiet; warnings still reach stderr.
const DefaultLevel = "warn"

// New returns a console logger writing to w at the named level
// (debug, info, warn, error). An empty level selects DefaultLevel.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core), nil
}

// ParseLevel converts a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zapcore.InvalidLevel, fmt.Errorf("invalid log level %q: use debug, info, warn, or error", level)
	}
	return lvl, nil
}
