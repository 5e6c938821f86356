package logging

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func DefaultConfig() zap.Config {
	logConf := zap.NewProductionConfig()
	logConf.Sampling = nil
	logConf.EncoderConfig.TimeKey = "time"
	logConf.EncoderConfig.LevelKey = "severity"
	logConf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logConf.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	// stdout carries query results
	logConf.OutputPaths = []string{"stderr"}

	return logConf
}

// ParseLevel accepts a level name (case insensitive) or its numeric value
func ParseLevel(l string) (zapcore.Level, error) {
	l = strings.ToLower(strings.TrimSpace(l))

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(l)); err == nil {
		return level, nil
	}

	n, err := strconv.ParseInt(l, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("unrecognized log level %q", l)
	}
	if n < int64(zapcore.DebugLevel) || n > int64(zapcore.FatalLevel) {
		return 0, fmt.Errorf("log level %d out of range", n)
	}
	return zapcore.Level(n), nil
}

// New builds a logger from the default config at the given level
func New(level string) (*zap.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logConf := DefaultConfig()
	logConf.Level = zap.NewAtomicLevelAt(l)

	return logConf.Build()
}
