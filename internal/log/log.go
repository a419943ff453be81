// Package log builds zap loggers for the mdwrap command-line tools.
// Loggers are constructed per invocation and passed down explicitly;
// there is no package-level logger.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where log output goes and how much of it there is.
type Options struct {
	// File is the path of the log file. Empty disables the file sink.
	File string

	// Console also sends log output to stderr.
	Console bool

	// Verbose enables info-level messages; Debug enables everything.
	// The default level is warn.
	Verbose bool
	Debug   bool
}

// New returns a configured logger and a flush function to defer in
// main.
func New(opts Options) (*zap.SugaredLogger, func(), error) {
	level := zapcore.WarnLevel
	if opts.Verbose {
		level = zapcore.InfoLevel
	}
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	var paths []string
	if opts.File != "" {
		paths = append(paths, opts.File)
	}
	if opts.Console || len(paths) == 0 {
		paths = append(paths, "stderr")
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.OutputPaths = paths
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("can't initialize zap logger: %w", err)
	}
	sugared := logger.Sugar()
	return sugared, func() { _ = sugared.Sync() }, nil
}
