// Package logging builds the process logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production zap logger. With file set, output goes only to
// that file; an interactive session passes tui so that nothing is written to
// the terminal when no file is given.
func New(file, level string, verbose, tui bool) (*zap.Logger, error) {
	if tui && file == "" {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if file != "" {
		config.OutputPaths = []string{file}
		config.ErrorOutputPaths = []string{file}
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
