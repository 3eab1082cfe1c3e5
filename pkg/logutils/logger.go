// Package logutils builds the process-wide zerolog logger.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Stderr as the file argument of New selects human readable output on
// stderr instead of a JSON log file.
const Stderr = "-"

// New returns a logger for the given level. JSON lines are appended to
// file, so several runs share one log. An empty file discards output.
//
// The level parameter can be one of: debug, info, warn, error, fatal.
// At debug level events carry the calling file and line.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level: %w", err)
	}

	var writer io.Writer
	switch file {
	case "":
		writer = io.Discard
	case Stderr:
		writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	default:
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("open log file: %w", err)
		}
		closer = func() { _ = f.Close() }
		writer = f
	}

	ctx := zerolog.New(writer).With().Timestamp()
	if lvl <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}

	return ctx.Logger().Level(lvl), closer, nil
}
