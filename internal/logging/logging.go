// Package logging configures the slog default logger shared by the grac
// commands: text records on an output stream, optionally mirrored to a
// rotating file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
)

// Options controls Setup.
type Options struct {
	// File is the rotating log file. Empty disables file logging.
	File string
	// Level is the minimum level written.
	Level slog.Level
}

// Setup builds a text logger writing to out and, when opts.File is set, to
// a rotating file. The returned logger is also installed as the slog
// default. The closer releases the file; it is a no-op without one.
func Setup(out io.Writer, opts Options) (*slog.Logger, io.Closer, error) {
	var closer io.Closer = nopCloser{}
	w := out
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		fileLogger := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
		}
		w = io.MultiWriter(out, fileLogger)
		closer = fileLogger
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: opts.Level}))
	slog.SetDefault(logger)
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
