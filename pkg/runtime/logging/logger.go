package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// SessionTimeFormat is the timestamp layout of the session log file.
const SessionTimeFormat = "01/02/2006 15:04:05.000000"

// TimeFieldFormat keeps sub-second precision in the time field so the
// session file can print microseconds.
const TimeFieldFormat = time.RFC3339Nano

type Options struct {
	Level string
	// Console receives human readable output; nil means stderr.
	Console io.Writer
	// JSON switches the console output to JSON lines.
	JSON bool
	// SessionFile, when set, receives every event appended as plain text.
	SessionFile string
}

// New builds the application logger. The returned closer releases the
// session file and must be called once the logger is no longer used.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	zerolog.TimeFieldFormat = TimeFieldFormat

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	if !opts.JSON {
		console = zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen}
	}

	writers := []io.Writer{console}
	var closer io.Closer = nopCloser{}
	if opts.SessionFile != "" {
		f, err := os.OpenFile(opts.SessionFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("unable to open log file: %w", err)
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        f,
			NoColor:    true,
			TimeFormat: SessionTimeFormat,
		})
		closer = f
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
