// Package logging builds the zerolog loggers used across the footprint CLI
// and server, and carries trace identifiers through contexts.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output destinations accepted by Config.Output.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"
)

// Formats accepted by Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config controls how a logger is constructed.
type Config struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Unparseable values fall back to info.
	Level string

	// Format selects console (human-readable) or json output.
	Format string

	// Output selects the destination: stderr, stdout, or file.
	Output string

	// File is the log file path when Output is "file".
	File string

	// Caller adds the caller file:line to each event.
	Caller bool
}

// LogPathResult is the outcome of constructing a logger that may write to a
// file. When the file cannot be opened the logger falls back to stderr and
// FallbackUsed/FallbackReason describe why.
type LogPathResult struct {
	Logger         zerolog.Logger
	FilePath       string
	UsingFile      bool
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogPathResult) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New constructs a logger from cfg, writing to stderr when the configured
// destination is unavailable.
func New(cfg Config) zerolog.Logger {
	return NewLoggerWithPath(cfg).Logger
}

// NewLoggerWithPath constructs a logger from cfg and reports which file, if
// any, it writes to. A file destination that cannot be opened degrades to
// stderr rather than failing.
func NewLoggerWithPath(cfg Config) LogPathResult {
	result := LogPathResult{}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var out io.Writer
	switch cfg.Output {
	case OutputStdout:
		out = os.Stdout
	case OutputFile:
		file, openErr := openLogFile(cfg.File)
		if openErr != nil {
			result.FallbackUsed = true
			result.FallbackReason = openErr.Error()
			out = os.Stderr
		} else {
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = file
			out = file
		}
	default:
		out = os.Stderr
	}

	if cfg.Format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logCtx := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}
	result.Logger = logCtx.Logger()

	return result
}

// openLogFile opens path for appending, creating the file if missing. Parent
// directories must already exist.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return file, nil
}

// ComponentLogger returns a child logger tagged with a component field so log
// lines can be attributed to a subsystem (cli, server, engine, history).
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where file logging landed.
func PrintLogPathMessage(w io.Writer, path string) {
	fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user why file logging degraded to stderr.
func PrintFallbackWarning(w io.Writer, reason string) {
	fmt.Fprintf(w, "Warning: file logging unavailable (%s), using stderr\n", reason)
}
