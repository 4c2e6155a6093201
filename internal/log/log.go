// Package log provides structured, colored logging for cphwallet.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the global logger instance.
var Logger zerolog.Logger

// Component loggers for different parts of the system.
var (
	Wallet zerolog.Logger
	Config zerolog.Logger
	CLI    zerolog.Logger
)

// logFile is the file opened by the last Init call, if any.
var logFile *os.File

const timeFormat = "15:04:05"

func init() {
	// Logs go to stderr; stdout carries command output.
	Logger = NewConsoleLogger(os.Stderr, zerolog.WarnLevel)
	initComponentLoggers()
}

// Init replaces the global logger. Console output goes to stderr, colored
// unless jsonOutput is set. A non-empty file additionally receives every
// entry as JSON; the file from a previous Init is closed.
func Init(level string, jsonOutput bool, file string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	var console io.Writer = os.Stderr
	if !jsonOutput {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat}
	}

	var f *os.File
	out := console
	if file != "" {
		f, err = os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = zerolog.MultiLevelWriter(console, f)
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	Logger = newLogger(out, lvl)
	initComponentLoggers()
	return nil
}

// NewConsoleLogger creates a colored console logger.
func NewConsoleLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return newLogger(zerolog.ConsoleWriter{Out: w, TimeFormat: timeFormat}, level)
}

// NewJSONLogger creates a structured JSON logger.
func NewJSONLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return newLogger(w, level)
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps one of debug, info, warn or error to its zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch level {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
}

func initComponentLoggers() {
	Wallet = WithComponent("wallet")
	Config = WithComponent("config")
	CLI = WithComponent("cli")
}

// WithComponent returns a logger with a component field.
func WithComponent(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}
