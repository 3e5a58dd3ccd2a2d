// =============================================================================
// dobby - Structured Logging
// =============================================================================
//
// Thin wrapper around charmbracelet/log so the rest of the application can
// log through a small interface instead of a concrete logger type. The
// transform pipeline logs step progress at debug level; the CLI decides the
// level from the --verbose flag.
//
// =============================================================================

package logger

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the logging interface used across the application.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

type charmLogger struct {
	l *charmlog.Logger
}

func (c *charmLogger) Debug(msg string, keyvals ...any) { c.l.Debug(msg, keyvals...) }
func (c *charmLogger) Info(msg string, keyvals ...any)  { c.l.Info(msg, keyvals...) }
func (c *charmLogger) Warn(msg string, keyvals ...any)  { c.l.Warn(msg, keyvals...) }
func (c *charmLogger) Error(msg string, keyvals ...any) { c.l.Error(msg, keyvals...) }

// Config controls logger construction.
type Config struct {
	// Verbose enables debug-level output.
	Verbose bool

	// Output is the destination writer. Defaults to stderr so log lines
	// never mix with the report printed on stdout.
	Output io.Writer

	// TimeFormat is the timestamp layout for log lines.
	TimeFormat string
}

// New builds a Logger from the given config.
func New(cfg Config) Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = "15:04:05"
	}

	level := charmlog.InfoLevel
	if cfg.Verbose {
		level = charmlog.DebugLevel
	}

	l := charmlog.NewWithOptions(cfg.Output, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           level,
	})
	return &charmLogger{l: l}
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() Logger {
	l := charmlog.New(io.Discard)
	l.SetLevel(charmlog.FatalLevel)
	return &charmLogger{l: l}
}
