// Package logger provides the application logger: zerolog on the console
// with optional size-rotated log files.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps zerolog.Logger with additional functionality
type Logger struct {
	zerolog.Logger
	closer io.Closer
}

// Config holds logger configuration
type Config struct {
	Level      string    // debug, info, warn, error
	LogDir     string    // empty disables the log file
	Filename   string    // log file name inside LogDir
	MaxSizeMB  int
	MaxBackups int
	Console    bool      // Enable console output
	Out        io.Writer // console destination, stderr when nil
	NoColor    bool
}

// New creates a new logger instance
func New(cfg Config) *Logger {
	// Set defaults
	if cfg.Filename == "" {
		cfg.Filename = "slireport.log"
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 5
	}
	if cfg.Out == nil {
		cfg.Out = os.Stderr
	}

	level := parseLogLevel(cfg.Level)

	var writers []io.Writer
	var closer io.Closer

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
			// Fallback to the console if directory creation fails
			cfg.Console = true
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   filepath.Join(cfg.LogDir, cfg.Filename),
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     30, // days
				Compress:   false,
			}
			writers = append(writers, fileWriter)
			closer = fileWriter
		}
	}

	if cfg.Console || len(writers) == 0 {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        cfg.Out,
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    cfg.NoColor,
		})
	}

	logger := zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger, closer: closer}
}

// IsTerminal reports whether w is a terminal. Writers that are not an
// *os.File never are.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// parseLogLevel converts string log level to zerolog level
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	newLogger := l.Logger.With().Interface(key, value).Logger()
	return &Logger{Logger: newLogger, closer: l.closer}
}
