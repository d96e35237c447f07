package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/samuelgursky/resolve-tools-mcp/internal/config"
)

// Logger provides structured logging. The MCP transport owns stdout, so the
// default output is stderr.
type Logger struct {
	logger zerolog.Logger
	level  zerolog.Level
}

// New creates a logger from the logging configuration.
func New(cfg *config.LoggingConfig) *Logger {
	var level zerolog.Level
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		switch *cfg.Output {
		case "stderr", "":
			output = os.Stderr
		default:
			if file, err := os.OpenFile(*cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				output = file
			}
		}
	}

	if cfg.Format == "json" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	} else {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	return &Logger{
		logger: zerolog.New(output).With().Timestamp().Logger().Level(level),
		level:  level,
	}
}

// Discard returns a logger that writes nothing. Used by tests.
func Discard() *Logger {
	return &Logger{logger: zerolog.Nop(), level: zerolog.Disabled}
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, metadata map[string]interface{}) {
	l.log(zerolog.DebugLevel, message, metadata)
}

// Info logs an info message.
func (l *Logger) Info(message string, metadata map[string]interface{}) {
	l.log(zerolog.InfoLevel, message, metadata)
}

// Warn logs a warning message.
func (l *Logger) Warn(message string, metadata map[string]interface{}) {
	l.log(zerolog.WarnLevel, message, metadata)
}

// Error logs an error message with an optional cause.
func (l *Logger) Error(message string, err error, metadata map[string]interface{}) {
	event := l.logger.Error()
	if err != nil {
		event = event.Err(err)
	}
	if metadata != nil {
		event = event.Fields(metadata)
	}
	event.Msg(message)
}

func (l *Logger) log(level zerolog.Level, message string, metadata map[string]interface{}) {
	if level < l.level {
		return
	}
	event := l.logger.WithLevel(level)
	if metadata != nil {
		event = event.Fields(metadata)
	}
	event.Msg(message)
}

// Child creates a child logger carrying additional metadata on every event.
func (l *Logger) Child(metadata map[string]interface{}) *Logger {
	return &Logger{
		logger: l.logger.With().Fields(metadata).Logger(),
		level:  l.level,
	}
}
