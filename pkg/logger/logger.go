package logger

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(newLogger(os.Stderr, slog.LevelInfo, true))
}

// Init configures the package logger for the given environment.
// development logs at debug level with colour; anything else logs at info without colour.
func Init(environment string) {
	level := slog.LevelInfo
	noColor := true
	if environment == "development" {
		level = slog.LevelDebug
		noColor = false
	}
	l := newLogger(os.Stdout, level, noColor)
	current.Store(l)
	slog.SetDefault(l)
}

// SetOutput redirects the package logger, mainly for tests.
func SetOutput(w io.Writer, level slog.Level) {
	current.Store(newLogger(w, level, true))
}

func newLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}))
}

func With(args ...any) *slog.Logger {
	return current.Load().With(args...)
}

func Debug(msg string, args ...any) {
	current.Load().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	current.Load().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	current.Load().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	current.Load().Error(msg, args...)
}

// Fatal logs at error level and exits the process.
func Fatal(msg string, args ...any) {
	current.Load().Error(msg, args...)
	os.Exit(1)
}
