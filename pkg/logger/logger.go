// Package logger provides a structured, levelled logger built on log/slog.
package logger

import (
	"log/slog"
	"os"
)

var l *slog.Logger

func init() {
	l = slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// Init configures the process logger for the given environment. Production
// emits JSON for log aggregators, anything else stays human-readable.
func Init(environment string) {
	var handler slog.Handler

	switch environment {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	l = slog.New(handler)
	slog.SetDefault(l)
}

func Info(msg string, args ...any) {
	l.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	l.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	l.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	l.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass a bare error as the trailing argument.
func normalize(args []any) []any {
	if len(args)%2 == 1 {
		if err, ok := args[len(args)-1].(error); ok {
			args[len(args)-1] = slog.Any("error", err)
		} else {
			args[len(args)-1] = slog.Any("detail", args[len(args)-1])
		}
	}
	return args
}
