package logger

import (
	"log/slog"
	"os"
	"strings"
)

var log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Init replaces the default logger with one at the configured level.
func Init(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func Debug(msg string, args ...any) {
	log.Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

// normalize turns the mixed call convention (bare errors alongside key/value
// pairs) into valid slog attributes.
func normalize(args []any) []any {
	out := make([]any, 0, len(args)+2)
	for i := 0; i < len(args); {
		if err, ok := args[i].(error); ok {
			out = append(out, slog.Any("error", err))
			i++
			continue
		}
		if i+1 < len(args) {
			out = append(out, args[i], args[i+1])
			i += 2
			continue
		}
		out = append(out, slog.Any("detail", args[i]))
		i++
	}
	return out
}
