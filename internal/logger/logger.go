package logger

import (
	"fmt"
	"log/slog"
	"os"
)

var log *slog.Logger

func Init() {
	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Info logs a message with optional key-value pairs.
func Info(msg string, args ...any) {
	ensure()
	log.Info(msg, args...)
}

func Infof(format string, v ...any) {
	ensure()
	log.Info(fmt.Sprintf(format, v...))
}

func Error(msg string, args ...any) {
	ensure()
	log.Error(msg, args...)
}

func Errorf(format string, v ...any) {
	ensure()
	log.Error(fmt.Sprintf(format, v...))
}

func Debug(msg string, args ...any) {
	ensure()
	log.Debug(msg, args...)
}

func Debugf(format string, v ...any) {
	ensure()
	log.Debug(fmt.Sprintf(format, v...))
}

func Warn(msg string, args ...any) {
	ensure()
	log.Warn(msg, args...)
}

func Fatal(msg string, args ...any) {
	ensure()
	log.Error(msg, args...)
	os.Exit(1)
}

func Fatalf(format string, v ...any) {
	ensure()
	log.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}

func ensure() {
	if log == nil {
		Init()
	}
}
