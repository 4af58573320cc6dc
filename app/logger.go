package app

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logMaxSizeMB  = 1
	logMaxBackups = 3
)

// logFile is closed by afterAction.
var logFile io.Closer

// initLogger sends the default slog logger to a rotating JSON log file.
func initLogger(path, level string) *slog.Logger {
	var lvl slog.Level

	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
	}

	logger := newLogger(w, lvl)

	slog.SetDefault(logger)

	if logFile != nil {
		_ = logFile.Close()
	}

	logFile = w

	return logger
}

func newLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}
