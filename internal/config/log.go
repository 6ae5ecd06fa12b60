package config

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger directs structured logs to a rotated file under the XDG data
// directory. Terminal output stays reserved for pterm and the TUI.
func InitLogger() {
	writer := &lumberjack.Logger{
		Filename:   LogFilePath(),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	logger := slog.New(slog.NewJSONHandler(writer, nil))

	slog.SetDefault(logger)
}
