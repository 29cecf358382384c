// Package log sets up structured logging: console output plus a rotated
// debug log file in the application data directory.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog with the location of the active log file.
type Logger struct {
	*slog.Logger
	LogFile string
}

// New builds the application logger. When debug is set the level drops to
// Debug; when nolog is set no file is written and only the console handler
// remains. An empty logfile places the file in dir.
func New(dir string, debug, nolog bool, logfile string) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	path := ""
	if !nolog {
		path = logfile
		if path == "" {
			path = filepath.Join(dir, "msplan.log")
		}
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    32, // MB
			MaxBackups: 1,
		})
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(h), LogFile: path}
}
