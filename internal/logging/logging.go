// internal/logging/logging.go
//
// Global zerolog setup. The terminal belongs to the board, so log lines go to
// a rotating file instead of stdout/stderr.

package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup points the global logger at a rotating file and applies level.
// An unknown level leaves the global level unchanged. The returned closer
// releases the log file.
func Setup(path, level string) io.Closer {
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	To(file, level)
	return file
}

// To sends the global logger to w.
func To(w io.Writer, level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
