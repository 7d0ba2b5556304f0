package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func NewLogger(l LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil || l.Level == "" {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if l.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
