// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"code.cloudfoundry.org/lager/v3"
)

// Config selects the minimum level and the output format.
type Config struct {
	Level         string `mapstructure:"LOG_LEVEL"`
	PlainTextSink bool   `mapstructure:"LOG_PLAINTEXT"`
}

// New returns a lager logger writing to stdout.
func New(conf Config, name string) (lager.Logger, error) {
	return NewWithWriter(conf, name, os.Stdout)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(conf Config, name string, w io.Writer) (lager.Logger, error) {
	level, err := ParseLevel(conf.Level)
	if err != nil {
		return nil, err
	}

	logger := lager.NewLogger(name)
	if conf.PlainTextSink {
		logger.RegisterSink(lager.NewSlogSink(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(level)}))))
	} else {
		logger.RegisterSink(lager.NewWriterSink(w, level))
	}
	return logger, nil
}

// ParseLevel maps a level name to a lager level. An empty name means info.
func ParseLevel(level string) (lager.LogLevel, error) {
	switch level {
	case "debug":
		return lager.DEBUG, nil
	case "", "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return -1, fmt.Errorf("unsupported log level: %s", level)
	}
}

func slogLevel(level lager.LogLevel) slog.Level {
	switch level {
	case lager.DEBUG:
		return slog.LevelDebug
	case lager.ERROR, lager.FATAL:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
