// Package logging builds the logrus logger shared by the CLI and the viewer.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"geotraits/internal/config"
)

// New returns a logger configured from c and a function that closes its
// output. The terminal UI owns stdout, so without a log file the output is
// discarded.
func New(c config.LogConfig) (*logrus.Logger, func() error, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)
	switch c.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
			DisableSorting:  true,
		})
	}

	if c.File == "" {
		logger.SetOutput(io.Discard)
		return logger, func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f.Close, nil
}
