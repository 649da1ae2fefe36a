package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// newLogger returns a logger for the configured file.
// The terminal belongs to the TUI, so without a file everything is discarded.
func newLogger(cfg Config) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
		DisableColors:   true,
	})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)

	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return log, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f, nil
}

// track logs how long an operation took, warning when it was slow
func track(entry *logrus.Entry, msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		e := entry.WithField("duration", dur.String())
		if dur > 2*time.Second {
			e.Warnf("%s completed (SLOW)", msg)
		} else {
			e.Debugf("%s completed", msg)
		}
	}
}
