package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	logDir      = "logs"
	logFileName = "cursor-probe.log"
)

// parseLevel maps a -log-level value to a slog level
func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "invalid log level %q", s)
	}
	return level, nil
}

// setupLogging builds the process logger
// In terminal mode stderr belongs to the screen, so records go to logs/cursor-probe.log,
// or are discarded when level is "off"
func setupLogging(levelName string, toFile bool) (*slog.Logger, io.Closer, error) {
	if strings.EqualFold(levelName, "off") {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	level, err := parseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if !toFile {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "failed to create log directory")
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open log file")
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}
