// Package logging builds the stderr logger shared across ndkpath.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rickfloyd/ndkpath/internal/config"
)

// New builds a logger honouring the configured severity. Diagnostics always
// go to stderr so stdout carries nothing but the resolved path.
func New(cfg *config.Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter is New with an explicit destination, for tests.
func NewWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo

	switch {
	case cfg.Verbose:
		level = slog.LevelDebug
	case strings.EqualFold(cfg.LogLevel, "ERROR"):
		level = slog.LevelError
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
	}))
}
