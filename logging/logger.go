// Package logging sets up the harness's operational logger and adapts it to the Printf-style
// interface used by the test framework.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Options controls how New builds the logger.
type Options struct {
	Debug   bool
	NoColor bool
}

// New returns a slog.Logger writing human-readable lines to w. Debug-level messages are only
// written if opts.Debug is set.
func New(w io.Writer, opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    opts.NoColor,
	}))
}

// Printer adapts a slog.Logger to the framework's Logger interface. Messages are logged at
// debug level.
type Printer struct {
	Logger *slog.Logger
}

func (p Printer) Printf(message string, args ...interface{}) {
	if p.Logger == nil {
		return
	}
	p.Logger.Debug(fmt.Sprintf(message, args...))
}
