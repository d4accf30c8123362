// Package cli implements the maritimestyle command-line interface.
//
// # Commands
//
//   - generate: build a style.json from an optional partial config file
//   - defaults: print the default configuration as JSON, YAML or TOML
//   - legend: rasterise legend swatches into a sprite sheet
//   - serve: run the HTTP service (styles, legends, glyphs, tile archive)
//
// # Logging
//
// The root command's --verbose (-v) flag switches from info to debug level.
// PersistentPreRun builds the logger on the command's stderr and stores it
// in the command context, so subcommands and tests see the same writer.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a charmbracelet logger writing to w at level, with
// short wall-clock timestamps suited to interactive runs.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures a command step. generate and legend create one before
// reading the config and report through done once files are written.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level followed by the elapsed time in milliseconds,
// e.g. "Wrote 18 layers to style.json (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

// loggerKey stores the command logger in a context.Context.
const loggerKey ctxKey = 0

// withLogger attaches l to ctx for loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger set by the root command. Commands
// run outside the root (unit tests calling RunE directly) get log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
