// Package cli implements the surepatch command-line interface.
//
// Commands are grouped by the object they act on: config, platform, project
// and set, plus components for offline extraction. The CLI is built using
// cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - config save: Write credentials to ~/.surepatch.yaml
//   - platform create|show|delete|archive: Manage platforms
//   - project create|show|delete|archive: Manage projects and their first set
//   - set create|show: Submit or show a project's component set
//   - components: Extract and print components without contacting the service
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs every extraction, external command and HTTP call. Loggers are passed
// through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/surepatch/pkg/pipeline"
)

// newLogger returns a logger writing to w at level, with "15:04:05.00"
// timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the outcome of one pipeline action with its wall time.
// It replaces the spinner when prompts or debug lines share the terminal.
type progress struct {
	logger *log.Logger
	action string
	start  time.Time
}

func newProgress(l *log.Logger, action string) *progress {
	return &progress{logger: l, action: action, start: time.Now()}
}

// done logs "Finished <action> (1.234s)". Actions that extracted anything
// also report the component count.
func (p *progress) done(result *pipeline.Result) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	if result != nil && len(result.Components) > 0 {
		p.logger.Infof("Finished %s with %d components (%s)", p.action, len(result.Components), elapsed)
		return
	}
	p.logger.Infof("Finished %s (%s)", p.action, elapsed)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for commands that only see a cobra context.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger set by withLogger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
