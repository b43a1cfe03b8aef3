package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/surepatch/pkg/observability"
)

// debugHooks logs observability events at debug level.
type debugHooks struct {
	logger *log.Logger
}

var (
	_ observability.ExtractionHooks = debugHooks{}
	_ observability.CommandHooks    = debugHooks{}
	_ observability.HTTPHooks       = debugHooks{}
)

// registerDebugHooks routes extraction, command and HTTP events to l.
func registerDebugHooks(l *log.Logger) {
	h := debugHooks{logger: l}
	observability.SetExtractionHooks(h)
	observability.SetCommandHooks(h)
	observability.SetHTTPHooks(h)
}

func (h debugHooks) OnExtractStart(_ context.Context, key string) {
	h.logger.Debug("extract", "source", key)
}

func (h debugHooks) OnExtractComplete(_ context.Context, key string, count int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("extract failed", "source", key, "duration", d, "err", err)
		return
	}
	h.logger.Debug("extract done", "source", key, "components", count, "duration", d)
}

func (h debugHooks) OnCommandStart(_ context.Context, line, dir string) {
	h.logger.Debug("run", "cmd", line, "dir", dir)
}

func (h debugHooks) OnCommandComplete(_ context.Context, line string, exitCode int, d time.Duration, err error) {
	h.logger.Debug("run done", "cmd", line, "exit", exitCode, "duration", d, "err", err)
}

func (h debugHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http", "method", method, "host", host, "path", path)
}

func (h debugHooks) OnResponse(_ context.Context, method, _, path string, status int, d time.Duration) {
	h.logger.Debug("http done", "method", method, "path", path, "status", status, "duration", d)
}

func (h debugHooks) OnError(_ context.Context, method, _, path string, err error) {
	h.logger.Debug("http failed", "method", method, "path", path, "err", err)
}
