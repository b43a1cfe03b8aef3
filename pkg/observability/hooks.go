// Package observability provides hooks for logging and tracing extraction
// runs, external commands and backend calls.
//
// The package keeps instrumentation optional: libraries emit events through
// the registered hooks, and the binary decides at startup what (if anything)
// listens. The default hooks do nothing.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetExtractionHooks(&myExtractionHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Extraction().OnExtractStart(ctx, "gemfile/auto/system/file")
//	// ... load and parse ...
//	observability.Extraction().OnExtractComplete(ctx, "gemfile/auto/system/file", n, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Extraction Hooks
// =============================================================================

// ExtractionHooks receives events from the dispatch layer.
// key identifies the acquisition combination (target/method/format/input).
type ExtractionHooks interface {
	OnExtractStart(ctx context.Context, key string)
	OnExtractComplete(ctx context.Context, key string, count int, duration time.Duration, err error)
}

// =============================================================================
// Command Hooks
// =============================================================================

// CommandHooks receives events from the external command runner.
type CommandHooks interface {
	// OnCommandStart records a command about to be spawned.
	OnCommandStart(ctx context.Context, line, dir string)

	// OnCommandComplete records a finished (or failed) command.
	OnCommandComplete(ctx context.Context, line string, exitCode int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopExtractionHooks is a no-op implementation of ExtractionHooks.
type NoopExtractionHooks struct{}

func (NoopExtractionHooks) OnExtractStart(context.Context, string)                               {}
func (NoopExtractionHooks) OnExtractComplete(context.Context, string, int, time.Duration, error) {}

// NoopCommandHooks is a no-op implementation of CommandHooks.
type NoopCommandHooks struct{}

func (NoopCommandHooks) OnCommandStart(context.Context, string, string)                       {}
func (NoopCommandHooks) OnCommandComplete(context.Context, string, int, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	extractionHooks ExtractionHooks = NoopExtractionHooks{}
	commandHooks    CommandHooks    = NoopCommandHooks{}
	httpHooks       HTTPHooks       = NoopHTTPHooks{}
	hooksMu         sync.RWMutex
)

// SetExtractionHooks registers custom extraction hooks.
// This should be called once at application startup.
func SetExtractionHooks(h ExtractionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		extractionHooks = h
	}
}

// SetCommandHooks registers custom command hooks.
func SetCommandHooks(h CommandHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		commandHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Extraction returns the registered extraction hooks.
func Extraction() ExtractionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return extractionHooks
}

// Command returns the registered command hooks.
func Command() CommandHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return commandHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	extractionHooks = NoopExtractionHooks{}
	commandHooks = NoopCommandHooks{}
	httpHooks = NoopHTTPHooks{}
}
