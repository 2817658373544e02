// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about manifest reads, source tree scans, and classification.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, which keeps the analysis
// packages free of backend dependencies and import cycles.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetAnalysisHooks(&myAnalysisHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Analysis().OnReadStart(ctx, "go.mod")
//	// ... read manifest ...
//	observability.Analysis().OnReadComplete(ctx, "go.mod", present, count, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Analysis Hooks
// =============================================================================

// AnalysisHooks receives events from an analysis run.
type AnalysisHooks interface {
	// Manifest read events. err is the captured parse failure, if any; it
	// never aborts the run.
	OnReadStart(ctx context.Context, manifest string)
	OnReadComplete(ctx context.Context, manifest string, present bool, count int, duration time.Duration, err error)

	// Source tree scan events
	OnScanStart(ctx context.Context, root string)
	OnScanComplete(ctx context.Context, root string, files int, bytes int64, duration time.Duration, err error)

	// Classification events
	OnClassifyComplete(ctx context.Context, labels []string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAnalysisHooks is a no-op implementation of AnalysisHooks.
type NoopAnalysisHooks struct{}

func (NoopAnalysisHooks) OnReadStart(context.Context, string) {}
func (NoopAnalysisHooks) OnReadComplete(context.Context, string, bool, int, time.Duration, error) {
}
func (NoopAnalysisHooks) OnScanStart(context.Context, string) {}
func (NoopAnalysisHooks) OnScanComplete(context.Context, string, int, int64, time.Duration, error) {
}
func (NoopAnalysisHooks) OnClassifyComplete(context.Context, []string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	analysisHooks AnalysisHooks = NoopAnalysisHooks{}
	hooksMu       sync.RWMutex
)

// SetAnalysisHooks registers custom analysis hooks.
// This should be called once at application startup before any analysis runs.
func SetAnalysisHooks(h AnalysisHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		analysisHooks = h
	}
}

// Analysis returns the registered analysis hooks.
func Analysis() AnalysisHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return analysisHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	analysisHooks = NoopAnalysisHooks{}
}
