// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about hover classification and
// document edits.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetHoverHooks(&myHoverHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Hover().OnClassify(matrix, zone, row, cell)
package observability

import "sync"

// =============================================================================
// Hover Hooks
// =============================================================================

// HoverHooks receives events from the hover classification engine.
type HoverHooks interface {
	// OnClassify records a successful classification about to dispatch.
	OnClassify(matrix, zone string, row, cell int)

	// OnMemoHit records a dispatch suppressed by the per-matrix memo slot.
	OnMemoHit(matrix string)

	// OnClassifyMiss records a zone class with no registered interpreter.
	OnClassifyMiss(matrix, zone string, row, cell int)
}

// =============================================================================
// Edit Hooks
// =============================================================================

// EditHooks receives events from the document mutation layer.
type EditHooks interface {
	// OnIntent records a drop intent signalled by the engine (op is the
	// action name, level the resolved nesting depth, -1 for inline ops).
	OnIntent(op, dragID, hoverID string, level int)

	// OnApply records a drop intent committed to the document.
	OnApply(op, dragID, hoverID string, level int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopHoverHooks is a no-op implementation of HoverHooks.
type NoopHoverHooks struct{}

func (NoopHoverHooks) OnClassify(string, string, int, int)     {}
func (NoopHoverHooks) OnMemoHit(string)                        {}
func (NoopHoverHooks) OnClassifyMiss(string, string, int, int) {}

// NoopEditHooks is a no-op implementation of EditHooks.
type NoopEditHooks struct{}

func (NoopEditHooks) OnIntent(string, string, string, int) {}
func (NoopEditHooks) OnApply(string, string, string, int)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	hoverHooks HoverHooks = NoopHoverHooks{}
	editHooks  EditHooks  = NoopEditHooks{}
	hooksMu    sync.RWMutex
)

// SetHoverHooks registers custom hover hooks.
// This should be called once at application startup before any hover calls.
func SetHoverHooks(h HoverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		hoverHooks = h
	}
}

// SetEditHooks registers custom edit hooks.
// This should be called once at application startup before any edits.
func SetEditHooks(h EditHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editHooks = h
	}
}

// Hover returns the registered hover hooks.
func Hover() HoverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return hoverHooks
}

// Edit returns the registered edit hooks.
func Edit() EditHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	hoverHooks = NoopHoverHooks{}
	editHooks = NoopEditHooks{}
}
