// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about drag gestures and structural changes of docking trees.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are called synchronously on the UI event goroutine, after the
// mutation they describe has completed. Implementations must not mutate the
// tree they are notified about.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDragHooks(&myDragHooks{})
//	    observability.SetTreeHooks(&myTreeHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Drag().OnDragStart(dockableID, group)
//	// ... gesture ...
//	observability.Drag().OnDrop(dockableID, "HEADER", time.Since(start))
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives events from the drag-and-drop engine.
type DragHooks interface {
	// OnDragStart records the start of a gesture.
	OnDragStart(dockable string, group int)

	// OnDrop records a committed gesture and its outcome (HEADER, REGION or
	// EXTERNAL).
	OnDrop(dockable, outcome string, duration time.Duration)

	// OnCancel records a gesture that ended without a commit.
	OnCancel(dockable, reason string)

	// OnExtract records a dockable torn out into a new window.
	OnExtract(dockable string, width, height int)
}

// =============================================================================
// Tree Hooks
// =============================================================================

// TreeHooks receives structural events from docking trees.
type TreeHooks interface {
	// OnPrune records a layout removed because it became empty or
	// redundant.
	OnPrune(layout, kind string)

	// OnCollapse records a split child collapsing or expanding.
	OnCollapse(split, child string, collapsed bool)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnDragStart(string, int)              {}
func (NoopDragHooks) OnDrop(string, string, time.Duration) {}
func (NoopDragHooks) OnCancel(string, string)              {}
func (NoopDragHooks) OnExtract(string, int, int)           {}

// NoopTreeHooks is a no-op implementation of TreeHooks.
type NoopTreeHooks struct{}

func (NoopTreeHooks) OnPrune(string, string)          {}
func (NoopTreeHooks) OnCollapse(string, string, bool) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	dragHooks DragHooks = NoopDragHooks{}
	treeHooks TreeHooks = NoopTreeHooks{}
	hooksMu   sync.RWMutex
)

// SetDragHooks registers custom drag hooks.
// This should be called once at application startup before any gesture.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// SetTreeHooks registers custom tree hooks.
// This should be called once at application startup before any tree is built.
func SetTreeHooks(h TreeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		treeHooks = h
	}
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Tree returns the registered tree hooks.
func Tree() TreeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return treeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	dragHooks = NoopDragHooks{}
	treeHooks = NoopTreeHooks{}
}
