// Package observability provides hooks for metrics and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about edit sessions and layout store
// operations; the core libraries stay framework-free.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSessionHooks(&mySessionHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Session().OnCommit(id, column, row)
package observability

import "sync"

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from the edit session state machine.
type SessionHooks interface {
	// OnEnterEdit records a cell entering edit mode.
	OnEnterEdit(cellID string)

	// OnCommit records an accepted move being written to the registry.
	OnCommit(cellID string, column, row int)

	// OnReject records a drop on an invalid position.
	OnReject(cellID string, column, row int)

	// OnCancel records a session ending without a move (cancel or abort).
	OnCancel(cellID string)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from layout store operations.
type StoreHooks interface {
	// OnHit records a successful layout lookup.
	OnHit(backend, name string)

	// OnMiss records a lookup for a layout that does not exist.
	OnMiss(backend, name string)

	// OnSet records a layout write.
	OnSet(backend, name string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnEnterEdit(string)        {}
func (NoopSessionHooks) OnCommit(string, int, int) {}
func (NoopSessionHooks) OnReject(string, int, int) {}
func (NoopSessionHooks) OnCancel(string)           {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnHit(string, string)  {}
func (NoopStoreHooks) OnMiss(string, string) {}
func (NoopStoreHooks) OnSet(string, string)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sessionHooks SessionHooks = NoopSessionHooks{}
	storeHooks   StoreHooks   = NoopStoreHooks{}
	hooksMu      sync.RWMutex
)

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sessionHooks = NoopSessionHooks{}
	storeHooks = NoopStoreHooks{}
}
