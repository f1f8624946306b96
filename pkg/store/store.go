// Package store persists named layouts across sessions.
//
// The [Store] interface abstracts over backends: an in-memory map for
// tests, JSON files under the user data directory for CLI usage, and
// Redis or MongoDB for shared deployments. All backends serialize the
// same [layout.Layout] format, so layouts move freely between them.
package store

import (
	"context"
	"errors"
	"regexp"

	"github.com/matzehuels/gridboard/pkg/layout"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a requested layout does not exist.
	ErrNotFound = errors.New("layout not found")

	// ErrInvalidName is returned for layout names that cannot be used as
	// storage keys.
	ErrInvalidName = errors.New("invalid layout name")
)

// Store persists named layouts.
type Store interface {
	// Get retrieves a layout by name. Returns ErrNotFound if absent.
	Get(ctx context.Context, name string) (*layout.Layout, error)

	// Set stores a layout under its Name, replacing any existing one.
	Set(ctx context.Context, l *layout.Layout) error

	// Delete removes a layout by name. Returns ErrNotFound if absent.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored layouts in sorted order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

var nameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidName reports whether a layout name is usable as a storage key.
func ValidName(name string) bool {
	return nameRe.MatchString(name)
}
