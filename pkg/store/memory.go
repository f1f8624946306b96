package store

import (
	"context"
	"sort"
	"sync"

	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/observability"
)

// MemoryStore keeps layouts in process memory.
// Useful for tests or when persistence should be disabled.
type MemoryStore struct {
	mu      sync.RWMutex
	layouts map[string]*layout.Layout
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{layouts: make(map[string]*layout.Layout)}
}

// Get retrieves a layout by name.
func (s *MemoryStore) Get(ctx context.Context, name string) (*layout.Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.layouts[name]
	if !ok {
		observability.Store().OnMiss("memory", name)
		return nil, ErrNotFound
	}
	observability.Store().OnHit("memory", name)
	return cloneLayout(l), nil
}

// Set stores a layout under its name.
func (s *MemoryStore) Set(ctx context.Context, l *layout.Layout) error {
	if !ValidName(l.Name) {
		return ErrInvalidName
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.layouts[l.Name] = cloneLayout(l)
	observability.Store().OnSet("memory", l.Name)
	return nil
}

// Delete removes a layout by name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.layouts[name]; !ok {
		return ErrNotFound
	}
	delete(s.layouts, name)
	return nil
}

// List returns all stored layout names in sorted order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.layouts))
	for name := range s.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close does nothing.
func (s *MemoryStore) Close() error { return nil }

// cloneLayout copies a layout including its cell slice, so neither side can
// write through into the other.
func cloneLayout(l *layout.Layout) *layout.Layout {
	cp := *l
	cp.Cells = append([]layout.Cell(nil), l.Cells...)
	return &cp
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
