package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/observability"
)

// FileStore persists layouts as JSON files in a directory, one file per
// layout named <name>.json. This is the default backend for CLI usage.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Get retrieves a layout by name.
func (s *FileStore) Get(ctx context.Context, name string) (*layout.Layout, error) {
	if !ValidName(name) {
		return nil, ErrInvalidName
	}

	l, err := layout.ReadLayoutFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			observability.Store().OnMiss("file", name)
			return nil, ErrNotFound
		}
		return nil, err
	}
	observability.Store().OnHit("file", name)
	return l, nil
}

// Set stores a layout under its name.
func (s *FileStore) Set(ctx context.Context, l *layout.Layout) error {
	if !ValidName(l.Name) {
		return ErrInvalidName
	}
	if err := layout.WriteLayoutFile(l, s.path(l.Name)); err != nil {
		return err
	}
	observability.Store().OnSet("file", l.Name)
	return nil
}

// Delete removes a layout by name.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if !ValidName(name) {
		return ErrInvalidName
	}
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// List returns all stored layout names in sorted order.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Close does nothing.
func (s *FileStore) Close() error { return nil }

// Dir returns the directory layouts are stored in.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
