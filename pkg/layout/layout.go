// Package layout defines the serialization format for grid board layouts.
//
// A [Layout] is the canonical on-disk and over-the-wire form of a board:
// its dimensions, sizing policy, and cell placements. The format is
// human-readable JSON designed for round-trip fidelity — import, edit,
// export, re-import produces identical results. The same structs carry
// bson tags for the Mongo-backed store.
//
// Layouts convert to and from the in-memory core types in pkg/grid; the
// serializable Label field stands in for the opaque content handle the
// core passes through.
package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/gridboard/pkg/grid"
)

// Cell is one placed item in a serialized layout.
// Column and Row are 1-based; zero spans mean 1.
type Cell struct {
	ID         string `json:"id" bson:"id"`
	Column     int    `json:"column" bson:"column"`
	Row        int    `json:"row" bson:"row"`
	ColumnSpan int    `json:"column_span,omitempty" bson:"column_span,omitempty"`
	RowSpan    int    `json:"row_span,omitempty" bson:"row_span,omitempty"`
	Label      string `json:"label,omitempty" bson:"label,omitempty"`
}

// Layout is the canonical serialization format for a board.
type Layout struct {
	Name    string  `json:"name" bson:"name"`
	Columns int     `json:"columns" bson:"columns"`
	Rows    int     `json:"rows" bson:"rows"`
	Spacing float64 `json:"spacing,omitempty" bson:"spacing,omitempty"`
	Sizing  string  `json:"sizing,omitempty" bson:"sizing,omitempty"`
	Cells   []Cell  `json:"cells" bson:"cells"`
}

// Config derives the validated board configuration.
func (l *Layout) Config() (grid.Config, error) {
	sizing, err := grid.ParseSizingMode(l.Sizing)
	if err != nil {
		return grid.Config{}, err
	}
	cfg := grid.Config{
		Columns: l.Columns,
		Rows:    l.Rows,
		Spacing: l.Spacing,
		Sizing:  sizing,
	}
	if err := cfg.Validate(); err != nil {
		return grid.Config{}, err
	}
	return cfg, nil
}

// EnsureIDs assigns a fresh UUID to every cell that arrived without one.
func (l *Layout) EnsureIDs() {
	for i := range l.Cells {
		if l.Cells[i].ID == "" {
			l.Cells[i].ID = uuid.NewString()
		}
	}
}

// GridCells converts to core cells. Serialized cells are always
// content-bearing: the label (or the id, when no label is set) becomes the
// content handle. Placeholders are synthesized by the renderer, never
// stored.
func (l *Layout) GridCells() []grid.Cell {
	out := make([]grid.Cell, len(l.Cells))
	for i, c := range l.Cells {
		label := c.Label
		if label == "" {
			label = c.ID
		}
		out[i] = grid.Cell{
			ID:         grid.ID(c.ID),
			Column:     c.Column,
			Row:        c.Row,
			ColumnSpan: c.ColumnSpan,
			RowSpan:    c.RowSpan,
			Content:    label,
		}.Normalize()
	}
	return out
}

// FromCells builds a serializable layout from core cells. Content handles
// that are strings become labels; anything else serializes as the empty
// label.
func FromCells(name string, cfg grid.Config, cells []grid.Cell) *Layout {
	l := &Layout{
		Name:    name,
		Columns: cfg.Columns,
		Rows:    cfg.Rows,
		Spacing: cfg.Spacing,
		Sizing:  cfg.Sizing.String(),
		Cells:   make([]Cell, 0, len(cells)),
	}
	for _, c := range cells {
		c = c.Normalize()
		label, _ := c.Content.(string)
		l.Cells = append(l.Cells, Cell{
			ID:         string(c.ID),
			Column:     c.Column,
			Row:        c.Row,
			ColumnSpan: c.ColumnSpan,
			RowSpan:    c.RowSpan,
			Label:      label,
		})
	}
	return l
}

// Marshal serializes the layout as indented JSON.
func (l *Layout) Marshal() ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Layout.
func Unmarshal(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ReadLayoutFile loads a layout from a JSON file.
func ReadLayoutFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	l, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	return l, nil
}

// WriteLayoutFile saves a layout as a JSON file.
func WriteLayoutFile(l *Layout, path string) error {
	data, err := l.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
