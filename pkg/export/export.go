// Package export renders layouts to static images.
//
// Two formats are supported: standalone SVG documents and PNG rasters.
// Both renderers share the projection geometry from pkg/grid/project, so
// an exported image matches what the interactive editor shows for the
// same layout.
package export

import (
	"fmt"

	"github.com/matzehuels/gridboard/pkg/grid"
	"github.com/matzehuels/gridboard/pkg/grid/project"
	"github.com/matzehuels/gridboard/pkg/layout"
)

// Default palette. Hex colors shared by the SVG and PNG renderers.
const (
	colorBackground  = "#1a1b26"
	colorPlaceholder = "#24283b"
	colorCellFill    = "#7aa2f7"
	colorCellStroke  = "#3d59a1"
	colorLabel       = "#1a1b26"
)

// Option configures a renderer.
type Option func(*renderer)

type renderer struct {
	cellSize   float64
	showLabels bool
}

// WithCellSize sets the pixel size of a unit cell. Default is 96.
func WithCellSize(px float64) Option {
	return func(r *renderer) { r.cellSize = px }
}

// WithoutLabels omits cell labels from the output.
func WithoutLabels() Option {
	return func(r *renderer) { r.showLabels = false }
}

func newRenderer(opts ...Option) renderer {
	r := renderer{cellSize: 96, showLabels: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// geometry resolves the layout into a config, metrics and cell list.
func (r *renderer) geometry(l *layout.Layout) (grid.Config, project.Metrics, []grid.Cell, error) {
	cfg, err := l.Config()
	if err != nil {
		return grid.Config{}, project.Metrics{}, nil, fmt.Errorf("invalid layout: %w", err)
	}
	m := project.Metrics{
		CellWidth:  r.cellSize,
		CellHeight: r.cellSize,
		Spacing:    cfg.Spacing,
	}
	return cfg, m, l.GridCells(), nil
}
