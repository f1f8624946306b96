// Package project maps grid coordinates to pixel rectangles and back.
//
// Everything here is plain arithmetic over [Metrics], the measured pixel
// size of one cell. The embedding layer reports metrics whenever they
// change (on resize); the edit session needs them to convert pointer
// deltas into grid offsets.
package project

import (
	"math"

	"github.com/matzehuels/gridboard/pkg/grid"
)

// Metrics is the measured pixel geometry of one grid cell.
type Metrics struct {
	CellWidth  float64
	CellHeight float64
	Spacing    float64
}

// Valid reports whether geometry has been measured yet. Before the first
// layout pass both dimensions are zero and every fit test must reject.
func (m Metrics) Valid() bool {
	return m.CellWidth > 0 && m.CellHeight > 0
}

// Rect is an absolute pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// FitMetrics computes cell metrics for a board rendered into width x height
// pixels, honoring the config's sizing mode: with SizingFixedAspect the
// cells come out square.
func FitMetrics(cfg grid.Config, width, height float64) Metrics {
	if cfg.Columns <= 0 || cfg.Rows <= 0 {
		return Metrics{}
	}
	cw := (width - cfg.Spacing*float64(cfg.Columns-1)) / float64(cfg.Columns)
	ch := (height - cfg.Spacing*float64(cfg.Rows-1)) / float64(cfg.Rows)
	if cfg.Sizing == grid.SizingFixedAspect {
		side := math.Min(cw, ch)
		cw, ch = side, side
	}
	if cw < 0 {
		cw = 0
	}
	if ch < 0 {
		ch = 0
	}
	return Metrics{CellWidth: cw, CellHeight: ch, Spacing: cfg.Spacing}
}

// BoardSize returns the total pixel size of the board under the metrics.
func BoardSize(cfg grid.Config, m Metrics) (width, height float64) {
	width = float64(cfg.Columns)*m.CellWidth + float64(cfg.Columns-1)*m.Spacing
	height = float64(cfg.Rows)*m.CellHeight + float64(cfg.Rows-1)*m.Spacing
	return width, height
}

// PositionRect returns the pixel rectangle of a single 1-based position.
func PositionRect(m Metrics, column, row int) Rect {
	return Rect{
		X: float64(column-1) * (m.CellWidth + m.Spacing),
		Y: float64(row-1) * (m.CellHeight + m.Spacing),
		W: m.CellWidth,
		H: m.CellHeight,
	}
}

// CellRect returns the pixel rectangle covering a cell's full footprint,
// including the spacing swallowed between spanned positions.
func CellRect(m Metrics, c grid.Cell) Rect {
	c = c.Normalize()
	r := PositionRect(m, c.Column, c.Row)
	r.W = float64(c.ColumnSpan)*m.CellWidth + float64(c.ColumnSpan-1)*m.Spacing
	r.H = float64(c.RowSpan)*m.CellHeight + float64(c.RowSpan-1)*m.Spacing
	return r
}

// Locate maps a pixel position to the 1-based grid position under it.
// The spacing to the right/below a cell counts as part of that cell, so
// every in-board pixel resolves to exactly one position. Returns ok=false
// for pixels outside the board or unmeasured metrics.
func Locate(cfg grid.Config, m Metrics, x, y float64) (column, row int, ok bool) {
	if !m.Valid() || x < 0 || y < 0 {
		return 0, 0, false
	}
	column = int(math.Floor(x/(m.CellWidth+m.Spacing))) + 1
	row = int(math.Floor(y/(m.CellHeight+m.Spacing))) + 1
	if !cfg.InBounds(column, row) {
		return 0, 0, false
	}
	return column, row, true
}
