package export

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/gridboard/pkg/grid"
	"github.com/matzehuels/gridboard/pkg/grid/project"
	"github.com/matzehuels/gridboard/pkg/layout"
)

// RenderSVG renders a layout as a standalone SVG document.
func RenderSVG(l *layout.Layout, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	cfg, m, cells, err := r.geometry(l)
	if err != nil {
		return nil, err
	}

	width, height := project.BoardSize(cfg, m)
	occ := grid.ComputeOccupancy(cfg, cells, "")

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", width, height, colorBackground)

	// Free positions render as placeholder tiles.
	for row := 1; row <= cfg.Rows; row++ {
		for col := 1; col <= cfg.Columns; col++ {
			if !occ.Free(col, row) {
				continue
			}
			pr := project.PositionRect(m, col, row)
			fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s"/>`+"\n",
				pr.X, pr.Y, pr.W, pr.H, colorPlaceholder)
		}
	}

	for _, c := range cells {
		cr := project.CellRect(m, c)
		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
			cr.X, cr.Y, cr.W, cr.H, colorCellFill, colorCellStroke)
		if !r.showLabels {
			continue
		}
		label, _ := c.Content.(string)
		if label == "" {
			continue
		}
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="monospace" font-size="%.0f" fill="%s">%s</text>`+"\n",
			cr.X+cr.W/2, cr.Y+cr.H/2, r.cellSize/6, colorLabel, html.EscapeString(label))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}
