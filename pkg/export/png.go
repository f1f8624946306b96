package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/matzehuels/gridboard/pkg/grid"
	"github.com/matzehuels/gridboard/pkg/grid/project"
	"github.com/matzehuels/gridboard/pkg/layout"
)

// RenderPNG renders a layout as a PNG raster.
func RenderPNG(l *layout.Layout, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	cfg, m, cells, err := r.geometry(l)
	if err != nil {
		return nil, err
	}

	width, height := project.BoardSize(cfg, m)
	occ := grid.ComputeOccupancy(cfg, cells, "")

	dc := gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height)))
	dc.SetHexColor(colorBackground)
	dc.Clear()

	if r.showLabels {
		face, err := monoFace(r.cellSize / 6)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
	}

	for row := 1; row <= cfg.Rows; row++ {
		for col := 1; col <= cfg.Columns; col++ {
			if !occ.Free(col, row) {
				continue
			}
			pr := project.PositionRect(m, col, row)
			dc.SetHexColor(colorPlaceholder)
			dc.DrawRoundedRectangle(pr.X, pr.Y, pr.W, pr.H, 4)
			dc.Fill()
		}
	}

	for _, c := range cells {
		cr := project.CellRect(m, c)
		dc.SetHexColor(colorCellFill)
		dc.DrawRoundedRectangle(cr.X, cr.Y, cr.W, cr.H, 4)
		dc.FillPreserve()
		dc.SetHexColor(colorCellStroke)
		dc.SetLineWidth(2)
		dc.Stroke()

		if !r.showLabels {
			continue
		}
		label, _ := c.Content.(string)
		if label == "" {
			continue
		}
		dc.SetHexColor(colorLabel)
		dc.DrawStringAnchored(label, cr.X+cr.W/2, cr.Y+cr.H/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func monoFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
