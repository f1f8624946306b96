package grid

// Occupancy is the derived free/occupied matrix for one update cycle,
// indexed [row][column] zero-based, true meaning the position is free.
//
// It is ephemeral: recompute it with [ComputeOccupancy] whenever the cell
// set or the excluded cell changes. Never patch it in place.
type Occupancy [][]bool

// ComputeOccupancy derives the occupancy matrix from a cell list.
//
// Every position starts free. Each content-bearing cell except the one with
// excludeID marks its footprint occupied. Placeholder cells (nil content)
// are skipped: they represent "nothing is here" and exist only so the
// renderer has something to draw.
//
// Footprints that extend past the board are clamped to the in-bounds part,
// so malformed input degrades instead of indexing out of range.
func ComputeOccupancy(cfg Config, cells []Cell, excludeID ID) Occupancy {
	occ := make(Occupancy, cfg.Rows)
	for y := range occ {
		occ[y] = make([]bool, cfg.Columns)
		for x := range occ[y] {
			occ[y][x] = true
		}
	}

	for _, c := range cells {
		if !c.HasContent() || c.ID == excludeID {
			continue
		}
		c = c.Normalize()

		// Clamp the footprint to the board.
		x0 := max(c.Column, 1)
		y0 := max(c.Row, 1)
		x1 := min(c.Column+c.ColumnSpan-1, cfg.Columns)
		y1 := min(c.Row+c.RowSpan-1, cfg.Rows)

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				occ[y-1][x-1] = false
			}
		}
	}

	return occ
}

// Free reports whether the 1-based position is free. Positions off the
// board are never free.
func (o Occupancy) Free(column, row int) bool {
	if row < 1 || row > len(o) {
		return false
	}
	if column < 1 || column > len(o[row-1]) {
		return false
	}
	return o[row-1][column-1]
}
