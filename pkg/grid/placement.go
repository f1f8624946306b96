package grid

// CanPlace reports whether a footprint with the given origin and spans fits
// on the board without touching an occupied position.
//
// The check is exact: every position of the footprint must be in bounds and
// free. Pure function; safe to call speculatively on every pointer move.
func CanPlace(cfg Config, occ Occupancy, column, row, columnSpan, rowSpan int) bool {
	if columnSpan < 1 {
		columnSpan = 1
	}
	if rowSpan < 1 {
		rowSpan = 1
	}
	for y := row; y < row+rowSpan; y++ {
		for x := column; x < column+columnSpan; x++ {
			if !cfg.InBounds(x, y) {
				return false
			}
			if !occ.Free(x, y) {
				return false
			}
		}
	}
	return true
}

// CanMoveNearby reports whether the cell could shift by exactly one grid
// unit in at least one of the four orthogonal directions. Diagonals do not
// count, and a direction is clear only if the cell's full span fits there:
// a 2x1 cell shifting right needs both destination positions free.
//
// This gates draggability under the move-only-to-nearby editing strategy.
// Evaluate it against an occupancy computed with the cell itself excluded,
// once per cell per render pass.
func CanMoveNearby(cfg Config, occ Occupancy, c Cell) bool {
	c = c.Normalize()
	shifts := [4][2]int{
		{0, -1}, // up
		{0, 1},  // down
		{-1, 0}, // left
		{1, 0},  // right
	}
	for _, s := range shifts {
		if CanPlace(cfg, occ, c.Column+s[0], c.Row+s[1], c.ColumnSpan, c.RowSpan) {
			return true
		}
	}
	return false
}
