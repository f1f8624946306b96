package grid

// ID identifies a cell. IDs are opaque to the core: they are only compared
// for equality and used as map keys.
type ID string

// Cell is a placed item on the board.
//
// Column and Row are the 1-based origin (top-left corner of the footprint).
// ColumnSpan and RowSpan default to 1 when zero; see [Cell.Normalize].
// Content is an opaque handle for the embedding renderer. Cells with nil
// Content are placeholders: they are rendered but never occupy positions.
type Cell struct {
	ID         ID
	Column     int
	Row        int
	ColumnSpan int
	RowSpan    int
	Content    any
}

// Normalize returns a copy with zero spans defaulted to 1.
func (c Cell) Normalize() Cell {
	if c.ColumnSpan < 1 {
		c.ColumnSpan = 1
	}
	if c.RowSpan < 1 {
		c.RowSpan = 1
	}
	return c
}

// HasContent reports whether the cell carries content. Placeholder cells
// (nil content) never mark occupancy.
func (c Cell) HasContent() bool {
	return c.Content != nil
}

// Contains reports whether the 1-based position lies inside the footprint.
func (c Cell) Contains(column, row int) bool {
	c = c.Normalize()
	return column >= c.Column && column < c.Column+c.ColumnSpan &&
		row >= c.Row && row < c.Row+c.RowSpan
}

// Overlaps reports whether the footprints of two cells intersect.
func (c Cell) Overlaps(o Cell) bool {
	c, o = c.Normalize(), o.Normalize()
	return c.Column < o.Column+o.ColumnSpan && o.Column < c.Column+c.ColumnSpan &&
		c.Row < o.Row+o.RowSpan && o.Row < c.Row+c.RowSpan
}

// InBounds reports whether the full footprint lies on the board.
func (c Cell) InBounds(cfg Config) bool {
	c = c.Normalize()
	return cfg.InBounds(c.Column, c.Row) &&
		cfg.InBounds(c.Column+c.ColumnSpan-1, c.Row+c.RowSpan-1)
}
