package session

import "github.com/matzehuels/gridboard/pkg/grid"

// PositionKind classifies what occupies a grid position in a render pass.
type PositionKind int

const (
	// Placeholder: nothing here; in edit mode the renderer draws an empty
	// slot the user can drop onto.
	Placeholder PositionKind = iota

	// CellOrigin: the top-left position of a content cell. The renderer
	// draws the cell's content anchored here, sized to its span.
	CellOrigin

	// CellSpan: covered by a spanning cell whose origin is elsewhere.
	// Nothing is drawn at this position.
	CellSpan
)

// DropState is the visual affordance for a position during an active drag.
type DropState int

const (
	// DropNone: position is not part of the live candidate footprint.
	DropNone DropState = iota

	// DropAccept: part of a candidate the validator accepted.
	DropAccept

	// DropReject: part of a candidate the validator rejected.
	DropReject
)

// Position is one render decision.
type Position struct {
	Column, Row int
	Kind        PositionKind
	CellID      grid.ID // set for CellOrigin and CellSpan
	Selected    bool    // cell is the one under edit
	Drop        DropState
}

// Plan derives the full render decision matrix for the current update
// cycle, indexed [row][column] zero-based. It is recomputed from scratch
// every call — a projection of (registry, session), never cached state.
func (m *Machine) Plan() [][]Position {
	plan := make([][]Position, m.cfg.Rows)
	for y := range plan {
		plan[y] = make([]Position, m.cfg.Columns)
		for x := range plan[y] {
			plan[y][x] = Position{Column: x + 1, Row: y + 1}
		}
	}

	for _, c := range m.reg.All() {
		if !c.HasContent() || !c.InBounds(m.cfg) {
			continue
		}
		c = c.Normalize()
		selected := m.state != Idle && m.state != Selecting && c.ID == m.selected
		for y := c.Row; y < c.Row+c.RowSpan; y++ {
			for x := c.Column; x < c.Column+c.ColumnSpan; x++ {
				p := &plan[y-1][x-1]
				p.CellID = c.ID
				p.Selected = selected
				if x == c.Column && y == c.Row {
					p.Kind = CellOrigin
				} else {
					p.Kind = CellSpan
				}
			}
		}
	}

	// Overlay the live candidate footprint during a drag.
	if m.state == Dragging && m.cand.live {
		c, ok := m.reg.Get(m.selected)
		if ok {
			c = c.Normalize()
			drop := DropReject
			if m.cand.ok {
				drop = DropAccept
			}
			for y := m.cand.row; y < m.cand.row+c.RowSpan; y++ {
				for x := m.cand.column; x < m.cand.column+c.ColumnSpan; x++ {
					if !m.cfg.InBounds(x, y) {
						continue
					}
					plan[y-1][x-1].Drop = drop
				}
			}
		}
	}

	return plan
}

// Candidate returns the live drop target during a drag: origin, whether the
// validator accepted it, and whether a candidate exists at all.
func (m *Machine) Candidate() (column, row int, accepted, live bool) {
	return m.cand.column, m.cand.row, m.cand.ok, m.cand.live
}
