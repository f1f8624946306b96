package grid

import "fmt"

// =============================================================================
// Diagnostics
// =============================================================================

// DiagnosticKind classifies a data problem found in supplied cells.
type DiagnosticKind int

const (
	// DiagDuplicateID means two supplied cells share an ID. The later cell
	// wins; the earlier one is discarded.
	DiagDuplicateID DiagnosticKind = iota

	// DiagOutOfBounds means a cell's footprint extends past the board edge.
	// The cell is kept but its footprint is clamped during occupancy.
	DiagOutOfBounds

	// DiagOverlap means two content cells' footprints intersect.
	DiagOverlap
)

// String returns a short label for the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagDuplicateID:
		return "duplicate-id"
	case DiagOutOfBounds:
		return "out-of-bounds"
	case DiagOverlap:
		return "overlap"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic reports a recoverable inconsistency in supplied cell data.
// Diagnostics are values, not errors: the registry accepts the data anyway
// and the caller decides whether to log or surface them.
type Diagnostic struct {
	Kind   DiagnosticKind
	CellID ID
	Detail string
}

// String formats the diagnostic for logging.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: cell %q: %s", d.Kind, string(d.CellID), d.Detail)
}

// =============================================================================
// Registry
// =============================================================================

// Registry holds the authoritative set of placed cells for one board.
//
// The cell list is owned by the embedding caller and mirrored in on every
// SetCells. Iteration order from All is the supply order and is stable
// between updates, but carries no semantic meaning.
//
// Registry is not safe for concurrent use; gridboard's event model is
// single-threaded (one state machine mutates, callers replace between
// render cycles).
type Registry struct {
	cfg   Config
	order []ID
	cells map[ID]Cell
}

// NewRegistry creates an empty registry for the given board.
func NewRegistry(cfg Config) *Registry {
	return &Registry{
		cfg:   cfg,
		cells: make(map[ID]Cell),
	}
}

// Config returns the board configuration the registry was created with.
func (r *Registry) Config() Config {
	return r.cfg
}

// SetCells replaces the full cell set and returns diagnostics for any
// inconsistencies found. Cells are normalized (zero spans become 1).
//
// Policy decisions, deliberately documented because they are surprising:
//   - Duplicate IDs: the last-supplied cell wins silently at lookup time;
//     a DiagDuplicateID diagnostic names the discarded one.
//   - Out-of-bounds footprints are kept and reported; occupancy clamps them.
//   - Overlapping content cells are kept and reported; both mark occupancy.
func (r *Registry) SetCells(cells []Cell) []Diagnostic {
	var diags []Diagnostic

	r.order = r.order[:0]
	clear(r.cells)

	for _, c := range cells {
		c = c.Normalize()
		if _, dup := r.cells[c.ID]; dup {
			diags = append(diags, Diagnostic{
				Kind:   DiagDuplicateID,
				CellID: c.ID,
				Detail: "id supplied more than once, keeping the later cell",
			})
		} else {
			r.order = append(r.order, c.ID)
		}
		r.cells[c.ID] = c
	}

	for _, id := range r.order {
		c := r.cells[id]
		if !c.InBounds(r.cfg) {
			diags = append(diags, Diagnostic{
				Kind:   DiagOutOfBounds,
				CellID: c.ID,
				Detail: fmt.Sprintf("footprint (%d,%d)+%dx%d exceeds %dx%d board",
					c.Column, c.Row, c.ColumnSpan, c.RowSpan, r.cfg.Columns, r.cfg.Rows),
			})
		}
	}

	diags = append(diags, r.overlapDiagnostics()...)
	return diags
}

// overlapDiagnostics scans content cells pairwise for footprint intersection.
// Quadratic, fine for the tens of cells a board holds.
func (r *Registry) overlapDiagnostics() []Diagnostic {
	var diags []Diagnostic
	for i, idA := range r.order {
		a := r.cells[idA]
		if !a.HasContent() {
			continue
		}
		for _, idB := range r.order[i+1:] {
			b := r.cells[idB]
			if !b.HasContent() || !a.Overlaps(b) {
				continue
			}
			diags = append(diags, Diagnostic{
				Kind:   DiagOverlap,
				CellID: b.ID,
				Detail: fmt.Sprintf("footprint intersects cell %q", string(a.ID)),
			})
		}
	}
	return diags
}

// Get returns the cell with the given ID.
func (r *Registry) Get(id ID) (Cell, bool) {
	c, ok := r.cells[id]
	return c, ok
}

// All returns the cells in supply order. The slice is freshly allocated;
// mutating it does not affect the registry.
func (r *Registry) All() []Cell {
	out := make([]Cell, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.cells[id])
	}
	return out
}

// Len returns the number of registered cells.
func (r *Registry) Len() int {
	return len(r.order)
}

// Commit writes a new origin onto the cell with the given ID. It is the
// single mutation point used when an edit session accepts a move.
// Returns false if the ID is unknown.
func (r *Registry) Commit(id ID, column, row int) bool {
	c, ok := r.cells[id]
	if !ok {
		return false
	}
	c.Column, c.Row = column, row
	r.cells[id] = c
	return true
}
