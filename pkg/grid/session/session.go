// Package session implements the interactive edit session for a grid board.
//
// The [Machine] is a single-threaded state machine driven by a small event
// set (pointer down/move/up, long-press recognized, drag canceled). The
// embedding layer — a TUI event loop, a web frontend, tests — translates
// raw platform gestures into [Event] values and feeds them in delivery
// order; the machine never reorders or buffers.
//
// A session moves a single selected cell:
//
//	Idle → Selecting → Editing → Dragging → Editing → Idle
//
// Candidate drop positions are validated against a freshly computed
// occupancy with the selected cell excluded, and an accepted drop is the
// only path that mutates a cell's origin. One change notification fires per
// completed session, carrying the cell's final (possibly unchanged) state.
package session

import (
	"math"

	"github.com/matzehuels/gridboard/pkg/grid"
	"github.com/matzehuels/gridboard/pkg/grid/project"
	"github.com/matzehuels/gridboard/pkg/observability"
)

// =============================================================================
// Events
// =============================================================================

// EventKind enumerates the inputs the machine understands.
type EventKind int

const (
	// PointerDown is a press at a pixel position.
	PointerDown EventKind = iota

	// PointerMove is pointer motion while pressed.
	PointerMove

	// PointerUp is a release.
	PointerUp

	// LongPress is delivered by the embedding gesture layer once its
	// long-press threshold has elapsed after a PointerDown.
	LongPress

	// DragCancel aborts an in-progress drag (e.g. gesture system cancel).
	DragCancel
)

// Event is one discrete input. X and Y are pixel coordinates local to the
// board's top-left corner.
type Event struct {
	Kind EventKind
	X, Y float64
}

// =============================================================================
// States and strategy
// =============================================================================

// State is the machine's current mode.
type State int

const (
	// Idle: no session active.
	Idle State = iota

	// Selecting: pointer is down on a cell but the entry gesture has not
	// been recognized yet.
	Selecting

	// Editing: a cell is selected; the board shows placeholders.
	Editing

	// Dragging: the selected cell follows the pointer with a live
	// candidate footprint.
	Dragging
)

// String returns the state name for logs and tests.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	case Editing:
		return "editing"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Strategy is the editing policy bundle. All fields are independent and
// compose freely; the zero value disables editing entirely.
type Strategy struct {
	// Allowed enables editing at all. When false the entry gestures are
	// simply not wired.
	Allowed bool

	// EnterOnLongTap enters edit mode on a recognized long press.
	EnterOnLongTap bool

	// ExitOnTap exits edit mode when the selected cell is tapped.
	ExitOnTap bool

	// Immediate starts a drag directly on press, without a prior enter
	// step, and ends the session when the drag ends.
	Immediate bool

	// MoveOnlyToNearby restricts draggability to cells with at least one
	// free orthogonal unit shift.
	MoveOnlyToNearby bool
}

// DefaultStrategy is long-press to edit, tap to leave.
func DefaultStrategy() Strategy {
	return Strategy{Allowed: true, EnterOnLongTap: true, ExitOnTap: true}
}

// =============================================================================
// Machine
// =============================================================================

// candidate is the live drop target during a drag.
type candidate struct {
	column, row int
	ok          bool // validator accepted
	live        bool // a candidate has been computed at all
}

// Machine orchestrates edit sessions over a cell registry.
//
// Not safe for concurrent use: all events and data updates must arrive on
// one goroutine, and SetCells may only be called between render cycles
// (calling it mid-drag aborts the session, by design).
type Machine struct {
	cfg      grid.Config
	reg      *grid.Registry
	strategy Strategy
	metrics  project.Metrics

	state    State
	selected grid.ID
	// Grab offset: pointer position relative to the selected cell's
	// top-left pixel corner at selection time.
	grabX, grabY float64
	pressed      bool // pointer currently down on the selected cell
	entryPress   bool // the press that opened the session; its release is not an exit tap
	cand         candidate

	// OnCellChanged fires exactly once per completed session, on the
	// Editing → Idle transition, with the selected cell's final state.
	OnCellChanged func(grid.Cell)
}

// New creates a machine for the given board and strategy.
// The config must already be validated.
func New(cfg grid.Config, strategy Strategy) *Machine {
	return &Machine{
		cfg:      cfg,
		reg:      grid.NewRegistry(cfg),
		strategy: strategy,
	}
}

// Registry exposes the machine's cell registry for rendering and tests.
func (m *Machine) Registry() *grid.Registry { return m.reg }

// Config returns the board configuration.
func (m *Machine) Config() grid.Config { return m.cfg }

// Strategy returns the editing policy in effect.
func (m *Machine) Strategy() Strategy { return m.strategy }

// State returns the current machine state.
func (m *Machine) State() State { return m.state }

// Selected returns the id of the cell under edit, if any.
func (m *Machine) Selected() (grid.ID, bool) {
	if m.state == Idle || m.state == Selecting {
		return "", false
	}
	return m.selected, true
}

// SetMetrics records the measured pixel size of one grid cell. The
// embedding layout system calls this whenever geometry changes; until it
// does, every fit test rejects.
func (m *Machine) SetMetrics(cellWidth, cellHeight float64) {
	m.metrics = project.Metrics{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Spacing:    m.cfg.Spacing,
	}
}

// SetCells replaces the full cell set, forwarding the registry's
// diagnostics. If a session is active and its cell disappeared in the
// replacement, the session aborts back to Idle without a notification.
func (m *Machine) SetCells(cells []grid.Cell) []grid.Diagnostic {
	diags := m.reg.SetCells(cells)

	if m.state != Idle {
		if _, ok := m.reg.Get(m.selected); !ok {
			observability.Session().OnCancel(string(m.selected))
			m.resetToIdle()
		}
	}
	return diags
}

// Draggable reports whether a cell may start a drag under the current
// strategy. With MoveOnlyToNearby it requires a free orthogonal shift;
// evaluate once per cell per render pass, not per pointer move.
func (m *Machine) Draggable(c grid.Cell) bool {
	if !m.strategy.Allowed || !c.HasContent() {
		return false
	}
	if !m.strategy.MoveOnlyToNearby {
		return true
	}
	occ := grid.ComputeOccupancy(m.cfg, m.reg.All(), c.ID)
	return grid.CanMoveNearby(m.cfg, occ, c)
}

// Handle processes one input event. Events are handled synchronously and
// in delivery order.
func (m *Machine) Handle(ev Event) {
	switch m.state {
	case Idle:
		m.handleIdle(ev)
	case Selecting:
		m.handleSelecting(ev)
	case Editing:
		m.handleEditing(ev)
	case Dragging:
		m.handleDragging(ev)
	}
}

// =============================================================================
// Per-state transitions
// =============================================================================

func (m *Machine) handleIdle(ev Event) {
	if ev.Kind != PointerDown || !m.strategy.Allowed {
		return
	}
	c, ok := m.cellAt(ev.X, ev.Y)
	if !ok {
		return
	}

	if m.strategy.Immediate {
		if !m.Draggable(c) {
			return
		}
		m.beginSession(c, ev)
		m.state = Dragging
		m.pressed = true
		return
	}

	// Remember the pressed cell and wait for the entry gesture.
	m.selected = c.ID
	m.recordGrab(c, ev)
	m.state = Selecting
}

func (m *Machine) handleSelecting(ev Event) {
	switch ev.Kind {
	case LongPress:
		if !m.strategy.EnterOnLongTap {
			return
		}
		c, ok := m.reg.Get(m.selected)
		if !ok {
			m.resetToIdle()
			return
		}
		m.beginSession(c, ev)
		m.pressed = true
		m.entryPress = true
	case PointerUp, DragCancel:
		// Plain tap outside edit mode: nothing happens.
		m.resetToIdle()
	}
}

func (m *Machine) handleEditing(ev Event) {
	switch ev.Kind {
	case PointerDown:
		c, ok := m.cellAt(ev.X, ev.Y)
		if !ok {
			return
		}
		if c.ID == m.selected {
			m.recordGrab(c, ev)
			m.pressed = true
			return
		}
		// Entry gesture on a different cell while editing: implicit
		// cancel-and-reselect.
		observability.Session().OnCancel(string(m.selected))
		m.beginSession(c, ev)
		m.pressed = true
		m.entryPress = true

	case PointerMove:
		if !m.pressed {
			return
		}
		if c, ok := m.reg.Get(m.selected); ok && !m.Draggable(c) {
			return
		}
		m.entryPress = false
		m.state = Dragging
		m.updateCandidate(ev)

	case PointerUp:
		if m.entryPress {
			// Releasing the press that opened the session is not a tap.
			m.entryPress = false
			m.pressed = false
			return
		}
		if m.pressed && m.strategy.ExitOnTap {
			m.finishSession()
			return
		}
		m.pressed = false

	case DragCancel:
		m.pressed = false
		m.entryPress = false
	}
}

func (m *Machine) handleDragging(ev Event) {
	switch ev.Kind {
	case PointerMove:
		m.updateCandidate(ev)

	case PointerUp:
		m.drop()

	case DragCancel:
		// Candidate discarded, no mutation.
		m.cand = candidate{}
		m.pressed = false
		if m.strategy.Immediate {
			m.finishSession()
			return
		}
		m.state = Editing
	}
}

// =============================================================================
// Session helpers
// =============================================================================

// beginSession selects a cell and enters Editing.
func (m *Machine) beginSession(c grid.Cell, ev Event) {
	m.selected = c.ID
	m.recordGrab(c, ev)
	m.cand = candidate{}
	m.state = Editing
	observability.Session().OnEnterEdit(string(c.ID))
}

// recordGrab stores the pointer's offset from the cell's top-left pixel
// corner. With unmeasured metrics the offset is zero; drops will reject
// anyway until geometry arrives.
func (m *Machine) recordGrab(c grid.Cell, ev Event) {
	if !m.metrics.Valid() {
		m.grabX, m.grabY = 0, 0
		return
	}
	r := project.CellRect(m.metrics, c)
	m.grabX = ev.X - r.X
	m.grabY = ev.Y - r.Y
}

// updateCandidate recomputes the live drop target from the pointer
// position. The candidate origin is the position under the pointer shifted
// back by the grab offset in whole grid units, so the cell lands where its
// body is, not where the finger is.
func (m *Machine) updateCandidate(ev Event) {
	m.cand = candidate{}
	if !m.metrics.Valid() {
		return
	}
	col, row, ok := project.Locate(m.cfg, m.metrics, ev.X, ev.Y)
	if !ok {
		return
	}
	c, ok := m.reg.Get(m.selected)
	if !ok {
		return
	}

	pitchX := m.metrics.CellWidth + m.metrics.Spacing
	pitchY := m.metrics.CellHeight + m.metrics.Spacing
	dragColOffset := int(math.Floor(m.grabX / pitchX))
	dragRowOffset := int(math.Floor(m.grabY / pitchY))

	m.cand.column = col - dragColOffset
	m.cand.row = row - dragRowOffset
	m.cand.live = true

	occ := grid.ComputeOccupancy(m.cfg, m.reg.All(), m.selected)
	m.cand.ok = grid.CanPlace(m.cfg, occ, m.cand.column, m.cand.row, c.ColumnSpan, c.RowSpan)
}

// drop commits the candidate if the validator accepted it, then returns to
// Editing — or ends the session entirely in immediate mode.
func (m *Machine) drop() {
	if m.cand.live && m.cand.ok {
		if m.reg.Commit(m.selected, m.cand.column, m.cand.row) {
			observability.Session().OnCommit(string(m.selected), m.cand.column, m.cand.row)
		}
	} else if m.cand.live {
		observability.Session().OnReject(string(m.selected), m.cand.column, m.cand.row)
	}

	m.cand = candidate{}
	m.pressed = false
	m.entryPress = false
	if m.strategy.Immediate {
		m.finishSession()
		return
	}
	m.state = Editing
}

// finishSession leaves Editing for Idle, emitting the single change
// notification with the cell's final state.
func (m *Machine) finishSession() {
	c, ok := m.reg.Get(m.selected)
	m.resetToIdle()
	if ok && m.OnCellChanged != nil {
		m.OnCellChanged(c)
	}
}

func (m *Machine) resetToIdle() {
	m.state = Idle
	m.selected = ""
	m.pressed = false
	m.entryPress = false
	m.grabX, m.grabY = 0, 0
	m.cand = candidate{}
}

// cellAt returns the content cell covering the pixel position, if any.
func (m *Machine) cellAt(x, y float64) (grid.Cell, bool) {
	col, row, ok := project.Locate(m.cfg, m.metrics, x, y)
	if !ok {
		return grid.Cell{}, false
	}
	for _, c := range m.reg.All() {
		if c.HasContent() && c.Contains(col, row) {
			return c, true
		}
	}
	return grid.Cell{}, false
}
