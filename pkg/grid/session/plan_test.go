package session

import (
	"testing"

	"github.com/matzehuels/gridboard/pkg/grid"
)

func TestPlanClassifiesPositions(t *testing.T) {
	m := newTestMachine(t, DefaultStrategy())

	plan := m.Plan()
	if len(plan) != 4 || len(plan[0]) != 4 {
		t.Fatalf("plan dimensions = %dx%d, want 4x4", len(plan), len(plan[0]))
	}

	tests := []struct {
		col, row int
		kind     PositionKind
		id       grid.ID
	}{
		{1, 1, CellOrigin, "a"},
		{2, 1, CellSpan, "a"},
		{2, 2, CellSpan, "a"},
		{4, 1, CellOrigin, "b"},
		{3, 1, Placeholder, ""},
		{3, 3, Placeholder, ""},
		{1, 4, CellOrigin, "c"},
		{3, 4, CellSpan, "c"},
		{4, 3, CellOrigin, "d"},
		{4, 4, CellSpan, "d"},
	}
	for _, tt := range tests {
		p := plan[tt.row-1][tt.col-1]
		if p.Kind != tt.kind || p.CellID != tt.id {
			t.Errorf("(%d,%d): kind=%v id=%q, want kind=%v id=%q",
				tt.col, tt.row, p.Kind, p.CellID, tt.kind, tt.id)
		}
		if p.Column != tt.col || p.Row != tt.row {
			t.Errorf("(%d,%d): position coordinates %d,%d mislabeled", tt.col, tt.row, p.Column, p.Row)
		}
	}
}

func TestPlanMarksSelection(t *testing.T) {
	m := newTestMachine(t, DefaultStrategy())
	enterEdit(t, m, 1, 1)

	plan := m.Plan()
	if !plan[0][0].Selected || !plan[1][1].Selected {
		t.Error("every position of the selected cell must be marked selected")
	}
	if plan[0][3].Selected {
		t.Error("unselected cell marked selected")
	}
}

func TestPlanDropAffordances(t *testing.T) {
	m := newTestMachine(t, DefaultStrategy())
	enterEdit(t, m, 4, 1)

	// Drag b over the free position (3,2): accept affordance there.
	x, y := center(4, 1)
	m.Handle(Event{Kind: PointerDown, X: x, Y: y})
	tx, ty := center(3, 2)
	m.Handle(Event{Kind: PointerMove, X: tx, Y: ty})

	plan := m.Plan()
	if plan[1][2].Drop != DropAccept {
		t.Errorf("(3,2) drop = %v, want accept", plan[1][2].Drop)
	}
	if plan[0][0].Drop != DropNone {
		t.Errorf("(1,1) drop = %v, want none", plan[0][0].Drop)
	}

	// Hover an occupied position: reject affordance.
	ox, oy := center(1, 4)
	m.Handle(Event{Kind: PointerMove, X: ox, Y: oy})
	plan = m.Plan()
	if plan[3][0].Drop != DropReject {
		t.Errorf("(1,4) drop = %v, want reject", plan[3][0].Drop)
	}
}

func TestPlanNoAffordanceOutsideDrag(t *testing.T) {
	m := newTestMachine(t, DefaultStrategy())
	enterEdit(t, m, 4, 1)

	for _, row := range m.Plan() {
		for _, p := range row {
			if p.Drop != DropNone {
				t.Fatalf("(%d,%d) has drop affordance outside a drag", p.Column, p.Row)
			}
		}
	}
}
