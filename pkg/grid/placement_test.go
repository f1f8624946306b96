package grid

import "testing"

// TestCanPlaceSoundness verifies by exhaustive enumeration that CanPlace
// accepts exactly the footprints whose every position is in bounds and free.
func TestCanPlaceSoundness(t *testing.T) {
	cfg, cells := fourByFour()
	occ := ComputeOccupancy(cfg, cells, "")

	for col := -1; col <= cfg.Columns+1; col++ {
		for row := -1; row <= cfg.Rows+1; row++ {
			for cs := 1; cs <= 2; cs++ {
				for rs := 1; rs <= 2; rs++ {
					want := true
					for y := row; y < row+rs; y++ {
						for x := col; x < col+cs; x++ {
							if !cfg.InBounds(x, y) || !occ.Free(x, y) {
								want = false
							}
						}
					}
					got := CanPlace(cfg, occ, col, row, cs, rs)
					if got != want {
						t.Errorf("CanPlace(%d,%d,%dx%d) = %v, want %v", col, row, cs, rs, got, want)
					}
				}
			}
		}
	}
}

// TestCanPlaceScenarioRejectA covers the dragged-A scenario: on the
// reference board with A lifted, candidate origin (3,3) for A's 2x2
// footprint touches positions held by C and D and must be rejected.
func TestCanPlaceScenarioRejectA(t *testing.T) {
	cfg, cells := fourByFour()
	occ := ComputeOccupancy(cfg, cells, "a")

	if CanPlace(cfg, occ, 3, 3, 2, 2) {
		t.Error("footprint (3,3)+2x2 overlaps cells c and d, must be rejected")
	}
}

// TestCanPlaceScenarioAcceptB covers the dragged-B scenario: moving the 1x1
// cell B to the free position (3,2) must be accepted, and after committing,
// occupancy reflects the move.
func TestCanPlaceScenarioAcceptB(t *testing.T) {
	cfg, cells := fourByFour()
	reg := NewRegistry(cfg)
	if diags := reg.SetCells(cells); len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	occ := ComputeOccupancy(cfg, reg.All(), "b")
	if !CanPlace(cfg, occ, 3, 2, 1, 1) {
		t.Fatal("position (3,2) is free, move must be accepted")
	}

	if !reg.Commit("b", 3, 2) {
		t.Fatal("commit failed for known cell")
	}

	occ = ComputeOccupancy(cfg, reg.All(), "")
	if occ.Free(3, 2) {
		t.Error("(3,2) must be occupied after the move")
	}
	if !occ.Free(4, 1) {
		t.Error("(4,1) must be free after the move")
	}
}

func TestCanMoveNearby(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		cell  Cell
		want  bool
	}{
		{
			name: "open board, all four directions clear",
			cell: Cell{ID: "m", Column: 2, Row: 2, Content: "m"},
			want: true,
		},
		{
			name: "all orthogonal neighbors blocked",
			cells: []Cell{
				{ID: "n", Column: 2, Row: 1, Content: "n"},
				{ID: "s", Column: 2, Row: 3, Content: "s"},
				{ID: "w", Column: 1, Row: 2, Content: "w"},
				{ID: "e", Column: 3, Row: 2, Content: "e"},
			},
			cell: Cell{ID: "m", Column: 2, Row: 2, Content: "m"},
			want: false,
		},
		{
			name: "diagonal space does not count",
			cells: []Cell{
				{ID: "n", Column: 2, Row: 1, Content: "n"},
				{ID: "s", Column: 2, Row: 3, Content: "s"},
				{ID: "w", Column: 1, Row: 2, Content: "w"},
				{ID: "e", Column: 3, Row: 2, Content: "e"},
				// corners (1,1), (3,1), (1,3), (3,3) stay free
			},
			cell: Cell{ID: "m", Column: 2, Row: 2, Content: "m"},
			want: false,
		},
		{
			name: "wide cell needs its full span clear",
			cells: []Cell{
				// Blocks only the far position of a rightward shift of the
				// 2x1 cell at (1,1): destination (2,1)+(3,1), (3,1) taken.
				{ID: "blk", Column: 3, Row: 1, Content: "blk"},
				{ID: "s1", Column: 1, Row: 2, ColumnSpan: 4, Content: "s1"},
			},
			cell: Cell{ID: "m", Column: 1, Row: 1, ColumnSpan: 2, Content: "m"},
			want: false,
		},
		{
			name: "wide cell accepted when full span fits",
			cells: []Cell{
				{ID: "s1", Column: 1, Row: 2, ColumnSpan: 4, Content: "s1"},
			},
			cell: Cell{ID: "m", Column: 1, Row: 1, ColumnSpan: 2, Content: "m"},
			want: true, // shift right to (2,1)+(3,1) is clear
		},
		{
			name: "cornered 1x1 with one free neighbor",
			cells: []Cell{
				{ID: "e", Column: 2, Row: 1, Content: "e"},
			},
			cell: Cell{ID: "m", Column: 1, Row: 1, Content: "m"},
			want: true, // down is clear
		},
	}

	cfg := Config{Columns: 4, Rows: 4}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := append([]Cell{tt.cell}, tt.cells...)
			occ := ComputeOccupancy(cfg, cells, tt.cell.ID)
			if got := CanMoveNearby(cfg, occ, tt.cell); got != tt.want {
				t.Errorf("CanMoveNearby = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanMoveNearbyAtBoardEdge(t *testing.T) {
	// A cell filling the whole board has nowhere to go.
	cfg := Config{Columns: 2, Rows: 2}
	c := Cell{ID: "full", Column: 1, Row: 1, ColumnSpan: 2, RowSpan: 2, Content: "x"}
	occ := ComputeOccupancy(cfg, []Cell{c}, c.ID)

	if CanMoveNearby(cfg, occ, c) {
		t.Error("board-filling cell must not be movable")
	}
}
