package grid

import "testing"

func TestRegistrySetCellsAndLookup(t *testing.T) {
	cfg, cells := fourByFour()
	reg := NewRegistry(cfg)

	diags := reg.SetCells(cells)
	if len(diags) != 0 {
		t.Fatalf("valid cells produced diagnostics: %v", diags)
	}
	if reg.Len() != 4 {
		t.Fatalf("Len = %d, want 4", reg.Len())
	}

	c, ok := reg.Get("c")
	if !ok {
		t.Fatal("Get(c) not found")
	}
	if c.ColumnSpan != 3 || c.RowSpan != 1 {
		t.Errorf("cell c spans = %dx%d, want 3x1", c.ColumnSpan, c.RowSpan)
	}

	// Supply order is preserved.
	all := reg.All()
	for i, want := range []ID{"a", "b", "c", "d"} {
		if all[i].ID != want {
			t.Errorf("All()[%d].ID = %q, want %q", i, all[i].ID, want)
		}
	}
}

func TestRegistryNormalizesSpans(t *testing.T) {
	reg := NewRegistry(Config{Columns: 3, Rows: 3})
	reg.SetCells([]Cell{{ID: "x", Column: 1, Row: 1, Content: "x"}})

	c, _ := reg.Get("x")
	if c.ColumnSpan != 1 || c.RowSpan != 1 {
		t.Errorf("zero spans should normalize to 1x1, got %dx%d", c.ColumnSpan, c.RowSpan)
	}
}

func TestRegistryDuplicateIDLastWins(t *testing.T) {
	reg := NewRegistry(Config{Columns: 4, Rows: 4})
	diags := reg.SetCells([]Cell{
		{ID: "x", Column: 1, Row: 1, Content: "first"},
		{ID: "x", Column: 3, Row: 3, Content: "second"},
	})

	var found bool
	for _, d := range diags {
		if d.Kind == DiagDuplicateID && d.CellID == "x" {
			found = true
		}
	}
	if !found {
		t.Error("duplicate id must produce a DiagDuplicateID diagnostic")
	}

	c, _ := reg.Get("x")
	if c.Content != "second" || c.Column != 3 {
		t.Errorf("last-supplied cell must win, got %+v", c)
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", reg.Len())
	}
}

func TestRegistryOutOfBoundsDiagnostic(t *testing.T) {
	reg := NewRegistry(Config{Columns: 2, Rows: 2})
	diags := reg.SetCells([]Cell{
		{ID: "big", Column: 2, Row: 2, ColumnSpan: 2, Content: "x"},
	})

	if len(diags) != 1 || diags[0].Kind != DiagOutOfBounds {
		t.Fatalf("want one DiagOutOfBounds, got %v", diags)
	}
	// The cell stays available; occupancy clamps it later.
	if _, ok := reg.Get("big"); !ok {
		t.Error("out-of-bounds cell must still be registered")
	}
}

func TestRegistryOverlapDiagnostic(t *testing.T) {
	reg := NewRegistry(Config{Columns: 4, Rows: 4})
	diags := reg.SetCells([]Cell{
		{ID: "a", Column: 1, Row: 1, ColumnSpan: 2, RowSpan: 2, Content: "a"},
		{ID: "b", Column: 2, Row: 2, Content: "b"},
	})

	if len(diags) != 1 || diags[0].Kind != DiagOverlap {
		t.Fatalf("want one DiagOverlap, got %v", diags)
	}
	if diags[0].CellID != "b" {
		t.Errorf("overlap should name the later cell, got %q", diags[0].CellID)
	}
}

func TestRegistryOverlapIgnoresPlaceholders(t *testing.T) {
	reg := NewRegistry(Config{Columns: 4, Rows: 4})
	diags := reg.SetCells([]Cell{
		{ID: "a", Column: 1, Row: 1, ColumnSpan: 2, RowSpan: 2, Content: "a"},
		{ID: "ph", Column: 2, Row: 2}, // nil content
	})

	if len(diags) != 0 {
		t.Errorf("placeholders never overlap, got %v", diags)
	}
}

func TestRegistryCommit(t *testing.T) {
	cfg, cells := fourByFour()
	reg := NewRegistry(cfg)
	reg.SetCells(cells)

	if !reg.Commit("b", 3, 2) {
		t.Fatal("Commit for known id must succeed")
	}
	c, _ := reg.Get("b")
	if c.Column != 3 || c.Row != 2 {
		t.Errorf("cell b at (%d,%d), want (3,2)", c.Column, c.Row)
	}

	if reg.Commit("ghost", 1, 1) {
		t.Error("Commit for unknown id must fail")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Columns: 4, Rows: 3}, false},
		{"zero columns", Config{Columns: 0, Rows: 3}, true},
		{"negative rows", Config{Columns: 4, Rows: -1}, true},
		{"negative spacing", Config{Columns: 4, Rows: 4, Spacing: -1}, true},
		{"with spacing", Config{Columns: 4, Rows: 4, Spacing: 8}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseSizingMode(t *testing.T) {
	if m, err := ParseSizingMode(""); err != nil || m != SizingFixedAspect {
		t.Errorf("empty mode should default to fixed, got %v, %v", m, err)
	}
	if m, err := ParseSizingMode("free"); err != nil || m != SizingFree {
		t.Errorf("ParseSizingMode(free) = %v, %v", m, err)
	}
	if _, err := ParseSizingMode("squishy"); err == nil {
		t.Error("unknown mode must error")
	}
}
