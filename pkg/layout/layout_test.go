package layout

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/gridboard/pkg/grid"
)

func sampleLayout() *Layout {
	return &Layout{
		Name:    "ops",
		Columns: 4,
		Rows:    4,
		Cells: []Cell{
			{ID: "a", Column: 1, Row: 1, ColumnSpan: 2, RowSpan: 2, Label: "Alerts"},
			{ID: "b", Column: 4, Row: 1, Label: "Build"},
		},
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := sampleLayout()

	data, err := l.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(l, back) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", back, l)
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	l := sampleLayout()
	path := filepath.Join(t.TempDir(), "ops.json")

	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile: %v", err)
	}
	back, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if !reflect.DeepEqual(l, back) {
		t.Error("file round trip mismatch")
	}
}

func TestConfig(t *testing.T) {
	l := sampleLayout()
	cfg, err := l.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.Columns != 4 || cfg.Rows != 4 || cfg.Sizing != grid.SizingFixedAspect {
		t.Errorf("config = %+v", cfg)
	}

	l.Columns = 0
	if _, err := l.Config(); err == nil {
		t.Error("zero columns must be rejected")
	}

	l.Columns = 4
	l.Sizing = "bogus"
	if _, err := l.Config(); err == nil {
		t.Error("unknown sizing mode must be rejected")
	}
}

func TestEnsureIDs(t *testing.T) {
	l := &Layout{
		Columns: 2, Rows: 2,
		Cells: []Cell{
			{Column: 1, Row: 1, Label: "x"},
			{ID: "keep", Column: 2, Row: 2},
		},
	}
	l.EnsureIDs()

	if l.Cells[0].ID == "" {
		t.Error("missing id must be generated")
	}
	if l.Cells[1].ID != "keep" {
		t.Error("existing id must be preserved")
	}
}

func TestGridCellsAndBack(t *testing.T) {
	l := sampleLayout()
	cells := l.GridCells()

	if len(cells) != 2 {
		t.Fatalf("len = %d", len(cells))
	}
	if cells[0].Content != "Alerts" {
		t.Errorf("content = %v, want label", cells[0].Content)
	}
	if cells[1].ColumnSpan != 1 || cells[1].RowSpan != 1 {
		t.Error("spans must normalize to 1")
	}

	cfg, _ := l.Config()
	back := FromCells("ops", cfg, cells)
	if len(back.Cells) != 2 || back.Cells[0].Label != "Alerts" {
		t.Errorf("FromCells mismatch: %+v", back.Cells)
	}
}

func TestGridCellsLabelFallsBackToID(t *testing.T) {
	l := &Layout{Columns: 2, Rows: 2, Cells: []Cell{{ID: "x1", Column: 1, Row: 1}}}
	cells := l.GridCells()
	if cells[0].Content != "x1" {
		t.Errorf("unlabeled cell content = %v, want id", cells[0].Content)
	}
}
