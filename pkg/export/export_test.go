package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/gridboard/pkg/layout"
)

func testLayout() *layout.Layout {
	return &layout.Layout{
		Name:    "ops",
		Columns: 4,
		Rows:    4,
		Spacing: 8,
		Cells: []layout.Cell{
			{ID: "a", Column: 1, Row: 1, ColumnSpan: 2, RowSpan: 2, Label: "Alerts"},
			{ID: "b", Column: 4, Row: 1, Label: "Build"},
		},
	}
}

func TestRenderSVG(t *testing.T) {
	data, err := RenderSVG(testLayout())
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	svg := string(data)

	if !strings.HasPrefix(svg, "<svg xmlns=") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output is not a standalone SVG document")
	}
	for _, want := range []string{"Alerts", "Build"} {
		if !strings.Contains(svg, want) {
			t.Errorf("missing label %q", want)
		}
	}

	// 16 positions, 5 covered by cells: 11 placeholder tiles plus the
	// background and two cell rects.
	if got := strings.Count(svg, "<rect"); got != 14 {
		t.Errorf("rect count = %d, want 14", got)
	}
}

func TestRenderSVGWithoutLabels(t *testing.T) {
	data, err := RenderSVG(testLayout(), WithoutLabels())
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if strings.Contains(string(data), "<text") {
		t.Error("labels rendered despite WithoutLabels")
	}
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	l := testLayout()
	l.Cells[1].Label = `<script>"x"</script>`
	data, err := RenderSVG(l)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if strings.Contains(string(data), "<script>") {
		t.Error("label markup not escaped")
	}
}

func TestRenderSVGRejectsInvalidLayout(t *testing.T) {
	l := testLayout()
	l.Columns = 0
	if _, err := RenderSVG(l); err == nil {
		t.Error("invalid layout must be rejected")
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testLayout(), WithCellSize(32))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output is not a PNG")
	}
}

func TestRenderPNGRejectsInvalidLayout(t *testing.T) {
	l := testLayout()
	l.Rows = -1
	if _, err := RenderPNG(l); err == nil {
		t.Error("invalid layout must be rejected")
	}
}
