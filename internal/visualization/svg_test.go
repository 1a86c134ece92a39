package visualization

import (
	"strings"
	"testing"

	"github.com/perceptlab/sensegrid/internal/stability"
)

func record(t *testing.T, filename string, rows, cols []int) *stability.Record {
	t.Helper()

	r, err := stability.NewRecord("trial", filename, "images/arm.svg", 8, rows, cols)
	if err != nil {
		t.Fatalf("Failed to build record: %v", err)
	}
	return r
}

func TestRenderHeatmap_Empty(t *testing.T) {
	if got := RenderHeatmap(nil, 1, 1); got != emptySVG {
		t.Errorf("Expected empty SVG, got %s", got)
	}

	empty := record(t, "a.json", nil, nil)
	if got := RenderHeatmap([]*stability.Record{empty}, 1, 1); got != emptySVG {
		t.Errorf("Expected empty SVG for empty cell sets, got %s", got)
	}
}

func TestRenderHeatmap_ShadesByCount(t *testing.T) {
	records := []*stability.Record{
		record(t, "a.json", []int{0, 0}, []int{0, 1}),
		record(t, "b.json", []int{0}, []int{0}),
	}

	svg := RenderHeatmap(records, 10, 10)

	if count := strings.Count(svg, "<rect"); count != 2 {
		t.Errorf("Expected 2 cells, got %d", count)
	}
	// Cell (0,0) is marked by both records and renders darkest.
	if !strings.Contains(svg, "rgb(33,150,243)") {
		t.Errorf("Expected a full-intensity cell in %s", svg)
	}
	if !strings.Contains(svg, `viewBox="0 0 20 10"`) {
		t.Errorf("Expected 2x1 cell viewport, got %s", svg)
	}
}

func TestRenderHeatmap_Deterministic(t *testing.T) {
	records := []*stability.Record{
		record(t, "a.json", []int{0, 1, 2, 3}, []int{3, 2, 1, 0}),
	}

	first := RenderHeatmap(records, 5, 5)
	for i := 0; i < 5; i++ {
		if got := RenderHeatmap(records, 5, 5); got != first {
			t.Fatal("Heatmap output is not deterministic")
		}
	}
}

func TestRenderIntersection_BestCombination(t *testing.T) {
	records := []*stability.Record{
		record(t, "a.json", []int{0, 0, 1}, []int{0, 1, 1}),
		record(t, "b.json", []int{0, 1}, []int{0, 1}),
		record(t, "c.json", []int{3}, []int{3}),
	}

	// Only a and b participate; their shared cells are (0,0) and (1,1).
	svg := RenderIntersection(records, []string{"a.json", "b.json"}, 10, 10)

	if count := strings.Count(svg, "<rect"); count != 2 {
		t.Errorf("Expected 2 intersection cells, got %d in %s", count, svg)
	}
	if !strings.Contains(svg, "steelblue") {
		t.Errorf("Expected steelblue fill, got %s", svg)
	}
}

func TestRenderIntersection_AllRecordsWhenNoCombination(t *testing.T) {
	records := []*stability.Record{
		record(t, "a.json", []int{0, 1}, []int{0, 1}),
		record(t, "b.json", []int{0}, []int{0}),
	}

	svg := RenderIntersection(records, nil, 1, 1)
	if count := strings.Count(svg, "<rect"); count != 1 {
		t.Errorf("Expected 1 shared cell, got %d", count)
	}
}

func TestRenderIntersection_Empty(t *testing.T) {
	if got := RenderIntersection(nil, nil, 1, 1); got != emptySVG {
		t.Errorf("Expected empty SVG, got %s", got)
	}
}
