package stability

import (
	"errors"
	"testing"
)

func TestNewRecord_CollapsesDuplicates(t *testing.T) {
	r, err := NewRecord("trial", "a.json", "body/arm.svg", 4,
		[]int{0, 0, 1, 0}, []int{0, 1, 1, 0})
	if err != nil {
		t.Fatalf("NewRecord failed: %v", err)
	}

	if r.CellCount() != 3 {
		t.Errorf("Expected 3 distinct cells, got %d", r.CellCount())
	}
	if !r.Contains(Cell{Row: 0, Col: 1}) {
		t.Error("Expected record to contain (0,1)")
	}
	if r.Contains(Cell{Row: 3, Col: 3}) {
		t.Error("Did not expect record to contain (3,3)")
	}
}

func TestNewRecord_RejectsOutOfRangeCells(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols []int
	}{
		{"row too large", []int{4}, []int{0}},
		{"col too large", []int{0}, []int{4}},
		{"negative row", []int{-1}, []int{0}},
		{"negative col", []int{0}, []int{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecord("trial", "a.json", "body/arm.svg", 4, tt.rows, tt.cols)
			if !errors.Is(err, ErrMalformedLog) {
				t.Errorf("Expected ErrMalformedLog, got %v", err)
			}
		})
	}
}

func TestNewRecord_RejectsUnevenCoordinateLists(t *testing.T) {
	_, err := NewRecord("trial", "a.json", "body/arm.svg", 4, []int{0, 1}, []int{0})
	if !errors.Is(err, ErrMalformedLog) {
		t.Errorf("Expected ErrMalformedLog, got %v", err)
	}
}

func TestNewRecord_RejectsInvalidCoarseness(t *testing.T) {
	for _, coarseness := range []int{0, -3} {
		_, err := NewRecord("trial", "a.json", "body/arm.svg", coarseness, nil, nil)
		if !errors.Is(err, ErrMalformedLog) {
			t.Errorf("Expected ErrMalformedLog for coarseness %d, got %v", coarseness, err)
		}
	}
}

func TestRecord_CellsReturnsCopy(t *testing.T) {
	r, err := NewRecord("trial", "a.json", "body/arm.svg", 4, []int{0}, []int{0})
	if err != nil {
		t.Fatalf("NewRecord failed: %v", err)
	}

	cells := r.Cells()
	cells[0] = Cell{Row: 3, Col: 3}

	if !r.Contains(Cell{Row: 0, Col: 0}) || r.Contains(Cell{Row: 3, Col: 3}) {
		t.Error("Mutating the returned slice changed the record")
	}
}
