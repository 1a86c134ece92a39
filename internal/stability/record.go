package stability

import (
	"fmt"
)

// Cell is one discrete grid square of a marked image.
type Cell struct {
	Row int
	Col int
}

// Record is the canonical, immutable form of one exported trial log:
// the set of grid cells the user marked, plus the identity of the image
// and grid resolution the marking was made against.
type Record struct {
	LogID      string
	Filename   string
	ImagePath  string
	Coarseness int

	cells map[Cell]struct{}
}

// NewRecord builds a Record from the parallel row/col coordinate lists of
// the persisted log shape. Duplicate coordinates collapse; any coordinate
// outside [0, coarseness) rejects the record.
func NewRecord(logID, filename, imagePath string, coarseness int, rows, cols []int) (*Record, error) {
	if coarseness < 1 {
		return nil, fmt.Errorf("%w: log %q has invalid coarseness %d", ErrMalformedLog, filename, coarseness)
	}
	if len(rows) != len(cols) {
		return nil, fmt.Errorf("%w: log %q has %d row coordinates but %d col coordinates",
			ErrMalformedLog, filename, len(rows), len(cols))
	}

	cells := make(map[Cell]struct{}, len(rows))
	for i := range rows {
		c := Cell{Row: rows[i], Col: cols[i]}
		if c.Row < 0 || c.Row >= coarseness || c.Col < 0 || c.Col >= coarseness {
			return nil, fmt.Errorf("%w: log %q cell (%d,%d) outside grid of coarseness %d",
				ErrMalformedLog, filename, c.Row, c.Col, coarseness)
		}
		cells[c] = struct{}{}
	}

	return &Record{
		LogID:      logID,
		Filename:   filename,
		ImagePath:  imagePath,
		Coarseness: coarseness,
		cells:      cells,
	}, nil
}

// CellCount returns the number of distinct marked cells.
func (r *Record) CellCount() int {
	return len(r.cells)
}

// Contains reports whether the record marks the given cell.
func (r *Record) Contains(c Cell) bool {
	_, ok := r.cells[c]
	return ok
}

// Cells returns a copy of the marked cells. Order is unspecified.
func (r *Record) Cells() []Cell {
	out := make([]Cell, 0, len(r.cells))
	for c := range r.cells {
		out = append(out, c)
	}
	return out
}
