// Package visualization renders trial logs as standalone SVG documents:
// a heatmap shading each cell by how many trials marked it, and an
// intersection view of the cells shared by every member of a combination.
package visualization

import (
	"fmt"
	"sort"
	"strings"

	"github.com/perceptlab/sensegrid/internal/stability"
)

const emptySVG = `<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"/>`

// RenderHeatmap colors each marked cell by the number of records that
// selected it, from light to dark blue. Cell geometry comes from the
// segment size; the viewport is the bounding box of all marked cells.
func RenderHeatmap(records []*stability.Record, segW, segH float64) string {
	if len(records) == 0 {
		return emptySVG
	}

	counts := countPerCell(records)
	if len(counts) == 0 {
		return emptySVG
	}

	maxCount := 0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}

	minR, maxR, minC, maxC := boundingBox(counts)

	var rects []string
	for _, c := range sortedCells(counts) {
		t := float64(counts[c]) / float64(maxCount)
		x := float64(c.Col-minC) * segW
		y := float64(c.Row-minR) * segH
		rects = append(rects, fmt.Sprintf(
			`<rect x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="#333" stroke-width="0.5"/>`,
			x, y, segW, segH, interpolateBlue(t)))
	}

	return document(rects, float64(maxC-minC+1)*segW, float64(maxR-minR+1)*segH)
}

// RenderIntersection draws only the cells marked in every record of the
// given combination (all records when the combination is empty).
func RenderIntersection(records []*stability.Record, combination []string, segW, segH float64) string {
	if len(records) == 0 {
		return emptySVG
	}

	selected := records
	if len(combination) > 0 {
		byName := make(map[string]*stability.Record, len(records))
		for _, r := range records {
			byName[r.Filename] = r
		}
		selected = nil
		for _, name := range combination {
			if r, ok := byName[name]; ok {
				selected = append(selected, r)
			}
		}
		if len(selected) == 0 {
			return emptySVG
		}
	}

	inter := make(map[stability.Cell]int)
	for _, c := range selected[0].Cells() {
		shared := true
		for _, r := range selected[1:] {
			if !r.Contains(c) {
				shared = false
				break
			}
		}
		if shared {
			inter[c] = 1
		}
	}

	// Viewport matches the heatmap so the two render at the same scale.
	counts := countPerCell(records)
	if len(counts) == 0 {
		return emptySVG
	}
	minR, maxR, minC, maxC := boundingBox(counts)

	var rects []string
	for _, c := range sortedCells(inter) {
		x := float64(c.Col-minC) * segW
		y := float64(c.Row-minR) * segH
		rects = append(rects, fmt.Sprintf(
			`<rect x="%g" y="%g" width="%g" height="%g" fill="steelblue" stroke="#1a5276" stroke-width="0.5"/>`,
			x, y, segW, segH))
	}

	return document(rects, float64(maxC-minC+1)*segW, float64(maxR-minR+1)*segH)
}

func countPerCell(records []*stability.Record) map[stability.Cell]int {
	counts := make(map[stability.Cell]int)
	for _, r := range records {
		for _, c := range r.Cells() {
			counts[c]++
		}
	}
	return counts
}

func boundingBox(counts map[stability.Cell]int) (minR, maxR, minC, maxC int) {
	first := true
	for c := range counts {
		if first {
			minR, maxR, minC, maxC = c.Row, c.Row, c.Col, c.Col
			first = false
			continue
		}
		if c.Row < minR {
			minR = c.Row
		}
		if c.Row > maxR {
			maxR = c.Row
		}
		if c.Col < minC {
			minC = c.Col
		}
		if c.Col > maxC {
			maxC = c.Col
		}
	}
	return minR, maxR, minC, maxC
}

func sortedCells(m map[stability.Cell]int) []stability.Cell {
	cells := make([]stability.Cell, 0, len(m))
	for c := range m {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// interpolateBlue maps t in [0,1] from light blue to dark blue.
func interpolateBlue(t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r := int(240*(1-t) + 33*t)
	g := int(248*(1-t) + 150*t)
	b := int(255*(1-t) + 243*t)
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

func document(rects []string, width, height float64) string {
	return fmt.Sprintf(
		`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g" width="%g" height="%g"><g>%s</g></svg>`,
		width, height, width, height, strings.Join(rects, "\n"))
}
