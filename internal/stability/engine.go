package stability

import (
	"fmt"
)

const defaultMaxCombinations = 200000

// Batch is one analysis request: the selected records in request order,
// the combination size k, and the physical area of one grid cell.
// CellArea 0 means unit cells (area counted in cells).
type Batch struct {
	Records  []*Record
	K        int
	CellArea float64
}

// Result is the outcome of one stability computation.
type Result struct {
	StabilityScore    float64  `json:"stability_score"`
	StableOverlapArea float64  `json:"stable_overlap_area"`
	BestDayArea       float64  `json:"best_day_area"`
	MaxAreaFile       string   `json:"max_area_file"`
	BestCombination   []string `json:"best_combination"`
}

// Engine computes trial overlap stability. It is stateless apart from
// configuration and safe for concurrent use.
type Engine struct {
	maxCombinations int
}

// Config tunes the engine.
type Config struct {
	// MaxCombinations rejects batches whose C(n, k) exceeds it.
	// 0 selects the default; negative disables the ceiling.
	MaxCombinations int
}

func NewEngine(config Config) *Engine {
	if config.MaxCombinations == 0 {
		config.MaxCombinations = defaultMaxCombinations
	}
	if config.MaxCombinations < 0 {
		config.MaxCombinations = 0
	}
	return &Engine{maxCombinations: config.MaxCombinations}
}

// Compute finds the size-k subset of the batch with the largest cell-set
// intersection and expresses its area relative to the largest individual
// record's area. Ties keep the first candidate: the first record in batch
// order for the best day, the first subset in enumeration order for the
// best combination.
func (e *Engine) Compute(batch Batch) (*Result, error) {
	if err := e.validate(batch); err != nil {
		return nil, err
	}

	cellArea := batch.CellArea
	if cellArea == 0 {
		cellArea = 1
	}

	bestDayArea := 0.0
	maxAreaFile := batch.Records[0].Filename
	for _, r := range batch.Records {
		if area := areaOf(r, cellArea); area > bestDayArea {
			bestDayArea = area
			maxAreaFile = r.Filename
		}
	}

	stableOverlap := -1.0
	var bestIdx []int
	err := forEachCombination(len(batch.Records), batch.K, func(idx []int) bool {
		if area := overlapArea(batch.Records, idx, cellArea); area > stableOverlap {
			stableOverlap = area
			bestIdx = append(bestIdx[:0], idx...)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	if bestDayArea == 0 {
		// No record marked anything; stability has no reference area.
		return &Result{
			StabilityScore:    0,
			StableOverlapArea: 0,
			BestDayArea:       0,
			MaxAreaFile:       maxAreaFile,
			BestCombination:   []string{},
		}, nil
	}

	// Combination indices are ascending, so this is batch input order.
	combination := make([]string, len(bestIdx))
	for i, j := range bestIdx {
		combination[i] = batch.Records[j].Filename
	}

	return &Result{
		StabilityScore:    stableOverlap / bestDayArea,
		StableOverlapArea: stableOverlap,
		BestDayArea:       bestDayArea,
		MaxAreaFile:       maxAreaFile,
		BestCombination:   combination,
	}, nil
}

func (e *Engine) validate(batch Batch) error {
	n := len(batch.Records)
	if n == 0 {
		return ErrEmptyBatch
	}
	if batch.K < 1 || batch.K > n {
		return fmt.Errorf("%w: k=%d with %d logs", ErrBadSubsetSize, batch.K, n)
	}
	if batch.CellArea < 0 {
		return fmt.Errorf("%w: negative cell area %g", ErrMalformedLog, batch.CellArea)
	}

	first := batch.Records[0]
	for _, r := range batch.Records[1:] {
		if r.ImagePath != first.ImagePath {
			return fmt.Errorf("%w: %q was marked on image %q but %q on %q",
				ErrIncompatibleBatch, first.Filename, first.ImagePath, r.Filename, r.ImagePath)
		}
		if r.Coarseness != first.Coarseness {
			return fmt.Errorf("%w: %q uses coarseness %d but %q uses %d",
				ErrIncompatibleBatch, first.Filename, first.Coarseness, r.Filename, r.Coarseness)
		}
	}

	if e.maxCombinations > 0 {
		if count := combinationCount(n, batch.K, e.maxCombinations); count > e.maxCombinations {
			return fmt.Errorf("%w: C(%d,%d) exceeds the limit of %d",
				ErrTooManyCombinations, n, batch.K, e.maxCombinations)
		}
	}

	return nil
}

// areaOf is the area of one record's marked region.
func areaOf(r *Record, cellArea float64) float64 {
	return float64(r.CellCount()) * cellArea
}

// overlapArea is the area of the cells common to every record selected
// by idx. idx is never empty (the enumerator guarantees k >= 1).
func overlapArea(records []*Record, idx []int, cellArea float64) float64 {
	base := records[idx[0]]
	rest := idx[1:]

	count := 0
	for c := range base.cells {
		shared := true
		for _, j := range rest {
			if !records[j].Contains(c) {
				shared = false
				break
			}
		}
		if shared {
			count++
		}
	}
	return float64(count) * cellArea
}
