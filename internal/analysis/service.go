// Package analysis wires the stability engine to its collaborators:
// it loads selected trial logs from storage, turns them into canonical
// records, and runs the overlap computation and SVG rendering.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/perceptlab/sensegrid/internal/models"
	"github.com/perceptlab/sensegrid/internal/stability"
	"github.com/perceptlab/sensegrid/internal/storage"
	"github.com/perceptlab/sensegrid/internal/visualization"
)

type Service struct {
	storage storage.Storage
	engine  *stability.Engine
}

type Config struct {
	// MaxCombinations is passed through to the engine; 0 keeps the
	// engine default.
	MaxCombinations int
}

func NewService(store storage.Storage, config Config) *Service {
	return &Service{
		storage: store,
		engine:  stability.NewEngine(stability.Config{MaxCombinations: config.MaxCombinations}),
	}
}

// Visualization bundles the rendered SVGs with the result that selected
// the intersection combination.
type Visualization struct {
	HeatmapSVG      string            `json:"heatmap_svg"`
	IntersectionSVG string            `json:"intersection_svg"`
	Result          *stability.Result `json:"result"`
}

// Analyze loads the referenced logs and computes overlap stability for
// size-k combinations. Filenames are stored log names; their order fixes
// the tie-break order of the computation.
func (s *Service) Analyze(ctx context.Context, filenames []string, k int) (*stability.Result, error) {
	batch, _, err := s.loadBatch(ctx, filenames, k)
	if err != nil {
		return nil, err
	}
	return s.engine.Compute(*batch)
}

// Visualize computes stability for the selection and renders the heatmap
// and best-combination intersection SVGs.
func (s *Service) Visualize(ctx context.Context, filenames []string, k int) (*Visualization, error) {
	batch, segment, err := s.loadBatch(ctx, filenames, k)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Compute(*batch)
	if err != nil {
		return nil, err
	}

	segW, segH := 1.0, 1.0
	if segment != nil {
		segW, segH = segment.W, segment.H
	}

	return &Visualization{
		HeatmapSVG:      visualization.RenderHeatmap(batch.Records, segW, segH),
		IntersectionSVG: visualization.RenderIntersection(batch.Records, result.BestCombination, segW, segH),
		Result:          result,
	}, nil
}

// loadBatch reads and parses every referenced log, preserving request
// order, and derives the unit cell area from the segment size. A log that
// cannot be loaded or parsed rejects the whole batch.
func (s *Service) loadBatch(ctx context.Context, filenames []string, k int) (*stability.Batch, *models.SegmentSize, error) {
	if len(filenames) == 0 {
		return nil, nil, stability.ErrEmptyBatch
	}

	records := make([]*stability.Record, 0, len(filenames))
	var segment *models.SegmentSize

	for i, name := range filenames {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		payload, err := s.loadPayload(name)
		if err != nil {
			return nil, nil, err
		}

		fl := payload.FeedbackLocation
		record, err := stability.NewRecord(payload.LogID, name, fl.ImagePath, fl.Coarseness,
			fl.ChosenPoints.Row, fl.ChosenPoints.Col)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, record)

		// Segment size must be uniform: it scales every area in the batch.
		if i == 0 {
			segment = fl.SegmentSizePx
			continue
		}
		if !segmentsEqual(segment, fl.SegmentSizePx) {
			return nil, nil, fmt.Errorf("%w: %q uses a different segment size than %q",
				stability.ErrIncompatibleBatch, name, filenames[0])
		}
	}

	cellArea := 0.0
	if segment != nil {
		if segment.W <= 0 || segment.H <= 0 {
			return nil, nil, fmt.Errorf("%w: %q has non-positive segment size %gx%g",
				stability.ErrMalformedLog, filenames[0], segment.W, segment.H)
		}
		cellArea = segment.W * segment.H
	}

	return &stability.Batch{Records: records, K: k, CellArea: cellArea}, segment, nil
}

func (s *Service) loadPayload(name string) (*models.LogPayload, error) {
	file, err := s.storage.OpenFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", stability.ErrLogUnavailable, name, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", stability.ErrLogUnavailable, name, err)
	}

	var payload models.LogPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", stability.ErrMalformedLog, name, err)
	}
	return &payload, nil
}

func segmentsEqual(a, b *models.SegmentSize) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.W == b.W && a.H == b.H
}
