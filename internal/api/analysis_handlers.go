package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/perceptlab/sensegrid/internal/stability"
)

type analyzeRequest struct {
	Filenames []string `json:"filenames"`
	K         int      `json:"k"`
}

type analyzeResponse struct {
	Status string `json:"status"`
	*stability.Result
}

// AnalyzeHandler runs the trial overlap stability computation over the
// selected logs. Input-shape problems come back as 400 with a reason;
// the computation never returns a partial result.
func (app *App) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.writeError(w, http.StatusBadRequest, "Invalid analysis request")
		return
	}

	result, err := app.Analysis.Analyze(r.Context(), req.Filenames, req.K)
	if err != nil {
		app.writeAnalysisError(w, err)
		return
	}

	app.writeJSON(w, http.StatusOK, analyzeResponse{Status: "ok", Result: result})
}

type visualizeResponse struct {
	Status          string            `json:"status"`
	HeatmapSVG      string            `json:"heatmap_svg"`
	IntersectionSVG string            `json:"intersection_svg"`
	Result          *stability.Result `json:"result"`
}

// VisualizeHandler renders the heatmap and best-combination intersection
// SVGs for the selected logs.
func (app *App) VisualizeHandler(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.writeError(w, http.StatusBadRequest, "Invalid visualization request")
		return
	}

	viz, err := app.Analysis.Visualize(r.Context(), req.Filenames, req.K)
	if err != nil {
		app.writeAnalysisError(w, err)
		return
	}

	app.writeJSON(w, http.StatusOK, visualizeResponse{
		Status:          "ok",
		HeatmapSVG:      viz.HeatmapSVG,
		IntersectionSVG: viz.IntersectionSVG,
		Result:          viz.Result,
	})
}

func (app *App) writeAnalysisError(w http.ResponseWriter, err error) {
	if stability.IsValidationError(err) {
		app.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("Analysis failed: %v", err)
	app.writeError(w, http.StatusInternalServerError, "Analysis failed")
}
