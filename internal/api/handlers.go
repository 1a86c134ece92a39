package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/perceptlab/sensegrid/internal/analysis"
	"github.com/perceptlab/sensegrid/internal/database"
	"github.com/perceptlab/sensegrid/internal/models"
	"github.com/perceptlab/sensegrid/internal/storage"
)

// exportTimeFormat is the timestamp embedded in stored log filenames.
const exportTimeFormat = "20060102_150405"

type App struct {
	LogStorage    storage.Storage
	ImageStorage  storage.Storage
	DB            *database.DB
	LogRepo       *database.LogRepository
	Analysis      *analysis.Service
	MaxUploadSize int64
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

// SaveFeedbackHandler persists an exported trial log: the JSON body is
// written to log storage under a timestamped name and indexed in the
// database.
func (app *App) SaveFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var payload models.LogPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		app.writeError(w, http.StatusBadRequest, "Invalid log payload")
		return
	}

	if payload.LogID == "" || payload.Filename == "" {
		app.writeError(w, http.StatusBadRequest, "log_id and filename are required")
		return
	}

	timestamp := time.Now().Format(exportTimeFormat)
	payload.FeedbackLocation.ExportedAt = timestamp
	storedName := storedLogName(payload.LogID, payload.Filename, timestamp)

	data, err := json.MarshalIndent(&payload, "", "  ")
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, "Failed to encode log")
		return
	}

	if err := app.LogStorage.SaveJSON(storedName, data); err != nil {
		log.Printf("Failed to save log %s: %v", storedName, err)
		app.writeError(w, http.StatusInternalServerError, "Failed to save log")
		return
	}

	cellCount := distinctCellCount(payload.FeedbackLocation.ChosenPoints)
	logEntry := models.NewFeedbackLog(
		payload.LogID,
		payload.Filename,
		storedName,
		payload.FeedbackLocation.ImagePath,
		payload.FeedbackLocation.Coarseness,
		cellCount,
		timestamp,
	)
	if err := app.LogRepo.InsertLog(r.Context(), logEntry); err != nil {
		app.LogStorage.DeleteFile(storedName)
		log.Printf("Failed to index log %s: %v", storedName, err)
		app.writeError(w, http.StatusInternalServerError, "Failed to save log information")
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]string{
		"status":   "success",
		"filename": storedName,
	})
}

type logListItem struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
	LogID    string `json:"log_id"`
}

func (app *App) ListLogsHandler(w http.ResponseWriter, r *http.Request) {
	logs, err := app.LogRepo.SearchLogs(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("Failed to list logs: %v", err)
		app.writeError(w, http.StatusInternalServerError, "Failed to list logs")
		return
	}

	items := make([]logListItem, 0, len(logs))
	for _, entry := range logs {
		items = append(items, logListItem{
			Path:     entry.StoredName,
			Filename: entry.Filename,
			LogID:    entry.LogID,
		})
	}

	app.writeJSON(w, http.StatusOK, items)
}

func (app *App) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, app.MaxUploadSize)

	if err := r.ParseMultipartForm(app.MaxUploadSize); err != nil {
		app.writeError(w, http.StatusBadRequest, "File too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		app.writeError(w, http.StatusBadRequest, "Failed to get file")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".svg", ".png", ".jpg", ".jpeg":
	default:
		app.writeError(w, http.StatusBadRequest, "Only SVG, PNG and JPEG images are allowed")
		return
	}

	filename, err := app.ImageStorage.SaveFile(file, storage.FileInfo{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	})
	if err != nil {
		log.Printf("Failed to save image: %v", err)
		app.writeError(w, http.StatusInternalServerError, "Failed to save file")
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]string{
		"status":   "success",
		"filename": filename,
	})
}

func (app *App) ListImagesHandler(w http.ResponseWriter, r *http.Request) {
	var names []string
	for _, ext := range []string{".svg", ".png", ".jpg", ".jpeg"} {
		files, err := app.ImageStorage.ListFiles(ext)
		if err != nil {
			log.Printf("Failed to list images: %v", err)
			app.writeError(w, http.StatusInternalServerError, "Failed to list images")
			return
		}
		names = append(names, files...)
	}
	if names == nil {
		names = []string{}
	}

	app.writeJSON(w, http.StatusOK, names)
}

func (app *App) ServeImageHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		http.NotFound(w, r)
		return
	}

	file, err := app.ImageStorage.OpenFile(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	stat, err := file.(interface{ Stat() (os.FileInfo, error) }).Stat()
	if err != nil {
		http.Error(w, "Error accessing image file", http.StatusInternalServerError)
		return
	}

	http.ServeContent(w, r, name, stat.ModTime(), file)
}

// SPAHandler serves the frontend index for any path the router does not
// know, so client-side routes deep-link correctly. API paths still 404.
func (app *App) SPAHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		app.writeError(w, http.StatusNotFound, "Not found")
		return
	}

	indexPath := filepath.Join("web", "static", "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		app.writeError(w, http.StatusNotFound, "Frontend not built")
		return
	}
	http.ServeFile(w, r, indexPath)
}

func (app *App) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (app *App) writeError(w http.ResponseWriter, status int, message string) {
	app.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// storedLogName builds the on-disk name of an exported log:
// <log_id>_<filename with .svg collapsed>_<timestamp>.json
func storedLogName(logID, filename, timestamp string) string {
	base := strings.ReplaceAll(filename, ".svg", "_svg")
	return fmt.Sprintf("%s_%s_%s.json", logID, base, timestamp)
}

func distinctCellCount(points models.ChosenPoints) int {
	n := len(points.Row)
	if len(points.Col) < n {
		n = len(points.Col)
	}
	seen := make(map[[2]int]struct{}, n)
	for i := 0; i < n; i++ {
		seen[[2]int{points.Row[i], points.Col[i]}] = struct{}{}
	}
	return len(seen)
}
