package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", PingHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/save-feedback", app.SaveFeedbackHandler)
		r.Get("/logs", app.ListLogsHandler)
		r.Post("/analyze", app.AnalyzeHandler)
		r.Post("/visualize", app.VisualizeHandler)
		r.Post("/upload-image", app.UploadImageHandler)
		r.Get("/images", app.ListImagesHandler)
	})

	r.Get("/images/{name}", app.ServeImageHandler)

	fileServer := http.FileServer(http.Dir("./web/static"))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Single-page frontend: unknown non-API paths fall back to index.html.
	r.NotFound(app.SPAHandler)

	return r
}
