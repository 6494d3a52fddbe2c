package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dineshbharati27/video-stream-app/internal/adapters/handlers/http/chi/v1/video"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, videoHandler *video.HandlerV1, maxUploadSize int64, env string) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxUploadSize))
	// No request timeout middleware: full-video streams legitimately
	// outlive any fixed deadline.

	if env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "Range", "X-Request-ID"},
			ExposedHeaders: []string{"Content-Range", "Accept-Ranges", "Content-Length"},
			MaxAge:         300,
		}))
	}

	r.Post("/upload", videoHandler.UploadVideoV1)
	r.Get("/videos", videoHandler.ListVideosV1)
	r.Get("/video/{videoID}", videoHandler.StreamVideoV1)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("api working!"))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
