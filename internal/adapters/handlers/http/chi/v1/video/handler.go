package video

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dineshbharati27/video-stream-app/internal/core/port"
)

// HandlerV1 is the handler for v1 video routes
type HandlerV1 struct {
	ingestService  port.IngestService
	streamService  port.StreamService
	catalogService port.CatalogService
	publicBaseURL  string
	logger         *slog.Logger
}

// NewVideoHandlerV1 creates HandlerV1
func NewVideoHandlerV1(ingest port.IngestService, stream port.StreamService, catalog port.CatalogService, publicBaseURL string, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		ingestService:  ingest,
		streamService:  stream,
		catalogService: catalog,
		publicBaseURL:  publicBaseURL,
		logger:         logger,
	}
}

// V1ErrorResponse is the error body shape shared by all video routes
type V1ErrorResponse struct {
	Error string `json:"error"`
}

func (h *HandlerV1) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func (h *HandlerV1) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, V1ErrorResponse{Error: message})
}
