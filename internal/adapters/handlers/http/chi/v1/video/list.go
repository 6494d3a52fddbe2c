package video

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// V1VideoResponse is one catalog entry in the listing response
type V1VideoResponse struct {
	ID          uuid.UUID `json:"_id"`
	Filename    string    `json:"filename"`
	Length      int64     `json:"length"`
	ContentType string    `json:"contentType"`
	UploadDate  time.Time `json:"uploadDate"`
	VideoURL    string    `json:"videoUrl"`
}

// ListVideosV1 returns every published video. An empty catalog is a 404,
// matching the behavior clients of this API already depend on.
func (h *HandlerV1) ListVideosV1(w http.ResponseWriter, r *http.Request) {

	videos, err := h.catalogService.List(r.Context())
	if err != nil {
		h.logger.Error("error listing videos", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to list videos")
		return
	}

	if len(videos) == 0 {
		h.respondError(w, http.StatusNotFound, "No videos found")
		return
	}

	resp := make([]V1VideoResponse, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, V1VideoResponse{
			ID:          v.ID,
			Filename:    v.Title,
			Length:      v.Length,
			ContentType: v.ContentType,
			UploadDate:  v.CreatedAt,
			VideoURL:    fmt.Sprintf("%s/video/%s", h.publicBaseURL, v.ID),
		})
	}

	h.respondJSON(w, http.StatusOK, resp)
}
