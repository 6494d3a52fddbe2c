package video

import (
	"errors"
	"io"
	"net/http"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"

	"github.com/google/uuid"
)

// maxMultipartMemory bounds how much of the form is held in memory before
// multipart spills to temp files. The payload itself is still read fully
// into memory before chunking.
const maxMultipartMemory = 32 << 20

// V1UploadResponse is the response to a successful upload
type V1UploadResponse struct {
	Message string    `json:"message"`
	FileID  uuid.UUID `json:"fileId"`
}

// UploadVideoV1 accepts a multipart form with a title field and a video
// file, buffers the whole payload, and hands it to the ingest pipeline.
func (h *HandlerV1) UploadVideoV1(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		h.respondError(w, http.StatusBadRequest, "Title and video file are required!")
		return
	}

	title := r.FormValue("title")
	file, header, err := r.FormFile("video")
	if title == "" || err != nil {
		h.respondError(w, http.StatusBadRequest, "Title and video file are required!")
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("error reading upload body", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to upload video")
		return
	}

	videoID, err := h.ingestService.Ingest(r.Context(), title, payload, header.Header.Get("Content-Type"))
	switch {
	case errors.Is(err, domain.ErrEmptyTitle), errors.Is(err, domain.ErrEmptyPayload):
		h.respondError(w, http.StatusBadRequest, "Title and video file are required!")
		return
	case err != nil:
		h.logger.Error("error ingesting video", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to upload video")
		return
	default:
		h.respondJSON(w, http.StatusOK, V1UploadResponse{
			Message: "Video uploaded successfully!",
			FileID:  videoID,
		})
	}
}
