package video

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// StreamVideoV1 streams a video body, either whole (200) or as a
// server-capped partial range (206). Once headers are written the stream
// cannot be rewound; a store failure mid-body aborts the connection.
func (h *HandlerV1) StreamVideoV1(w http.ResponseWriter, r *http.Request) {

	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		h.respondError(w, http.StatusNotFound, "Video not found")
		return
	}

	vs, err := h.streamService.Serve(r.Context(), videoID, r.Header.Get("Range"))
	switch {
	case errors.Is(err, domain.ErrVideoNotFound):
		h.respondError(w, http.StatusNotFound, "Video not found")
		return
	case errors.Is(err, domain.ErrMalformedRange), errors.Is(err, domain.ErrUnsatisfiableRange):
		h.respondError(w, http.StatusRequestedRangeNotSatisfiable, "Range not satisfiable")
		return
	case err != nil:
		h.logger.Error("error resolving stream", "video_id", videoID, "error", err)
		h.respondError(w, http.StatusInternalServerError, "Error streaming video")
		return
	}
	defer vs.Body.Close()

	w.Header().Set("Content-Type", vs.Video.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(vs.ContentLength(), 10))

	if vs.Partial {
		w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", vs.Start, vs.End, vs.Video.Length))
		w.Header().Set("Accept-Ranges", "bytes")
		w.WriteHeader(http.StatusPartialContent)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	if _, err := io.Copy(w, vs.Body); err != nil {
		// Headers are committed; nothing left to do but drop the connection.
		h.logger.Error("stream aborted", "video_id", videoID, "error", err)
	}
}
