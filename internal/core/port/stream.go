package port

import (
	"context"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"

	"github.com/google/uuid"
)

// StreamService resolves a download request, full or ranged, against the
// catalog and hands back a stream over the stored chunks.
type StreamService interface {
	// Serve returns a full stream when rangeHeader is empty, otherwise a
	// partial stream starting at the requested offset and capped at the
	// server-side span. The caller owns closing the stream body.
	Serve(ctx context.Context, videoID uuid.UUID, rangeHeader string) (*domain.VideoStream, error)
}
