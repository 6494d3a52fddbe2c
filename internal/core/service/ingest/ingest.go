package ingest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"
	"github.com/dineshbharati27/video-stream-app/internal/core/port"

	"github.com/google/uuid"
)

type ingestService struct {
	catalog port.CatalogRepository
	store   port.ChunkStore
	events  port.EventPublisher
	logger  *slog.Logger
}

// NewIngestService creates a new ingest service
func NewIngestService(catalog port.CatalogRepository, store port.ChunkStore, events port.EventPublisher, logger *slog.Logger) port.IngestService {
	return &ingestService{
		catalog: catalog,
		store:   store,
		events:  events,
		logger:  logger,
	}
}

// Ingest validates the upload, writes every chunk, then publishes the catalog
// entry. The entry is written last so no reader can observe a video whose
// chunks are not yet durable. Chunks left behind by a failed publish are
// reclaimed by the cleanup service, not here.
func (s *ingestService) Ingest(ctx context.Context, title string, payload []byte, contentType string) (uuid.UUID, error) {

	if strings.TrimSpace(title) == "" {
		return uuid.Nil, domain.ErrEmptyTitle
	}
	if len(payload) == 0 {
		return uuid.Nil, domain.ErrEmptyPayload
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	videoID := uuid.New()

	length, err := s.store.Write(ctx, videoID, bytes.NewReader(payload))
	if err != nil {
		return uuid.Nil, fmt.Errorf("writing chunks for %s: %w", videoID, err)
	}

	video := domain.Video{
		ID:          videoID,
		Title:       title,
		Length:      length,
		ContentType: contentType,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.catalog.Create(ctx, video); err != nil {
		return uuid.Nil, fmt.Errorf("publishing catalog entry for %s: %w", videoID, err)
	}

	event := domain.VideoIngested{
		VideoID:     videoID,
		Title:       title,
		Length:      length,
		ContentType: contentType,
		IngestedAt:  video.CreatedAt,
	}
	if err := s.events.PublishVideoIngested(ctx, event); err != nil {
		// The video is already durable and visible; losing the event is
		// acceptable, losing the ingest is not.
		s.logger.Warn("failed to publish ingest event", "video_id", videoID, "error", err)
	}

	s.logger.Info("video ingested", "video_id", videoID, "length", length, "content_type", contentType)
	return videoID, nil
}
