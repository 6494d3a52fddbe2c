package cleanup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"
	"github.com/dineshbharati27/video-stream-app/internal/core/port"
)

type cleanupService struct {
	catalog port.CatalogRepository
	chunks  port.ChunkRepository
	logger  *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(catalog port.CatalogRepository, chunks port.ChunkRepository, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		catalog: catalog,
		chunks:  chunks,
		logger:  logger,
	}
}

// CleanupOrphanedChunks deletes chunk sets with no catalog entry. Only
// videos whose newest chunk is older than the cutoff are considered, so an
// ingest still writing its chunks is never mistaken for an orphan.
func (c *cleanupService) CleanupOrphanedChunks(ctx context.Context, olderThan time.Time) error {

	ids, err := c.chunks.ListVideoIDsOlderThan(ctx, olderThan)
	if err != nil {
		return err
	}

	for _, id := range ids {
		_, findErr := c.catalog.FindByID(ctx, id)
		if findErr == nil {
			continue
		}
		if !errors.Is(findErr, domain.ErrVideoNotFound) {
			c.logger.Error("failed to check catalog entry", "video_id", id, "error", findErr)
			continue
		}

		if delErr := c.chunks.DeleteVideo(ctx, id); delErr != nil {
			c.logger.Error("failed to delete orphaned chunks", "video_id", id, "error", delErr)
			continue
		}
		c.logger.Info("deleted orphaned chunks", "video_id", id)
	}

	return nil
}
