package port

import (
	"context"
	"time"
)

// CleanupService removes chunk sets that never got a catalog entry,
// typically left behind by an ingest that failed after writing chunks.
type CleanupService interface {
	CleanupOrphanedChunks(ctx context.Context, olderThan time.Time) error
}
