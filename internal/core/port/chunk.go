package port

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// ChunkRepository is an interface to persist and fetch individual chunks,
// keyed by (videoID, sequenceNumber). Implementations must be safe for
// concurrent use; chunks are never rewritten once stored.
type ChunkRepository interface {
	Put(ctx context.Context, videoID uuid.UUID, seq int, payload []byte) error
	Get(ctx context.Context, videoID uuid.UUID, seq int) ([]byte, error)
	// ListVideoIDsOlderThan returns the ids of videos whose newest chunk was
	// stored before cutoff. Used by the orphan janitor.
	ListVideoIDsOlderThan(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
	DeleteVideo(ctx context.Context, videoID uuid.UUID) error
}

// ChunkStore splits a byte stream into fixed-size chunks on write and reads
// arbitrary byte ranges back as a lazily fetched stream.
type ChunkStore interface {
	// Write consumes r to completion, persisting sequential chunks for
	// videoID, and returns the total number of bytes written.
	Write(ctx context.Context, videoID uuid.UUID, r io.Reader) (int64, error)
	// ReadRange returns a forward-only reader over bytes [start, end]
	// inclusive. Chunks are fetched on demand in ascending sequence order.
	ReadRange(ctx context.Context, videoID uuid.UUID, start, end int64) (io.ReadCloser, error)
	// ReadAll is equivalent to ReadRange over [0, length-1].
	ReadAll(ctx context.Context, videoID uuid.UUID, length int64) (io.ReadCloser, error)
}
