package port

import (
	"context"

	"github.com/google/uuid"
)

// IngestService turns a raw upload into a durable, catalog-visible video.
type IngestService interface {
	// Ingest chunks the payload, publishes the catalog entry once every
	// chunk is stored, and returns the freshly assigned video id.
	Ingest(ctx context.Context, title string, payload []byte, contentType string) (uuid.UUID, error)
}
