package port

import (
	"context"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"

	"github.com/google/uuid"
)

// CatalogRepository is an interface to interact with video catalog entries.
// Entries are insert-only: there is no update or delete in scope.
type CatalogRepository interface {
	Create(ctx context.Context, video domain.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	FindAll(ctx context.Context) ([]domain.Video, error)
}

// CatalogService exposes catalog reads to the transport layer.
type CatalogService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	List(ctx context.Context) ([]domain.Video, error)
}
