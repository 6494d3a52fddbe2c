package catalog

import (
	"context"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"
	"github.com/dineshbharati27/video-stream-app/internal/core/port"

	"github.com/google/uuid"
)

type catalogService struct {
	catalog port.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo port.CatalogRepository) port.CatalogService {
	return &catalogService{catalog: repo}
}

func (s *catalogService) Get(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	return s.catalog.FindByID(ctx, id)
}

// List returns every published video in store order. Callers must not
// assume chronological ordering.
func (s *catalogService) List(ctx context.Context) ([]domain.Video, error) {
	return s.catalog.FindAll(ctx)
}
