package repository

import (
	"context"
	"time"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock implementation of CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

// NewMockCatalogRepository creates a new MockCatalogRepository
func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{}
}

func (m *MockCatalogRepository) Create(ctx context.Context, video domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockCatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockCatalogRepository) FindAll(ctx context.Context) ([]domain.Video, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Video), args.Error(1)
}

// MockChunkRepository is a mock implementation of ChunkRepository
type MockChunkRepository struct {
	mock.Mock
}

// NewMockChunkRepository creates a new MockChunkRepository
func NewMockChunkRepository() *MockChunkRepository {
	return &MockChunkRepository{}
}

func (m *MockChunkRepository) Put(ctx context.Context, videoID uuid.UUID, seq int, payload []byte) error {
	args := m.Called(ctx, videoID, seq, payload)
	return args.Error(0)
}

func (m *MockChunkRepository) Get(ctx context.Context, videoID uuid.UUID, seq int) ([]byte, error) {
	args := m.Called(ctx, videoID, seq)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockChunkRepository) ListVideoIDsOlderThan(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockChunkRepository) DeleteVideo(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}
