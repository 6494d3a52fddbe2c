package stream

import (
	"context"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStreamService is a mock implementation of StreamService
type MockStreamService struct {
	mock.Mock
}

// NewMockStreamService creates a new MockStreamService
func NewMockStreamService() *MockStreamService {
	return &MockStreamService{}
}

func (m *MockStreamService) Serve(ctx context.Context, videoID uuid.UUID, rangeHeader string) (*domain.VideoStream, error) {
	args := m.Called(ctx, videoID, rangeHeader)
	return args.Get(0).(*domain.VideoStream), args.Error(1)
}
