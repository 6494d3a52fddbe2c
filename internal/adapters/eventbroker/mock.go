package eventbroker

import (
	"context"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) PublishVideoIngested(ctx context.Context, event domain.VideoIngested) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
