package ingest

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockIngestService is a mock implementation of IngestService
type MockIngestService struct {
	mock.Mock
}

// NewMockIngestService creates a new MockIngestService
func NewMockIngestService() *MockIngestService {
	return &MockIngestService{}
}

func (m *MockIngestService) Ingest(ctx context.Context, title string, payload []byte, contentType string) (uuid.UUID, error) {
	args := m.Called(ctx, title, payload, contentType)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
