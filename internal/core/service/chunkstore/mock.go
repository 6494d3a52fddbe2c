package chunkstore

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockChunkStore is a mock implementation of ChunkStore
type MockChunkStore struct {
	mock.Mock
}

// NewMockChunkStore creates a new MockChunkStore
func NewMockChunkStore() *MockChunkStore {
	return &MockChunkStore{}
}

func (m *MockChunkStore) Write(ctx context.Context, videoID uuid.UUID, r io.Reader) (int64, error) {
	args := m.Called(ctx, videoID, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChunkStore) ReadRange(ctx context.Context, videoID uuid.UUID, start, end int64) (io.ReadCloser, error) {
	args := m.Called(ctx, videoID, start, end)
	body, _ := args.Get(0).(io.ReadCloser)
	return body, args.Error(1)
}

func (m *MockChunkStore) ReadAll(ctx context.Context, videoID uuid.UUID, length int64) (io.ReadCloser, error) {
	args := m.Called(ctx, videoID, length)
	body, _ := args.Get(0).(io.ReadCloser)
	return body, args.Error(1)
}
