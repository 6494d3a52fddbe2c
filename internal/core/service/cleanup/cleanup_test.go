package cleanup_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dineshbharati27/video-stream-app/internal/adapters/repository"
	"github.com/dineshbharati27/video-stream-app/internal/core/domain"
	"github.com/dineshbharati27/video-stream-app/internal/core/service/cleanup"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCleanupService_DeletesOrphanedChunks(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockCatalog := repository.NewMockCatalogRepository()
	mockChunks := repository.NewMockChunkRepository()
	service := cleanup.NewCleanupService(mockCatalog, mockChunks, discardLogger())

	orphanID := uuid.New()
	liveID := uuid.New()
	cutoff := time.Now().Add(-time.Hour)

	mockChunks.On("ListVideoIDsOlderThan", ctx, cutoff).
		Return([]uuid.UUID{orphanID, liveID}, nil)
	mockCatalog.On("FindByID", ctx, orphanID).
		Return((*domain.Video)(nil), domain.ErrVideoNotFound)
	mockCatalog.On("FindByID", ctx, liveID).
		Return(&domain.Video{ID: liveID}, nil)
	mockChunks.On("DeleteVideo", ctx, orphanID).Return(nil)

	// Act
	err := service.CleanupOrphanedChunks(ctx, cutoff)

	// Assert: only the orphan is deleted, the published video is untouched.
	assert.NoError(t, err)
	mockChunks.AssertExpectations(t)
	mockChunks.AssertNotCalled(t, "DeleteVideo", ctx, liveID)
	mockCatalog.AssertExpectations(t)
}

func TestCleanupService_ListFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockCatalog := repository.NewMockCatalogRepository()
	mockChunks := repository.NewMockChunkRepository()
	service := cleanup.NewCleanupService(mockCatalog, mockChunks, discardLogger())

	cutoff := time.Now()
	expectedErr := errors.New("database error")
	mockChunks.On("ListVideoIDsOlderThan", ctx, cutoff).
		Return([]uuid.UUID(nil), expectedErr)

	// Act
	err := service.CleanupOrphanedChunks(ctx, cutoff)

	// Assert
	assert.Equal(t, expectedErr, err)
	mockCatalog.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCleanupService_CatalogLookupFailureSkipsVideo(t *testing.T) {
	// Arrange: a transient catalog error must not delete the chunks.
	ctx := context.Background()
	mockCatalog := repository.NewMockCatalogRepository()
	mockChunks := repository.NewMockChunkRepository()
	service := cleanup.NewCleanupService(mockCatalog, mockChunks, discardLogger())

	videoID := uuid.New()
	cutoff := time.Now()

	mockChunks.On("ListVideoIDsOlderThan", ctx, cutoff).
		Return([]uuid.UUID{videoID}, nil)
	mockCatalog.On("FindByID", ctx, videoID).
		Return((*domain.Video)(nil), errors.New("connection refused"))

	// Act
	err := service.CleanupOrphanedChunks(ctx, cutoff)

	// Assert
	assert.NoError(t, err)
	mockChunks.AssertNotCalled(t, "DeleteVideo", mock.Anything, mock.Anything)
}

func TestCleanupService_DeleteFailureContinues(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockCatalog := repository.NewMockCatalogRepository()
	mockChunks := repository.NewMockChunkRepository()
	service := cleanup.NewCleanupService(mockCatalog, mockChunks, discardLogger())

	firstID := uuid.New()
	secondID := uuid.New()
	cutoff := time.Now()

	mockChunks.On("ListVideoIDsOlderThan", ctx, cutoff).
		Return([]uuid.UUID{firstID, secondID}, nil)
	mockCatalog.On("FindByID", ctx, firstID).
		Return((*domain.Video)(nil), domain.ErrVideoNotFound)
	mockCatalog.On("FindByID", ctx, secondID).
		Return((*domain.Video)(nil), domain.ErrVideoNotFound)
	mockChunks.On("DeleteVideo", ctx, firstID).Return(errors.New("storage error"))
	mockChunks.On("DeleteVideo", ctx, secondID).Return(nil)

	// Act
	err := service.CleanupOrphanedChunks(ctx, cutoff)

	// Assert
	assert.NoError(t, err)
	mockChunks.AssertExpectations(t)
}
