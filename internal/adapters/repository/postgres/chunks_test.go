package postgres_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/dineshbharati27/video-stream-app/internal/adapters/repository/postgres"
	"github.com/dineshbharati27/video-stream-app/internal/core/domain"
	"github.com/dineshbharati27/video-stream-app/internal/core/service/chunkstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSqlChunkRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := postgres.NewSqlChunkRepository(dbConnection)

	t.Run("Put and Get - Success", func(t *testing.T) {
		// Arrange
		truncate()
		videoID := uuid.New()
		payload := []byte("chunk payload bytes")

		// Act
		err := repo.Put(ctx, videoID, 0, payload)

		// Assert
		require.NoError(t, err)
		got, err := repo.Get(ctx, videoID, 0)
		require.NoError(t, err)
		require.Equal(t, payload, got)
	})

	t.Run("Get - Not Found", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		_, err := repo.Get(ctx, uuid.New(), 0)

		// Assert
		require.ErrorIs(t, err, domain.ErrChunkNotFound)
	})

	t.Run("Put - Duplicate Sequence", func(t *testing.T) {
		// Arrange
		truncate()
		videoID := uuid.New()
		require.NoError(t, repo.Put(ctx, videoID, 0, []byte("first")))

		// Act
		err := repo.Put(ctx, videoID, 0, []byte("second"))

		// Assert
		require.Error(t, err)
	})

	t.Run("ListVideoIDsOlderThan - Finds Old Chunks", func(t *testing.T) {
		// Arrange
		truncate()
		videoID := uuid.New()
		require.NoError(t, repo.Put(ctx, videoID, 0, []byte("payload")))

		// Act
		ids, err := repo.ListVideoIDsOlderThan(ctx, time.Now().Add(time.Minute))

		// Assert
		require.NoError(t, err)
		require.Contains(t, ids, videoID)
	})

	t.Run("ListVideoIDsOlderThan - Skips Recent Chunks", func(t *testing.T) {
		// Arrange
		truncate()
		videoID := uuid.New()
		require.NoError(t, repo.Put(ctx, videoID, 0, []byte("payload")))

		// Act
		ids, err := repo.ListVideoIDsOlderThan(ctx, time.Now().Add(-time.Minute))

		// Assert
		require.NoError(t, err)
		require.NotContains(t, ids, videoID)
	})

	t.Run("DeleteVideo - Removes All Chunks", func(t *testing.T) {
		// Arrange
		truncate()
		videoID := uuid.New()
		for seq := 0; seq < 3; seq++ {
			require.NoError(t, repo.Put(ctx, videoID, seq, []byte("payload")))
		}

		// Act
		err := repo.DeleteVideo(ctx, videoID)

		// Assert
		require.NoError(t, err)
		for seq := 0; seq < 3; seq++ {
			_, err := repo.Get(ctx, videoID, seq)
			require.ErrorIs(t, err, domain.ErrChunkNotFound)
		}
	})

	t.Run("ChunkStore Round Trip Through Postgres", func(t *testing.T) {
		// Arrange
		truncate()
		store, err := chunkstore.New(repo, 1024)
		require.NoError(t, err)

		videoID := uuid.New()
		payload := bytes.Repeat([]byte("abcdefgh"), 1000) // 8000 bytes, 8 chunks

		// Act
		total, err := store.Write(ctx, videoID, bytes.NewReader(payload))
		require.NoError(t, err)

		body, err := store.ReadRange(ctx, videoID, 1000, 5000)
		require.NoError(t, err)
		defer body.Close()
		got, err := io.ReadAll(body)

		// Assert
		require.NoError(t, err)
		require.Equal(t, int64(8000), total)
		require.Equal(t, payload[1000:5001], got)
	})
}
