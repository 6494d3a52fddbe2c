package minio_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	miniostorage "github.com/dineshbharati27/video-stream-app/internal/adapters/storage/minio"
	"github.com/dineshbharati27/video-stream-app/internal/config"
	"github.com/dineshbharati27/video-stream-app/internal/core/domain"
	"github.com/dineshbharati27/video-stream-app/internal/core/service/chunkstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
	testBucket    = "test-chunks"
)

func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     testAccessKey,
			"MINIO_ROOT_PASSWORD": testSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}
	minioContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := minioContainer.Host(ctx)
	require.NoError(t, err)

	port, err := minioContainer.MappedPort(ctx, "9000")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("%s:%s", host, port.Port())

	cleanup := func() {
		if err := minioContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	time.Sleep(500 * time.Millisecond) // wait for container to be up
	return endpoint, cleanup
}

func createAdapter(t *testing.T, ctx context.Context, endpoint string) *miniostorage.Adapter {
	t.Helper()

	cfg := config.MinioConfig{
		Endpoint:   endpoint,
		BucketName: testBucket,
		AccessKey:  testAccessKey,
		SecretKey:  testSecretKey,
		UseSSL:     false,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	adapter, err := miniostorage.NewAdapter(ctx, cfg, logger)
	require.NoError(t, err)
	return adapter
}

func TestMinioAdapter(t *testing.T) {
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, ctx, endpoint)

	t.Run("Put and Get - Success", func(t *testing.T) {
		// Arrange
		videoID := uuid.New()
		payload := []byte("object chunk payload")

		// Act
		err := adapter.Put(ctx, videoID, 0, payload)

		// Assert
		require.NoError(t, err)
		got, err := adapter.Get(ctx, videoID, 0)
		require.NoError(t, err)
		require.Equal(t, payload, got)
	})

	t.Run("Get - Not Found", func(t *testing.T) {
		// Act
		_, err := adapter.Get(ctx, uuid.New(), 0)

		// Assert
		require.ErrorIs(t, err, domain.ErrChunkNotFound)
	})

	t.Run("DeleteVideo - Removes All Chunks", func(t *testing.T) {
		// Arrange
		videoID := uuid.New()
		for seq := 0; seq < 3; seq++ {
			require.NoError(t, adapter.Put(ctx, videoID, seq, []byte("payload")))
		}

		// Act
		err := adapter.DeleteVideo(ctx, videoID)

		// Assert
		require.NoError(t, err)
		for seq := 0; seq < 3; seq++ {
			_, err := adapter.Get(ctx, videoID, seq)
			require.ErrorIs(t, err, domain.ErrChunkNotFound)
		}
	})

	t.Run("ListVideoIDsOlderThan - Honors Cutoff", func(t *testing.T) {
		// Arrange
		videoID := uuid.New()
		require.NoError(t, adapter.Put(ctx, videoID, 0, []byte("payload")))

		// Act
		oldIDs, err := adapter.ListVideoIDsOlderThan(ctx, time.Now().Add(time.Minute))
		require.NoError(t, err)
		recentIDs, err := adapter.ListVideoIDsOlderThan(ctx, time.Now().Add(-time.Minute))
		require.NoError(t, err)

		// Assert
		require.Contains(t, oldIDs, videoID)
		require.NotContains(t, recentIDs, videoID)
	})

	t.Run("ChunkStore Round Trip Through Minio", func(t *testing.T) {
		// Arrange
		store, err := chunkstore.New(adapter, 512)
		require.NoError(t, err)

		videoID := uuid.New()
		payload := bytes.Repeat([]byte("0123456789abcdef"), 200) // 3200 bytes, 7 chunks

		// Act
		total, err := store.Write(ctx, videoID, bytes.NewReader(payload))
		require.NoError(t, err)

		body, err := store.ReadRange(ctx, videoID, 500, 2000)
		require.NoError(t, err)
		defer body.Close()
		got, err := io.ReadAll(body)

		// Assert
		require.NoError(t, err)
		require.Equal(t, int64(3200), total)
		require.Equal(t, payload[500:2001], got)
	})
}
