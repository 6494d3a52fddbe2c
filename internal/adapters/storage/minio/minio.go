package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dineshbharati27/video-stream-app/internal/config"
	"github.com/dineshbharati27/video-stream-app/internal/core/domain"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const chunkPrefix = "chunks/"

// Adapter stores one object per chunk under chunks/<videoID>/<sequence>.
// It implements port.ChunkRepository as an alternative to the postgres rows.
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("minio endpoint is required when the minio backend is selected")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

func chunkKey(videoID uuid.UUID, seq int) string {
	return fmt.Sprintf("%s%s/%08d", chunkPrefix, videoID, seq)
}

func videoPrefix(videoID uuid.UUID) string {
	return fmt.Sprintf("%s%s/", chunkPrefix, videoID)
}

// Put stores one chunk payload as an object.
func (a *Adapter) Put(ctx context.Context, videoID uuid.UUID, seq int, payload []byte) error {
	_, err := a.client.PutObject(
		ctx,
		a.config.BucketName,
		chunkKey(videoID, seq),
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"},
	)
	if err != nil {
		return fmt.Errorf("failed to put chunk object: %w", err)
	}
	return nil
}

// Get fetches one chunk payload. Chunks are at most one chunk size long,
// so reading the whole object into memory is bounded.
func (a *Adapter) Get(ctx context.Context, videoID uuid.UUID, seq int) ([]byte, error) {
	obj, err := a.client.GetObject(ctx, a.config.BucketName, chunkKey(videoID, seq), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get chunk object: %w", err)
	}
	defer obj.Close()

	payload, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, domain.ErrChunkNotFound
		}
		return nil, fmt.Errorf("failed to read chunk object: %w", err)
	}
	return payload, nil
}

// ListVideoIDsOlderThan scans the chunk prefix and returns ids of videos
// whose newest chunk object was modified before cutoff.
func (a *Adapter) ListVideoIDsOlderThan(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	newest := make(map[uuid.UUID]time.Time)

	for obj := range a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{
		Prefix:    chunkPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list chunk objects: %w", obj.Err)
		}

		videoID, ok := parseVideoID(obj.Key)
		if !ok {
			a.logger.Warn("skipping unexpected object key", "key", obj.Key)
			continue
		}
		if obj.LastModified.After(newest[videoID]) {
			newest[videoID] = obj.LastModified
		}
	}

	var ids []uuid.UUID
	for id, modified := range newest {
		if modified.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// DeleteVideo removes every chunk object belonging to a video.
func (a *Adapter) DeleteVideo(ctx context.Context, videoID uuid.UUID) error {
	for obj := range a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{
		Prefix:    videoPrefix(videoID),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return fmt.Errorf("failed to list chunk objects: %w", obj.Err)
		}
		if err := a.client.RemoveObject(ctx, a.config.BucketName, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove chunk object %s: %w", obj.Key, err)
		}
	}
	return nil
}

// parseVideoID extracts the video id from a key of the form
// chunks/<videoID>/<sequence>.
func parseVideoID(key string) (uuid.UUID, bool) {
	rest, found := strings.CutPrefix(key, chunkPrefix)
	if !found {
		return uuid.Nil, false
	}
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 {
		return uuid.Nil, false
	}
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return uuid.Nil, false
	}
	videoID, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, false
	}
	return videoID, true
}
