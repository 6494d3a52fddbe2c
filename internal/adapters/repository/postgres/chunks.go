package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"
	"github.com/dineshbharati27/video-stream-app/internal/core/port"

	"github.com/google/uuid"
)

type sqlChunkRepository struct {
	db SQLQuerier
}

// NewSqlChunkRepository creates sqlChunkRepository that implements port.ChunkRepository
func NewSqlChunkRepository(db SQLQuerier) port.ChunkRepository {
	return &sqlChunkRepository{
		db: db,
	}
}

// Put persists one chunk keyed by (video_id, sequence_number).
func (s *sqlChunkRepository) Put(ctx context.Context, videoID uuid.UUID, seq int, payload []byte) error {
	query := `INSERT INTO video_chunks (video_id, sequence_number, payload)
              VALUES ($1, $2, $3)`

	_, err := s.db.ExecContext(ctx, query, videoID, seq, payload)
	if err != nil {
		return fmt.Errorf("error inserting chunk: %w", err)
	}
	return nil
}

// Get fetches one chunk payload.
func (s *sqlChunkRepository) Get(ctx context.Context, videoID uuid.UUID, seq int) ([]byte, error) {
	query := `SELECT payload FROM video_chunks
              WHERE video_id = $1 AND sequence_number = $2`

	var payload []byte
	err := s.db.QueryRowContext(ctx, query, videoID, seq).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChunkNotFound
		}
		return nil, fmt.Errorf("error fetching chunk: %w", err)
	}

	return payload, nil
}

// ListVideoIDsOlderThan returns ids of videos whose newest chunk predates cutoff.
func (s *sqlChunkRepository) ListVideoIDsOlderThan(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	query := `SELECT video_id FROM video_chunks
              GROUP BY video_id
              HAVING max(created_at) < $1`

	rows, err := s.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("error querying chunk video ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning video id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating video ids: %w", err)
	}

	return ids, nil
}

// DeleteVideo removes every chunk belonging to a video.
func (s *sqlChunkRepository) DeleteVideo(ctx context.Context, videoID uuid.UUID) error {
	query := `DELETE FROM video_chunks WHERE video_id = $1`

	_, err := s.db.ExecContext(ctx, query, videoID)
	if err != nil {
		return fmt.Errorf("error deleting chunks: %w", err)
	}
	return nil
}
