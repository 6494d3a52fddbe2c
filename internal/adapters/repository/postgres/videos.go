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
	"github.com/lib/pq"
)

// uniqueViolation is the postgres error code for unique constraint conflicts.
const uniqueViolation = "23505"

type sqlCatalogRepository struct {
	db SQLQuerier
}

// NewSqlCatalogRepository creates sqlCatalogRepository that implements port.CatalogRepository
func NewSqlCatalogRepository(db SQLQuerier) port.CatalogRepository {
	return &sqlCatalogRepository{
		db: db,
	}
}

// Create inserts a new catalog entry. Entries are immutable once inserted.
func (s *sqlCatalogRepository) Create(ctx context.Context, video domain.Video) error {
	query := `INSERT INTO videos (id, title, length_bytes, content_type, created_at)
              VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query, video.ID, video.Title, video.Length, video.ContentType, video.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: video %s", domain.ErrAlreadyExists, video.ID)
		}
		return fmt.Errorf("error inserting video: %w", err)
	}
	return nil
}

// FindByID finds by id
func (s *sqlCatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	query := `SELECT id, title, length_bytes, content_type, created_at
              FROM videos
              WHERE id = $1`

	var dbVid dbVideo
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&dbVid.ID,
		&dbVid.Title,
		&dbVid.Length,
		&dbVid.ContentType,
		&dbVid.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}

	return dbVid.ToDomain(), nil
}

// FindAll returns every catalog entry in store order, without sorting.
func (s *sqlCatalogRepository) FindAll(ctx context.Context) ([]domain.Video, error) {
	query := `SELECT id, title, length_bytes, content_type, created_at FROM videos`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying videos: %w", err)
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		var dbVid dbVideo
		err := rows.Scan(
			&dbVid.ID,
			&dbVid.Title,
			&dbVid.Length,
			&dbVid.ContentType,
			&dbVid.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning video: %w", err)
		}
		videos = append(videos, *dbVid.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating videos: %w", err)
	}

	return videos, nil
}

// dbVideo represents a video row in DB
type dbVideo struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Length      int64     `db:"length_bytes"`
	ContentType string    `db:"content_type"`
	CreatedAt   time.Time `db:"created_at"`
}

// ToDomain converts to domain.Video
func (v *dbVideo) ToDomain() *domain.Video {
	return &domain.Video{
		ID:          v.ID,
		Title:       v.Title,
		Length:      v.Length,
		ContentType: v.ContentType,
		CreatedAt:   v.CreatedAt,
	}
}
