package domain

import (
	"time"

	"github.com/google/uuid"
)

// VideoIngested is emitted after a video becomes visible in the catalog.
type VideoIngested struct {
	VideoID     uuid.UUID `json:"video_id"`
	Title       string    `json:"title"`
	Length      int64     `json:"length"`
	ContentType string    `json:"content_type"`
	IngestedAt  time.Time `json:"ingested_at"`
}
