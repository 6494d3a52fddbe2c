package domain

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Video is one ingested media item. Entries are immutable once published:
// the catalog row is written only after every chunk is durably stored.
type Video struct {
	ID          uuid.UUID
	Title       string
	Length      int64
	ContentType string
	CreatedAt   time.Time
}

// Chunk is one fixed-size segment of a video's byte stream. The final chunk
// of a video may be shorter than the configured chunk size. Concatenating
// chunks in sequence order reconstructs the original byte stream exactly.
type Chunk struct {
	VideoID        uuid.UUID
	SequenceNumber int
	Payload        []byte
}

// VideoStream is one resolved download, either the full video or a
// server-capped partial range. Body is forward-only and must be closed.
type VideoStream struct {
	Video   Video
	Partial bool
	Start   int64
	End     int64
	Body    io.ReadCloser
}

// ContentLength returns the number of body bytes the stream will carry.
func (s *VideoStream) ContentLength() int64 {
	return s.End - s.Start + 1
}
