package chunkstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"
	"github.com/dineshbharati27/video-stream-app/internal/core/port"

	"github.com/google/uuid"
)

// DefaultChunkSize is the chunk size used in production: 1MB.
const DefaultChunkSize = 1 << 20

type chunkStore struct {
	chunks    port.ChunkRepository
	chunkSize int64
}

// New creates a chunk store that splits writes into chunks of at most
// chunkSize bytes and maps range reads back onto those chunks.
func New(chunks port.ChunkRepository, chunkSize int64) (port.ChunkStore, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	return &chunkStore{chunks: chunks, chunkSize: chunkSize}, nil
}

// Write consumes r to completion, persisting sequential chunks keyed by
// (videoID, sequenceNumber). The final chunk may be shorter than chunkSize.
func (s *chunkStore) Write(ctx context.Context, videoID uuid.UUID, r io.Reader) (int64, error) {
	buf := make([]byte, s.chunkSize)

	var total int64
	for seq := 0; ; seq++ {
		n, readErr := io.ReadFull(r, buf)
		if n > 0 {
			payload := make([]byte, n)
			copy(payload, buf[:n])
			if err := s.chunks.Put(ctx, videoID, seq, payload); err != nil {
				return 0, fmt.Errorf("%w: chunk %d: %w", domain.ErrStoreWrite, seq, err)
			}
			total += int64(n)
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
				return total, nil
			}
			return 0, fmt.Errorf("%w: reading payload: %w", domain.ErrStoreWrite, readErr)
		}
	}
}

// ReadRange returns a reader over bytes [start, end] inclusive.
//
// The first overlapping chunk is start/chunkSize and the last is
// end/chunkSize; the first chunk is trimmed by start mod chunkSize from the
// front, the last is kept through end mod chunkSize, and everything between
// is emitted whole. The first chunk is fetched eagerly so an unknown video
// fails here rather than mid-stream; the rest are fetched on demand.
func (s *chunkStore) ReadRange(ctx context.Context, videoID uuid.UUID, start, end int64) (io.ReadCloser, error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: bytes %d-%d", domain.ErrUnsatisfiableRange, start, end)
	}

	first := int(start / s.chunkSize)
	last := int(end / s.chunkSize)

	payload, err := s.chunks.Get(ctx, videoID, first)
	if err != nil {
		if errors.Is(err, domain.ErrChunkNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrVideoNotFound, videoID)
		}
		return nil, fmt.Errorf("%w: chunk %d: %w", domain.ErrStoreRead, first, err)
	}

	keep := end%s.chunkSize + 1
	if first == last && keep < int64(len(payload)) {
		payload = payload[:keep]
	}
	if skip := start % s.chunkSize; skip > 0 {
		if skip >= int64(len(payload)) {
			payload = nil
		} else {
			payload = payload[skip:]
		}
	}

	return &chunkReader{
		ctx:     ctx,
		chunks:  s.chunks,
		videoID: videoID,
		next:    first + 1,
		last:    last,
		keep:    keep,
		buf:     payload,
	}, nil
}

// ReadAll is equivalent to ReadRange over the whole video.
func (s *chunkStore) ReadAll(ctx context.Context, videoID uuid.UUID, length int64) (io.ReadCloser, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: length %d", domain.ErrUnsatisfiableRange, length)
	}
	return s.ReadRange(ctx, videoID, 0, length-1)
}

// chunkReader streams chunks in ascending sequence order. It is forward-only
// and not restartable; bytes are never buffered beyond one chunk.
type chunkReader struct {
	ctx     context.Context
	chunks  port.ChunkRepository
	videoID uuid.UUID
	next    int   // next sequence number to fetch
	last    int   // final sequence number of the range
	keep    int64 // bytes of the final chunk to keep
	buf     []byte
	err     error
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	for len(r.buf) == 0 {
		if r.next > r.last {
			r.err = io.EOF
			return 0, io.EOF
		}

		payload, err := r.chunks.Get(r.ctx, r.videoID, r.next)
		if err != nil {
			r.err = fmt.Errorf("%w: chunk %d: %w", domain.ErrStoreRead, r.next, err)
			return 0, r.err
		}
		if r.next == r.last && r.keep < int64(len(payload)) {
			payload = payload[:r.keep]
		}
		r.next++
		r.buf = payload
	}

	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

// Close releases the reader; subsequent reads fail.
func (r *chunkReader) Close() error {
	r.buf = nil
	if r.err == nil {
		r.err = errors.New("chunk reader closed")
	}
	return nil
}
