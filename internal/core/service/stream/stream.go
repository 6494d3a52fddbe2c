package stream

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"
	"github.com/dineshbharati27/video-stream-app/internal/core/port"

	"github.com/google/uuid"
)

// rangePattern accepts the start-offset form "bytes=<start>-" with an
// optional end that is deliberately ignored: the served span is always
// capped server-side. Anything else is malformed and rejected with 416.
var rangePattern = regexp.MustCompile(`^bytes=(\d+)-(\d*)$`)

type streamService struct {
	catalog     port.CatalogRepository
	store       port.ChunkStore
	defaultSpan int64
}

// NewStreamService creates a new stream service. defaultSpan is the maximum
// number of bytes past the start offset served per partial response.
func NewStreamService(catalog port.CatalogRepository, store port.ChunkStore, defaultSpan int64) port.StreamService {
	return &streamService{
		catalog:     catalog,
		store:       store,
		defaultSpan: defaultSpan,
	}
}

// Serve looks the video up in the catalog and opens a chunk stream over the
// resolved byte range. With no range header the full video is streamed;
// otherwise the response covers [start, min(start+span, length-1)].
func (s *streamService) Serve(ctx context.Context, videoID uuid.UUID, rangeHeader string) (*domain.VideoStream, error) {

	video, err := s.catalog.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if rangeHeader == "" {
		body, err := s.store.ReadAll(ctx, videoID, video.Length)
		if err != nil {
			return nil, err
		}
		return &domain.VideoStream{
			Video: *video,
			Start: 0,
			End:   video.Length - 1,
			Body:  body,
		}, nil
	}

	start, err := parseRangeStart(rangeHeader)
	if err != nil {
		return nil, err
	}
	if start >= video.Length {
		return nil, fmt.Errorf("%w: start %d beyond length %d", domain.ErrUnsatisfiableRange, start, video.Length)
	}

	end := start + s.defaultSpan
	if end > video.Length-1 {
		end = video.Length - 1
	}

	body, err := s.store.ReadRange(ctx, videoID, start, end)
	if err != nil {
		return nil, err
	}

	return &domain.VideoStream{
		Video:   *video,
		Partial: true,
		Start:   start,
		End:     end,
		Body:    body,
	}, nil
}

func parseRangeStart(rangeHeader string) (int64, error) {
	matches := rangePattern.FindStringSubmatch(rangeHeader)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrMalformedRange, rangeHeader)
	}
	start, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrMalformedRange, rangeHeader)
	}
	return start, nil
}
