package port

import (
	"context"

	"github.com/dineshbharati27/video-stream-app/internal/core/domain"
)

// EventPublisher is an interface to emit domain events to the broker.
type EventPublisher interface {
	PublishVideoIngested(ctx context.Context, event domain.VideoIngested) error
}
