package repository

import (
	"context"

	"github.com/accessnav-service/internal/domain"
)

// StreamRepository is the broadcast channel backing. The API side only
// publishes (fire-and-forget, at-most-once is acceptable); the relay
// worker consumes via a consumer group and fans out over pub/sub.
type StreamRepository interface {
	// PublishToStream appends a JSON-serialized payload to a stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// PublishToChannel publishes a raw payload on a pub/sub channel.
	PublishToChannel(ctx context.Context, channel string, payload string) error

	// CreateConsumerGroup creates the consumer group for a stream,
	// tolerating an already-existing group.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count pending messages for a consumer.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
