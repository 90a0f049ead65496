package repository

import (
	"context"

	"github.com/transit-site/internal/domain"
)

// StreamRepository - Redis Streams access
type StreamRepository interface {
	// ConsumeStream reads new messages for the consumer until ctx is done
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	AckMessage(ctx context.Context, stream, group, messageID string) error

	// CreateConsumerGroup is a no-op when the group already exists
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream marshals data to JSON under the "data" field
	PublishToStream(ctx context.Context, stream string, data interface{}) (string, error)
}
