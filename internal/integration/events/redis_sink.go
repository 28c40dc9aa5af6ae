// Package events implements the lifecycle event sink on redis pub/sub.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/moneybook/backend/internal/application/adapter"
)

// Channel is the redis pub/sub channel lifecycle events are published to.
const Channel = "moneybook.lifecycle"

// payload is the wire form of a lifecycle event.
type payload struct {
	Name       string    `json:"name"`
	BookID     uuid.UUID `json:"bookId,omitempty"`
	UserID     uuid.UUID `json:"userId,omitempty"`
	ActorID    uuid.UUID `json:"actorId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// redisSink implements adapter.EventSink on redis pub/sub. Callers treat
// publishing as best-effort; a failed publish never fails the operation
// that produced the event.
type redisSink struct {
	client *redis.Client
}

// NewRedisSink creates a new redis-backed event sink.
func NewRedisSink(client *redis.Client) adapter.EventSink {
	return &redisSink{client: client}
}

// Publish delivers the event to the lifecycle channel.
func (s *redisSink) Publish(ctx context.Context, event adapter.Event) error {
	body, err := json.Marshal(payload{
		Name:       event.Name,
		BookID:     event.BookID,
		UserID:     event.UserID,
		ActorID:    event.ActorID,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	if err := s.client.Publish(ctx, Channel, body).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}
