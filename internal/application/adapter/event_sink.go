// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event names emitted on lifecycle transitions.
const (
	EventBookCreated     = "book.created"
	EventBookArchived    = "book.archived"
	EventBookRestored    = "book.restored"
	EventBookDeleted     = "book.deleted"
	EventBookUndeleted   = "book.undeleted"
	EventBookTransferred = "book.transferred"
	EventBookPurged      = "book.purged"
	EventUserDeleted     = "user.deleted"
	EventUserRestored    = "user.restored"
	EventUserPurged      = "user.purged"
)

// Event is a lifecycle notification for the audit/notification layer.
type Event struct {
	Name       string
	BookID     uuid.UUID
	UserID     uuid.UUID
	ActorID    uuid.UUID
	OccurredAt time.Time
}

// EventSink receives lifecycle events. Implementations must be best-effort:
// domain correctness never depends on a publish succeeding, so use cases
// ignore sink errors beyond logging.
type EventSink interface {
	// Publish delivers the event to the sink.
	Publish(ctx context.Context, event Event) error
}
