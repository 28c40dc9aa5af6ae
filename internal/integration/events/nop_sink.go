package events

import (
	"context"

	"github.com/moneybook/backend/internal/application/adapter"
)

// nopSink drops every event. Used when no redis connection is configured.
type nopSink struct{}

// NewNopSink creates an event sink that discards all events.
func NewNopSink() adapter.EventSink {
	return nopSink{}
}

// Publish discards the event.
func (nopSink) Publish(context.Context, adapter.Event) error {
	return nil
}
