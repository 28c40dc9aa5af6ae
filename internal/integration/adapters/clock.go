// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/moneybook/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock on the wall clock, in UTC.
type systemClock struct{}

// NewSystemClock creates a new system clock instance.
func NewSystemClock() adapter.Clock {
	return &systemClock{}
}

// Now returns the current UTC time.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
