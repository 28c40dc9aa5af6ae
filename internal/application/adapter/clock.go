// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock is the source of current time for lifecycle stamping and
// retention-window evaluation. Injected so tests can pin time.
type Clock interface {
	// Now returns the current time in UTC.
	Now() time.Time
}
