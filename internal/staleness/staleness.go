// Package staleness decides whether a timestamp is too old to trust.
package staleness

import (
	"time"

	"github.com/benbjohnson/clock"
)

// IsStale reports whether more than staleMinutes have elapsed between
// timestamp and now. A negative threshold is clamped to 0, so the timestamp
// is stale unless it is now or in the future.
func IsStale(now, timestamp time.Time, staleMinutes int) bool {
	if staleMinutes < 0 {
		staleMinutes = 0
	}
	return now.Sub(timestamp) > time.Duration(staleMinutes)*time.Minute
}

// Policy applies IsStale against a clock
type Policy struct {
	clock clock.Clock
}

// NewPolicy creates a policy backed by the given clock. A nil clock means
// the wall clock.
func NewPolicy(c clock.Clock) *Policy {
	if c == nil {
		c = clock.New()
	}
	return &Policy{clock: c}
}

// IsStale reports whether timestamp is older than staleMinutes
func (p *Policy) IsStale(timestamp time.Time, staleMinutes int) bool {
	return IsStale(p.clock.Now(), timestamp, staleMinutes)
}

// Now returns the policy clock's current time
func (p *Policy) Now() time.Time {
	return p.clock.Now()
}
