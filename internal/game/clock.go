package game

import "time"

// Clock tracks a round's elapsed time against a fixed budget.
// A clock that was never started reports itself expired.
type Clock struct {
	budget    time.Duration
	startedAt time.Time
	started   bool
	expired   bool
}

// NewClock creates a stopped clock with the given budget.
func NewClock(budget time.Duration) *Clock {
	return &Clock{budget: budget}
}

// Start begins a new round at now.
func (c *Clock) Start(now time.Time) {
	c.startedAt = now
	c.started = true
	c.expired = false
}

// Budget returns the round length.
func (c *Clock) Budget() time.Duration {
	return c.budget
}

// StartedAt returns the start time of the current round.
func (c *Clock) StartedAt() time.Time {
	return c.startedAt
}

// Elapsed returns the time since Start, never negative.
func (c *Clock) Elapsed(now time.Time) time.Duration {
	if !c.started {
		return 0
	}
	if d := now.Sub(c.startedAt); d > 0 {
		return d
	}
	return 0
}

// IsExpired reports whether the budget is used up. Once true it stays true
// until the next Start, even if now moves backwards.
func (c *Clock) IsExpired(now time.Time) bool {
	if !c.started {
		return true
	}
	if !c.expired && c.Elapsed(now) >= c.budget {
		c.expired = true
	}
	return c.expired
}

// Remaining returns the time left in the round, clamped at zero.
func (c *Clock) Remaining(now time.Time) time.Duration {
	if c.IsExpired(now) {
		return 0
	}
	return c.budget - c.Elapsed(now)
}
