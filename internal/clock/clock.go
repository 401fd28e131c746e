// Package clock derives the countdown and the preview window of a round
// from a monotonic start instant.
package clock

import "time"

// DefaultPreview is how long every card is shown at the start of a round.
const DefaultPreview = 10 * time.Second

// RoundClock counts down whole seconds from a time limit.
type RoundClock struct {
	start         time.Time
	limit         int
	remaining     int
	preview       time.Duration
	previewActive bool
}

// New returns a stopped clock with the given preview duration.
// A negative preview is treated as no preview.
func New(preview time.Duration) *RoundClock {
	if preview < 0 {
		preview = 0
	}
	return &RoundClock{preview: preview}
}

// Start records now as the round start and resets the countdown.
func (c *RoundClock) Start(now time.Time, limitSeconds int) {
	c.start = now
	c.limit = limitSeconds
	c.remaining = limitSeconds
	c.previewActive = c.preview > 0
}

// Tick recomputes the remaining seconds for now. Remaining never goes up,
// even if now is earlier than a previous tick. It returns true on the one
// tick where the preview window closes.
func (c *RoundClock) Tick(now time.Time) (previewEnded bool) {
	elapsed := c.Elapsed(now)

	r := c.limit - int(elapsed/time.Second)
	if r < 0 {
		r = 0
	}
	if r < c.remaining {
		c.remaining = r
	}

	if c.previewActive && elapsed >= c.preview {
		c.previewActive = false
		return true
	}
	return false
}

// Elapsed returns the time since Start, never negative.
func (c *RoundClock) Elapsed(now time.Time) time.Duration {
	d := now.Sub(c.start)
	if d < 0 {
		return 0
	}
	return d
}

// Remaining returns the seconds left in the round.
func (c *RoundClock) Remaining() int {
	return c.remaining
}

// Limit returns the time limit the clock was started with.
func (c *RoundClock) Limit() int {
	return c.limit
}

// Expired reports whether the countdown has reached zero.
func (c *RoundClock) Expired() bool {
	return c.remaining == 0
}

// PreviewActive reports whether the opening preview is still running.
func (c *RoundClock) PreviewActive() bool {
	return c.previewActive
}

// PreviewLeft returns how much of the preview window remains at now.
func (c *RoundClock) PreviewLeft(now time.Time) time.Duration {
	if !c.previewActive {
		return 0
	}
	left := c.preview - c.Elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}
