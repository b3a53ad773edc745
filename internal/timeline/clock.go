package timeline

import (
	"time"
)

// Clock is the shared playback position, advanced by the host's frame loop.
// It is not safe for concurrent use.
type Clock struct {
	current float64
	total   float64
	speed   float64
	playing bool
}

// NewClock returns a stopped clock at 0 with the given total duration (ms).
func NewClock(total float64) *Clock {
	c := &Clock{speed: 1}
	c.SetTotal(total)
	return c
}

// SetTotal changes the total duration and rewinds to 0.
func (c *Clock) SetTotal(total float64) {
	if total < 0 {
		total = 0
	}
	c.total = total
	c.Stop()
}

// Total returns the total duration in ms.
func (c *Clock) Total() float64 {
	return c.total
}

// Time returns the current position in ms.
func (c *Clock) Time() float64 {
	return c.current
}

// Playing reports whether Advance moves the clock.
func (c *Clock) Playing() bool {
	return c.playing
}

// Speed returns the playback speed factor.
func (c *Clock) Speed() float64 {
	return c.speed
}

// SetSpeed sets the playback speed factor. Non-positive values are ignored.
func (c *Clock) SetSpeed(speed float64) {
	if speed > 0 {
		c.speed = speed
	}
}

// Play starts playback, restarting from 0 when the clock sits at the end.
func (c *Clock) Play() {
	if c.playing {
		return
	}
	if c.total > 0 && c.current >= c.total {
		c.current = 0
	}
	c.playing = true
}

// Pause halts playback at the current position.
func (c *Clock) Pause() {
	c.playing = false
}

// Toggle switches between playing and paused.
func (c *Clock) Toggle() {
	if c.playing {
		c.Pause()
	} else {
		c.Play()
	}
}

// Stop halts playback and rewinds to 0.
func (c *Clock) Stop() {
	c.playing = false
	c.current = 0
}

// Seek moves to t (ms), clamped to [0, total].
func (c *Clock) Seek(t float64) {
	if t < 0 {
		t = 0
	}
	if t > c.total {
		t = c.total
	}
	c.current = t
}

// Advance moves the clock forward by elapsed times the speed factor.
// Reaching the total clamps the position and pauses. It reports whether
// the clock is still playing afterwards.
func (c *Clock) Advance(elapsed time.Duration) bool {
	if !c.playing {
		return false
	}

	c.current += float64(elapsed) / float64(time.Millisecond) * c.speed
	if c.current >= c.total {
		c.current = c.total
		c.playing = false
	}

	return c.playing
}
