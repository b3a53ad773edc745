package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_AdvanceWhilePlaying(t *testing.T) {
	c := NewClock(1000)

	assert.False(t, c.Advance(100*time.Millisecond), "stopped clock must not move")
	assert.Zero(t, c.Time())

	c.Play()
	assert.True(t, c.Advance(250*time.Millisecond))
	assert.Equal(t, 250.0, c.Time())

	c.SetSpeed(2)
	c.Advance(100 * time.Millisecond)
	assert.Equal(t, 450.0, c.Time())
}

func TestClock_ClampsAtEndAndPauses(t *testing.T) {
	c := NewClock(300)
	c.Play()

	assert.False(t, c.Advance(time.Second))
	assert.Equal(t, 300.0, c.Time())
	assert.False(t, c.Playing())

	// Playing again from the end restarts.
	c.Play()
	assert.Zero(t, c.Time())
	assert.True(t, c.Playing())
}

func TestClock_Seek(t *testing.T) {
	c := NewClock(500)

	c.Seek(120)
	assert.Equal(t, 120.0, c.Time())
	c.Seek(-10)
	assert.Zero(t, c.Time())
	c.Seek(9000)
	assert.Equal(t, 500.0, c.Time())
}

func TestClock_StopAndToggle(t *testing.T) {
	c := NewClock(500)
	c.Toggle()
	assert.True(t, c.Playing())
	c.Advance(100 * time.Millisecond)

	c.Toggle()
	assert.False(t, c.Playing())
	assert.Equal(t, 100.0, c.Time())

	c.Stop()
	assert.False(t, c.Playing())
	assert.Zero(t, c.Time())
}

func TestClock_SpeedAndTotal(t *testing.T) {
	c := NewClock(-5)
	assert.Zero(t, c.Total())

	c.SetSpeed(0)
	assert.Equal(t, 1.0, c.Speed())
	c.SetSpeed(0.5)
	assert.Equal(t, 0.5, c.Speed())

	c.SetTotal(800)
	c.Seek(400)
	c.SetTotal(900)
	assert.Zero(t, c.Time(), "changing total rewinds")
	assert.Equal(t, 900.0, c.Total())
}
