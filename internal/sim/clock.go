package sim

import "time"

// TimeSource supplies wall-clock readings to the pause clock
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the real monotonic clock
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }

// ManualTime is a controllable time source for tests and replays
type ManualTime struct {
	current time.Time
}

// NewManualTime creates a manual time source starting at start
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{current: start}
}

func (m *ManualTime) Now() time.Time { return m.current }

// Advance moves the manual clock forward by d
func (m *ManualTime) Advance(d time.Duration) { m.current = m.current.Add(d) }

// PauseClock converts wall time into game time that excludes paused intervals.
// It is driven from the frame loop only and is not safe for concurrent use.
type PauseClock struct {
	src TimeSource

	start       time.Time
	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPauseClock creates a clock started at the source's current time
func NewPauseClock(src TimeSource) *PauseClock {
	if src == nil {
		src = SystemTime{}
	}
	c := &PauseClock{src: src}
	c.Reset()
	return c
}

// Reset restarts game time at zero with no pause history
func (c *PauseClock) Reset() {
	c.start = c.src.Now()
	c.paused = false
	c.pauseStart = time.Time{}
	c.totalPaused = 0
}

// SetPaused records pause transitions; repeating the current state is a no-op
func (c *PauseClock) SetPaused(paused bool) {
	if paused == c.paused {
		return
	}
	now := c.src.Now()
	if paused {
		c.pauseStart = now
	} else {
		c.totalPaused += now.Sub(c.pauseStart)
		c.pauseStart = time.Time{}
	}
	c.paused = paused
}

// Paused reports whether game time is currently frozen
func (c *PauseClock) Paused() bool { return c.paused }

// Elapsed returns game seconds since Reset, frozen while paused
func (c *PauseClock) Elapsed() float64 {
	now := c.src.Now()
	if c.paused {
		now = c.pauseStart
	}
	return (now.Sub(c.start) - c.totalPaused).Seconds()
}

// RealElapsed returns wall seconds since Reset, including pauses
func (c *PauseClock) RealElapsed() float64 {
	return c.src.Now().Sub(c.start).Seconds()
}

// TotalPaused returns cumulative pause time including the current pause
func (c *PauseClock) TotalPaused() time.Duration {
	total := c.totalPaused
	if c.paused {
		total += c.src.Now().Sub(c.pauseStart)
	}
	return total
}
