package game

import "time"

// Clock yields monotonic timestamps in milliseconds.
type Clock interface {
	NowMs() float64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() float64

func (f ClockFunc) NowMs() float64 { return f() }

// SystemClock measures time since it was created using the monotonic clock.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) NowMs() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// ManualClock is a Clock advanced by hand, for tests and replays.
type ManualClock struct {
	Ms float64
}

func (c *ManualClock) NowMs() float64 { return c.Ms }

// Advance moves the clock forward by ms.
func (c *ManualClock) Advance(ms float64) { c.Ms += ms }
