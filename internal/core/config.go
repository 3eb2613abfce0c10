package core

import "time"

// MaxFrameDelta caps a single update step so a stall (window drag, slow SSH
// link) cannot jump animations or the timer forward.
const MaxFrameDelta = 0.1

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Initial window width in device pixels
	ScreenH  int   // Initial window height in device pixels
	TickRate int   // Frames per second requested from the front-end (default 60)
	Seed     int64 // RNG seed for the shuffle; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  1920,
		ScreenH:  1080,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameClock measures real elapsed time between frames.
type FrameClock struct {
	last    time.Time
	started bool
}

// Tick returns the seconds elapsed since the previous Tick, clamped to
// [0, MaxFrameDelta]. The first call returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampF(dt, 0, MaxFrameDelta)
}
