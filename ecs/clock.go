package ecs

import (
	"time"

	"github.com/milk9111/topdown/common"
)

// FrameTime is the simulated duration of one update tick.
const FrameTime = time.Second / common.FPS

// Clock is simulation time. It only advances while the simulation runs, so
// timers (cooldowns, invulnerability) freeze while the game is paused.
type Clock struct {
	now time.Duration
}

// Now returns the elapsed simulation time.
func (c *Clock) Now() time.Duration {
	if c == nil {
		return 0
	}
	return c.now
}

// Tick advances the clock by one frame.
func (c *Clock) Tick() {
	c.now += FrameTime
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}
