package component

import "time"

// Cooldown tracks a single timed action such as an attack or a weapon switch.
type Cooldown struct {
	Length  time.Duration
	Started time.Duration
	Active  bool
}

// Start begins the cooldown at now.
func (c *Cooldown) Start(now time.Duration) {
	c.Started = now
	c.Active = true
}

// Ready reports whether the action may be used again, clearing the cooldown
// when it has elapsed.
func (c *Cooldown) Ready(now time.Duration) bool {
	if !c.Active {
		return true
	}
	if now-c.Started >= c.Length {
		c.Active = false
		return true
	}
	return false
}
