package component

import (
	"math"
	"time"
)

// Vulnerability gates damage. After a hit the owner stays invulnerable for
// Window; the owner's update calls Tick to reopen the gate.
type Vulnerability struct {
	Vulnerable bool
	HurtAt     time.Duration
	Window     time.Duration
}

func NewVulnerability(window time.Duration) Vulnerability {
	return Vulnerability{Vulnerable: true, Window: window}
}

// Hurt closes the gate. It returns false if the gate was already closed.
func (v *Vulnerability) Hurt(now time.Duration) bool {
	if v == nil || !v.Vulnerable {
		return false
	}
	v.Vulnerable = false
	v.HurtAt = now
	return true
}

// Tick reopens the gate once the window has elapsed.
func (v *Vulnerability) Tick(now time.Duration) {
	if v == nil || v.Vulnerable {
		return
	}
	if now-v.HurtAt >= v.Window {
		v.Vulnerable = true
	}
}

// Flicker returns the draw alpha: blinking while invulnerable, opaque otherwise.
func (v *Vulnerability) Flicker(now time.Duration) float32 {
	if v == nil || v.Vulnerable {
		return 1
	}
	if math.Sin(float64(now.Milliseconds())) >= 0 {
		return 1
	}
	return 0
}
