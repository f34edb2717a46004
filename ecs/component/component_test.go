package component

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestCooldown(t *testing.T) {
	c := Cooldown{Length: 400 * time.Millisecond}
	assert.True(t, c.Ready(0), "idle cooldown is ready")

	c.Start(100 * time.Millisecond)
	assert.False(t, c.Ready(499*time.Millisecond))
	assert.True(t, c.Ready(500*time.Millisecond))
	assert.False(t, c.Active)
}

func TestVulnerability(t *testing.T) {
	v := NewVulnerability(500 * time.Millisecond)
	assert.Equal(t, float32(1), v.Flicker(0))

	assert.True(t, v.Hurt(time.Second))
	assert.False(t, v.Hurt(time.Second+time.Millisecond))
	assert.Equal(t, time.Second, v.HurtAt)

	v.Tick(1400 * time.Millisecond)
	assert.False(t, v.Vulnerable)
	v.Tick(1500 * time.Millisecond)
	assert.True(t, v.Vulnerable)
}

func TestVulnerabilityFlickerBlinks(t *testing.T) {
	v := NewVulnerability(time.Second)
	v.Hurt(0)
	seen := map[float32]bool{}
	for ms := 0; ms < 20; ms++ {
		seen[v.Flicker(time.Duration(ms)*time.Millisecond)] = true
	}
	assert.True(t, seen[0])
	assert.True(t, seen[1])
}

func TestAnimation(t *testing.T) {
	cases := []struct {
		name     string
		frames   int
		loop     bool
		updates  int
		wantDone bool
	}{
		{"empty one-shot finishes at once", 0, false, 1, true},
		{"one-shot mid way", 2, false, 10, false},
		{"one-shot past the end", 2, false, 14, true},
		{"looping never finishes", 2, true, 100, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAnimation(make([]*ebiten.Image, c.frames), 0.15, c.loop)
			for i := 0; i < c.updates; i++ {
				a.Update()
			}
			assert.Equal(t, c.wantDone, a.Done())
		})
	}
}

func TestAnimationReset(t *testing.T) {
	a := NewAnimation(nil, 0, false)
	assert.Equal(t, DefaultAnimationSpeed, a.Speed)
	a.Update()
	assert.True(t, a.Done())
	a.Reset()
	assert.False(t, a.Done())
	assert.Nil(t, a.Frame())
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "grass", Grass.String())
	assert.Equal(t, "unknown", Category(0).String())
	assert.True(t, Magic.IsAttack())
	assert.True(t, Weapon.IsAttack())
	assert.False(t, Particle.IsAttack())
}
