package component

import "github.com/hajimehoshi/ebiten/v2"

// DefaultAnimationSpeed is the fraction of a frame advanced per update tick.
const DefaultAnimationSpeed = 0.15

// Animation steps through a list of frames at a fractional rate per tick.
type Animation struct {
	Frames []*ebiten.Image
	Speed  float64
	Loop   bool

	index float64
	done  bool
}

func NewAnimation(frames []*ebiten.Image, speed float64, loop bool) *Animation {
	if speed <= 0 {
		speed = DefaultAnimationSpeed
	}
	return &Animation{Frames: frames, Speed: speed, Loop: loop}
}

// SetFrames swaps the frame list, keeping the position when it still fits.
func (a *Animation) SetFrames(frames []*ebiten.Image) {
	if a == nil {
		return
	}
	a.Frames = frames
	if int(a.index) >= len(frames) {
		a.index = 0
	}
}

// Update advances the animation. A non-looping animation reports done once it
// runs past its last frame.
func (a *Animation) Update() {
	if a == nil || a.done {
		return
	}
	a.index += a.Speed
	if int(a.index) < len(a.Frames) {
		return
	}
	if a.Loop && len(a.Frames) > 0 {
		a.index = 0
		return
	}
	a.done = true
}

// Done reports whether a non-looping animation has finished.
func (a *Animation) Done() bool {
	return a != nil && a.done
}

// Frame returns the current frame, or nil when there are no frames.
func (a *Animation) Frame() *ebiten.Image {
	if a == nil || len(a.Frames) == 0 {
		return nil
	}
	i := int(a.index)
	if i >= len(a.Frames) {
		i = len(a.Frames) - 1
	}
	return a.Frames[i]
}

// ImageSize returns the pixel size of img, or the fallback for a nil image.
func ImageSize(img *ebiten.Image, fallbackW, fallbackH float64) (float64, float64) {
	if img == nil {
		return fallbackW, fallbackH
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Reset rewinds the animation to its first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.index = 0
	a.done = false
}
