package bracken

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Follower eases a point toward the pointer's latest position instead of
// snapping to it. Every coalesced move retargets the tween from the current
// eased position, so the follower stays smooth through bursty input. Typical
// uses: a soft cursor, a camera that trails the pointer, drag ghosts.
type Follower struct {
	duration float32
	easeFn   ease.TweenFunc

	x, y   float32
	tweenX *gween.Tween
	tweenY *gween.Tween
}

// NewFollower creates a Follower driven by p's move events. Duration is the
// time to reach a newly observed position, easeFn shapes the approach (e.g.
// ease.OutQuad).
func NewFollower(p *Pointer, duration float32, easeFn ease.TweenFunc) *Follower {
	f := &Follower{duration: duration, easeFn: easeFn}
	p.OnMove(func(e *PointerEvent) {
		f.retarget(e.Pos)
	})
	return f
}

// SnapTo moves the follower to pos immediately, cancelling any tween in
// flight.
func (f *Follower) SnapTo(pos Vector) {
	f.x = float32(pos.X)
	f.y = float32(pos.Y)
	f.tweenX = nil
	f.tweenY = nil
}

func (f *Follower) retarget(target Vector) {
	f.tweenX = gween.New(f.x, float32(target.X), f.duration, f.easeFn)
	f.tweenY = gween.New(f.y, float32(target.Y), f.duration, f.easeFn)
}

// Update advances the follower by dt seconds and returns the eased position.
func (f *Follower) Update(dt float32) Vector {
	if f.tweenX != nil {
		v, done := f.tweenX.Update(dt)
		f.x = v
		if done {
			f.tweenX = nil
		}
	}
	if f.tweenY != nil {
		v, done := f.tweenY.Update(dt)
		f.y = v
		if done {
			f.tweenY = nil
		}
	}
	return f.Pos()
}

// Pos returns the follower's current eased position.
func (f *Follower) Pos() Vector {
	return Vector{X: float64(f.x), Y: float64(f.y)}
}
