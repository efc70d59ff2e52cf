package bracken

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFollowerEasesTowardPointer(t *testing.T) {
	p, source := newTestPointer(t)
	f := NewFollower(p, 1.0, ease.Linear)

	source.EmitMove(100, 50, 0)
	p.Tick()

	got := f.Update(0.5)
	assertVector(t, "halfway", got, Vector{X: 50, Y: 25})

	got = f.Update(0.5)
	assertVector(t, "arrived", got, Vector{X: 100, Y: 50})

	// Past the end the follower holds position.
	got = f.Update(1.0)
	assertVector(t, "holds", got, Vector{X: 100, Y: 50})
}

func TestFollowerRetargetsMidFlight(t *testing.T) {
	p, source := newTestPointer(t)
	f := NewFollower(p, 1.0, ease.Linear)

	source.EmitMove(100, 0, 0)
	p.Tick()
	f.Update(0.5) // at (50, 0)

	source.EmitMove(0, 0, 0)
	p.Tick()

	// New tween starts from the eased position, not the old target.
	got := f.Update(0.5)
	assertVector(t, "mid-flight retarget", got, Vector{X: 25, Y: 0})
}

func TestFollowerSnapTo(t *testing.T) {
	p, source := newTestPointer(t)
	f := NewFollower(p, 1.0, ease.Linear)

	source.EmitMove(100, 100, 0)
	p.Tick()

	f.SnapTo(Vector{X: 7, Y: 8})
	got := f.Update(0.25)
	assertVector(t, "snap cancels tween", got, Vector{X: 7, Y: 8})
}
