package bracken

import (
	"math"
	"testing"
)

func TestTranslatorIdentity(t *testing.T) {
	tr := Translator{Target: FixedTarget{
		Width: 640, Height: 480,
		Rect: Rect{Width: 640, Height: 480},
	}}
	assertVector(t, "identity", tr.ToLocal(Vector{X: 100, Y: 200}), Vector{X: 100, Y: 200})
}

func TestTranslatorOffsetAndScale(t *testing.T) {
	// Target is displayed at (10, 20), scaled 2x in both axes.
	tr := Translator{Target: FixedTarget{
		Width: 100, Height: 50,
		Rect: Rect{X: 10, Y: 20, Width: 200, Height: 100},
	}}
	assertVector(t, "offset+scale", tr.ToLocal(Vector{X: 30, Y: 40}), Vector{X: 10, Y: 10})
}

func TestTranslatorIndependentAxisScale(t *testing.T) {
	tr := Translator{Target: FixedTarget{
		Width: 100, Height: 100,
		Rect: Rect{Width: 200, Height: 50},
	}}
	assertVector(t, "per-axis scale", tr.ToLocal(Vector{X: 100, Y: 25}), Vector{X: 50, Y: 50})
}

func TestTranslatorInverseWorldTransform(t *testing.T) {
	entity := NewSpatial()
	entity.X, entity.Y = 50, 30
	entity.ScaleX, entity.ScaleY = 2, 2

	tr := Translator{
		Target: FixedTarget{
			Width: 640, Height: 480,
			Rect: Rect{Width: 640, Height: 480},
		},
		Transform: entity,
	}
	// (150, 130) canvas - (50, 30) origin, then /2.
	assertVector(t, "inverse world", tr.ToLocal(Vector{X: 150, Y: 130}), Vector{X: 50, Y: 50})
}

func TestTranslatorRoundTrip(t *testing.T) {
	// translate composed with the forward transform recovers the original
	// screen coordinate (scale 1, identity entity transform).
	tr := Translator{
		Target: FixedTarget{
			Width: 640, Height: 480,
			Rect: Rect{Width: 640, Height: 480},
		},
		Transform: NewSpatial(),
	}
	screen := Vector{X: 123.5, Y: 77.25}
	assertVector(t, "round trip", tr.ToScreen(tr.ToLocal(screen)), screen)
}

func TestTranslatorRoundTripScaledAndTransformed(t *testing.T) {
	entity := NewSpatial()
	entity.X = 12
	entity.Rotation = 0.4
	entity.ScaleX, entity.ScaleY = 1.5, 0.75

	tr := Translator{
		Target: FixedTarget{
			Width: 320, Height: 240,
			Rect: Rect{X: 8, Y: 16, Width: 640, Height: 480},
		},
		Transform: entity,
	}
	screen := Vector{X: 200, Y: 150}
	assertVector(t, "scaled round trip", tr.ToScreen(tr.ToLocal(screen)), screen)
}

func TestTranslatorZeroSizeTargetPropagatesNonFinite(t *testing.T) {
	// A zero-area target is numerically undefined, not an error: the
	// non-finite scale factors flow through unguarded.
	tr := Translator{Target: FixedTarget{Width: 0, Height: 0}}
	got := tr.ToLocal(Vector{X: 30, Y: 40})
	if !math.IsNaN(got.X) || !math.IsNaN(got.Y) {
		t.Errorf("expected NaN components from zero-size target, got %v", got)
	}
}
