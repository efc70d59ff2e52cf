package bracken

import (
	"math"
	"testing"
)

func assertMatrix(t *testing.T, name string, got, want Matrix) {
	t.Helper()
	pairs := [6][2]float64{
		{got.A, want.A}, {got.B, want.B}, {got.C, want.C},
		{got.D, want.D}, {got.TX, want.TX}, {got.TY, want.TY},
	}
	for i, p := range pairs {
		if math.Abs(p[0]-p[1]) > epsilon {
			t.Errorf("%s component %d = %v, want %v (full: %+v vs %+v)", name, i, p[0], p[1], got, want)
			return
		}
	}
}

func TestMatrixMultiplyIdentity(t *testing.T) {
	m := Matrix{A: 2, B: 1, C: 3, D: 4, TX: 5, TY: 6}
	assertMatrix(t, "id*m", Identity().Multiply(m), m)
	assertMatrix(t, "m*id", m.Multiply(Identity()), m)
}

func TestMatrixMultiplyTranslations(t *testing.T) {
	got := Translation(10, 20).Multiply(Translation(5, 3))
	assertMatrix(t, "translations", got, Translation(15, 23))
}

func TestMatrixInverseRoundTrip(t *testing.T) {
	m := Translation(10, 20).Multiply(Rotation(0.7)).Multiply(Scaling(2, 3))
	assertMatrix(t, "m*inv", m.Multiply(m.Inverse()), Identity())
	assertMatrix(t, "inv*m", m.Inverse().Multiply(m), Identity())
}

func TestMatrixSingularInverseIsIdentity(t *testing.T) {
	assertMatrix(t, "singular inverse", Scaling(0, 0).Inverse(), Identity())
}

func TestMatrixApply(t *testing.T) {
	tests := []struct {
		name         string
		m            Matrix
		x, y         float64
		wantX, wantY float64
	}{
		{"identity", Identity(), 3, 4, 3, 4},
		{"translate", Translation(10, 20), 3, 4, 13, 24},
		{"scale", Scaling(2, 3), 3, 4, 6, 12},
		{"rotate 90", Rotation(math.Pi / 2), 1, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.m.Apply(tt.x, tt.y)
			assertNear(t, "x", x, tt.wantX)
			assertNear(t, "y", y, tt.wantY)
		})
	}
}

func TestComposeIdentity(t *testing.T) {
	got := Compose(0, 0, 1, 1, 0, 0, 0, 0, 0)
	assertMatrix(t, "compose identity", got, Identity())
}

func TestComposePivot(t *testing.T) {
	// Translate(100,200) * Translate(-16,-16)
	got := Compose(100, 200, 1, 1, 0, 0, 0, 16, 16)
	assertMatrix(t, "compose pivot", got, Translation(84, 184))
}

func TestComposeScaleRotate(t *testing.T) {
	// Scale(2,2) then Rotate(90°), then Translate(50,100).
	got := Compose(50, 100, 2, 2, math.Pi/2, 0, 0, 0, 0)
	assertMatrix(t, "compose scale+rotate", got, Matrix{A: 0, B: 2, C: -2, D: 0, TX: 50, TY: 100})
}

func TestComposeSkew(t *testing.T) {
	got := Compose(0, 0, 1, 1, 0, math.Pi/4, 0, 0, 0)
	assertMatrix(t, "compose skew", got, Matrix{A: 1, B: 0, C: 1, D: 1})
}
