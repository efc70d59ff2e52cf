package bracken

import "math"

// Matrix is a 2D affine transform in homogeneous form:
//
//	| A  C  TX |
//	| B  D  TY |
//	| 0  0   1 |
//
// The zero value is NOT the identity; use Identity.
type Matrix struct {
	A, B, C, D, TX, TY float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translation returns a matrix that translates by (tx, ty).
func Translation(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, TX: tx, TY: ty}
}

// Scaling returns a matrix that scales by (sx, sy).
func Scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotation returns a matrix that rotates by the given angle in radians
// (standard mathematical direction in the underlying coordinate system).
func Rotation(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Multiply returns m * other, the matrix that applies other first and m
// second.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A:  m.A*other.A + m.C*other.B,
		B:  m.B*other.A + m.D*other.B,
		C:  m.A*other.C + m.C*other.D,
		D:  m.B*other.C + m.D*other.D,
		TX: m.A*other.TX + m.C*other.TY + m.TX,
		TY: m.B*other.TX + m.D*other.TY + m.TY,
	}
}

// Inverse returns the inverse of m. A singular matrix (determinant ~ 0)
// inverts to the identity rather than producing non-finite components.
func (m Matrix) Inverse() Matrix {
	det := m.A*m.D - m.C*m.B
	if det > -1e-12 && det < 1e-12 {
		return Identity()
	}
	invDet := 1.0 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	return Matrix{
		A: a, B: b, C: c, D: d,
		TX: -(a*m.TX + c*m.TY),
		TY: -(b*m.TX + d*m.TY),
	}
}

// Apply maps the point (x, y) through the matrix.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.TX, m.B*x + m.D*y + m.TY
}

// Compose builds a local transform from the usual node properties.
//
// Composition order:
//
//	Translate(-pivotX, -pivotY) -> Scale -> Skew -> Rotate -> Translate(x, y)
func Compose(x, y, scaleX, scaleY, rotation, skewX, skewY, pivotX, pivotY float64) Matrix {
	sin, cos := math.Sincos(rotation)

	var tanSkewX, tanSkewY float64
	if skewX != 0 {
		tanSkewX = math.Tan(skewX)
	}
	if skewY != 0 {
		tanSkewY = math.Tan(skewY)
	}

	// After Scale * Translate(-pivot), then Skew:
	a := scaleX
	b := tanSkewY * scaleX
	c := tanSkewX * scaleY
	d := scaleY

	preTx := -pivotX*scaleX - tanSkewX*pivotY*scaleY
	preTy := -tanSkewY*pivotX*scaleX - pivotY*scaleY

	// After Rotate and the final Translate:
	return Matrix{
		A:  cos*a - sin*b,
		B:  sin*a + cos*b,
		C:  cos*c - sin*d,
		D:  sin*c + cos*d,
		TX: cos*preTx - sin*preTy + x,
		TY: sin*preTx + cos*preTy + y,
	}
}
