package bracken

import "math"

// Vector is a 2D vector used for positions, offsets, deltas, and directions
// throughout the API. The zero value is the origin.
//
// Value-receiver methods are pure and return a new Vector; the *Mutate
// variants alter the receiver in place and return it for chaining.
type Vector struct {
	X, Y float64
}

// Point is an alias for Vector; positions and directions share one type.
type Point = Vector

// Magnitude returns the Euclidean length of the vector.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the vector's angle in radians.
//
// Angles use an inverted-y convention: Y is negated around the trig calls so
// that angle arithmetic reads naturally in the y-down screen coordinate
// system. This differs from the plain mathematical convention; the same sign
// flip is applied by SetAngle and Rotate, so the pair round-trips.
func (v Vector) Angle() float64 {
	y := -v.Y
	if v.Y == 0 {
		// Negating +0 yields -0, and Atan2(-0, x) sits on the wrong side
		// of the branch cut for negative x: a vector pointing left must
		// read +π, not -π.
		y = 0
	}
	return math.Atan2(y, v.X)
}

// WithMagnitude returns a vector with the given magnitude and the receiver's
// angle.
func (v Vector) WithMagnitude(m float64) Vector {
	out := v
	out.SetMagnitude(m)
	return out
}

// SetMagnitude sets the vector's magnitude in place, preserving its angle,
// and returns the receiver.
func (v *Vector) SetMagnitude(m float64) *Vector {
	a := v.Angle()
	sin, cos := math.Sincos(a)
	v.X = m * cos
	v.Y = -m * sin
	return v
}

// WithAngle returns a vector with the given angle and the receiver's
// magnitude. The angle convention is documented on Angle.
func (v Vector) WithAngle(a float64) Vector {
	out := v
	out.SetAngle(a)
	return out
}

// SetAngle sets the vector's angle in place, preserving its magnitude, and
// returns the receiver.
func (v *Vector) SetAngle(a float64) *Vector {
	m := v.Magnitude()
	sin, cos := math.Sincos(a)
	v.X = m * cos
	v.Y = -m * sin
	return v
}

// --- Addition ---

// Add returns v + other.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

// AddMutate adds other to v in place.
func (v *Vector) AddMutate(other Vector) *Vector {
	v.X += other.X
	v.Y += other.Y
	return v
}

// AddScalar returns a vector with s added to both components.
func (v Vector) AddScalar(s float64) Vector {
	return Vector{v.X + s, v.Y + s}
}

// AddScalarMutate adds s to both components in place.
func (v *Vector) AddScalarMutate(s float64) *Vector {
	v.X += s
	v.Y += s
	return v
}

// AddX returns a vector with dx added to the X component.
func (v Vector) AddX(dx float64) Vector {
	return Vector{v.X + dx, v.Y}
}

// AddXMutate adds dx to the X component in place.
func (v *Vector) AddXMutate(dx float64) *Vector {
	v.X += dx
	return v
}

// AddY returns a vector with dy added to the Y component.
func (v Vector) AddY(dy float64) Vector {
	return Vector{v.X, v.Y + dy}
}

// AddYMutate adds dy to the Y component in place.
func (v *Vector) AddYMutate(dy float64) *Vector {
	v.Y += dy
	return v
}

// --- Subtraction ---

// Subtract returns v - other.
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

// SubtractMutate subtracts other from v in place.
func (v *Vector) SubtractMutate(other Vector) *Vector {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// SubtractScalar returns a vector with s subtracted from both components.
func (v Vector) SubtractScalar(s float64) Vector {
	return Vector{v.X - s, v.Y - s}
}

// SubtractScalarMutate subtracts s from both components in place.
func (v *Vector) SubtractScalarMutate(s float64) *Vector {
	v.X -= s
	v.Y -= s
	return v
}

// SubtractX returns a vector with dx subtracted from the X component.
func (v Vector) SubtractX(dx float64) Vector {
	return Vector{v.X - dx, v.Y}
}

// SubtractXMutate subtracts dx from the X component in place.
func (v *Vector) SubtractXMutate(dx float64) *Vector {
	v.X -= dx
	return v
}

// SubtractY returns a vector with dy subtracted from the Y component.
func (v Vector) SubtractY(dy float64) Vector {
	return Vector{v.X, v.Y - dy}
}

// SubtractYMutate subtracts dy from the Y component in place.
func (v *Vector) SubtractYMutate(dy float64) *Vector {
	v.Y -= dy
	return v
}

// --- Multiplication ---

// Multiply returns the component-wise product of v and other.
func (v Vector) Multiply(other Vector) Vector {
	return Vector{v.X * other.X, v.Y * other.Y}
}

// MultiplyMutate multiplies v by other component-wise in place.
func (v *Vector) MultiplyMutate(other Vector) *Vector {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// MultiplyScalar returns v scaled by s.
func (v Vector) MultiplyScalar(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// MultiplyScalarMutate scales v by s in place.
func (v *Vector) MultiplyScalarMutate(s float64) *Vector {
	v.X *= s
	v.Y *= s
	return v
}

// MultiplyX returns a vector with the X component scaled by s.
func (v Vector) MultiplyX(s float64) Vector {
	return Vector{v.X * s, v.Y}
}

// MultiplyXMutate scales the X component by s in place.
func (v *Vector) MultiplyXMutate(s float64) *Vector {
	v.X *= s
	return v
}

// MultiplyY returns a vector with the Y component scaled by s.
func (v Vector) MultiplyY(s float64) Vector {
	return Vector{v.X, v.Y * s}
}

// MultiplyYMutate scales the Y component by s in place.
func (v *Vector) MultiplyYMutate(s float64) *Vector {
	v.Y *= s
	return v
}

// --- Division ---

// Divide returns the component-wise quotient of v and other.
func (v Vector) Divide(other Vector) Vector {
	return Vector{v.X / other.X, v.Y / other.Y}
}

// DivideMutate divides v by other component-wise in place.
func (v *Vector) DivideMutate(other Vector) *Vector {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// DivideScalar returns v divided by s.
func (v Vector) DivideScalar(s float64) Vector {
	return Vector{v.X / s, v.Y / s}
}

// DivideScalarMutate divides v by s in place.
func (v *Vector) DivideScalarMutate(s float64) *Vector {
	v.X /= s
	v.Y /= s
	return v
}

// DivideX returns a vector with the X component divided by s.
func (v Vector) DivideX(s float64) Vector {
	return Vector{v.X / s, v.Y}
}

// DivideXMutate divides the X component by s in place.
func (v *Vector) DivideXMutate(s float64) *Vector {
	v.X /= s
	return v
}

// DivideY returns a vector with the Y component divided by s.
func (v Vector) DivideY(s float64) Vector {
	return Vector{v.X, v.Y / s}
}

// DivideYMutate divides the Y component by s in place.
func (v *Vector) DivideYMutate(s float64) *Vector {
	v.Y /= s
	return v
}

// --- Derived operations ---

// Normalize returns a unit-length vector with the receiver's direction.
// A zero-length vector normalizes to NaN components; callers must guard
// against zero magnitude themselves.
func (v Vector) Normalize() Vector {
	return v.DivideScalar(v.Magnitude())
}

// NormalizeMutate normalizes v in place. See Normalize for the zero-length
// caveat.
func (v *Vector) NormalizeMutate() *Vector {
	return v.DivideScalarMutate(v.Magnitude())
}

// Rotate returns a vector rotated by the given amount in radians, preserving
// magnitude. The sign convention is documented on Angle.
func (v Vector) Rotate(radians float64) Vector {
	return v.WithAngle(v.Angle() + radians)
}

// RotateMutate rotates v in place by the given amount in radians.
func (v *Vector) RotateMutate(radians float64) *Vector {
	return v.SetAngle(v.Angle() + radians)
}

// Transform returns the vector mapped through the affine matrix m.
func (v Vector) Transform(m Matrix) Vector {
	x, y := m.Apply(v.X, v.Y)
	return Vector{x, y}
}

// TransformMutate maps v through the affine matrix m in place.
func (v *Vector) TransformMutate(m Matrix) *Vector {
	v.X, v.Y = m.Apply(v.X, v.Y)
	return v
}

// DistanceTo returns the Euclidean distance between v and other.
func (v Vector) DistanceTo(other Vector) float64 {
	return math.Hypot(other.X-v.X, other.Y-v.Y)
}
