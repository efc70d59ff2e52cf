package bracken

// Spatial is a minimal transform node: a position, scale, rotation, skew and
// pivot, optionally parented to another Spatial. It implements
// TransformResolver, which is all the input pipeline needs from a scene
// graph; engines with their own hierarchy supply their own resolver instead.
//
// Matrices are recomputed on demand rather than cached; the input path reads
// the world matrix at most a few times per frame.
type Spatial struct {
	Parent *Spatial

	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	SkewX, SkewY float64
	PivotX       float64
	PivotY       float64
}

// NewSpatial returns a Spatial with unit scale at the origin.
func NewSpatial() *Spatial {
	return &Spatial{ScaleX: 1, ScaleY: 1}
}

// LocalMatrix returns the transform mapping this node's local space into its
// parent's space.
func (s *Spatial) LocalMatrix() Matrix {
	return Compose(s.X, s.Y, s.ScaleX, s.ScaleY, s.Rotation, s.SkewX, s.SkewY, s.PivotX, s.PivotY)
}

// WorldMatrix returns the transform mapping this node's local space into
// world space, composing every ancestor's local matrix.
func (s *Spatial) WorldMatrix() Matrix {
	m := s.LocalMatrix()
	for p := s.Parent; p != nil; p = p.Parent {
		m = p.LocalMatrix().Multiply(m)
	}
	return m
}

// WorldToLocal converts a world-space point into this node's local space.
func (s *Spatial) WorldToLocal(p Vector) Vector {
	return p.Transform(s.WorldMatrix().Inverse())
}

// LocalToWorld converts a local-space point into world space.
func (s *Spatial) LocalToWorld(p Vector) Vector {
	return p.Transform(s.WorldMatrix())
}
