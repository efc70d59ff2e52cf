package bracken

// RenderTarget exposes what the coordinate translator needs from the surface
// the game is drawn to: its logical pixel size and where it currently sits in
// viewport (client) coordinates. The two can differ when the surface is
// scaled by the window system or by CSS-style layout.
type RenderTarget interface {
	// LogicalSize returns the target's drawing-buffer dimensions in
	// logical pixels.
	LogicalSize() (width, height float64)
	// BoundingRect returns the target's displayed position and size in
	// viewport coordinates.
	BoundingRect() Rect
}

// TransformResolver exposes the owning entity's current world transform.
// The matrix must have a usable Inverse; Spatial is the built-in
// implementation.
type TransformResolver interface {
	WorldMatrix() Matrix
}

// FixedTarget is a RenderTarget with static geometry, for hosts whose
// surface never moves or scales (and for tests).
type FixedTarget struct {
	Width, Height float64 // logical pixels
	Rect          Rect    // displayed bounds in viewport coordinates
}

// LogicalSize returns the target's logical dimensions.
func (t FixedTarget) LogicalSize() (float64, float64) { return t.Width, t.Height }

// BoundingRect returns the target's displayed bounds.
func (t FixedTarget) BoundingRect() Rect { return t.Rect }

// Translator maps raw viewport-space pointer coordinates into an entity's
// local coordinate space.
type Translator struct {
	Target    RenderTarget
	Transform TransformResolver // nil means identity (world space = local space)
}

// ToLocal converts a viewport-space (client) coordinate into the entity's
// local space. The stages run in a fixed order, each depending on the last:
//
//  1. read the target's bounding rect and logical size;
//  2. per-axis scale factor = displayed size / logical size;
//  3. subtract the rect origin and divide by the scale factors, yielding
//     logical-pixel coordinates on the target;
//  4. apply the inverse of the entity's world matrix.
//
// A target with zero logical width or height makes the scale factors
// non-finite; the NaN/Inf result propagates to the caller unguarded.
func (t Translator) ToLocal(client Vector) Vector {
	rect := t.Target.BoundingRect()
	logicalW, logicalH := t.Target.LogicalSize()

	scaleX := rect.Width / logicalW
	scaleY := rect.Height / logicalH

	canvas := Vector{
		X: (client.X - rect.X) / scaleX,
		Y: (client.Y - rect.Y) / scaleY,
	}

	if t.Transform == nil {
		return canvas
	}
	return canvas.Transform(t.Transform.WorldMatrix().Inverse())
}

// ToScreen is the forward composition of ToLocal: it maps an entity-local
// point back to viewport coordinates.
func (t Translator) ToScreen(local Vector) Vector {
	world := local
	if t.Transform != nil {
		world = local.Transform(t.Transform.WorldMatrix())
	}

	rect := t.Target.BoundingRect()
	logicalW, logicalH := t.Target.LogicalSize()

	return Vector{
		X: world.X*(rect.Width/logicalW) + rect.X,
		Y: world.Y*(rect.Height/logicalH) + rect.Y,
	}
}
