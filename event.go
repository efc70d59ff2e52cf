package bracken

// PointerEvent is the mutable snapshot of the pointer's state handed to every
// listener. Each Pointer owns exactly one instance, created at construction
// and mutated in place on every dispatch; Pos and Delta are reused as scratch
// buffers across frames. Listeners that retain data past their own invocation
// must copy it (Clone, or copy the Vector values out).
type PointerEvent struct {
	// Pos is the pointer position in the owning entity's local space.
	Pos Vector
	// Delta is the movement since the previous dispatch, in local space.
	Delta Vector

	Left   bool
	Right  bool
	Middle bool
	Aux1   bool
	Aux2   bool
}

// Pressed reports whether the given button is down in this snapshot.
func (e *PointerEvent) Pressed(b MouseButton) bool {
	switch b {
	case MouseButtonLeft:
		return e.Left
	case MouseButtonMiddle:
		return e.Middle
	case MouseButtonRight:
		return e.Right
	case MouseButtonAux1:
		return e.Aux1
	case MouseButtonAux2:
		return e.Aux2
	}
	return false
}

// Clone returns a copy safe to retain across dispatch boundaries.
func (e *PointerEvent) Clone() PointerEvent {
	return *e
}

// setButtons decodes button state from a raw record. Each flag becomes true
// when the held-buttons bitmask has the matching bit OR the event's single
// changed button matches. Down/up events typically carry only the single
// button; move events carry only the bitmask. The bitmask orders right before
// middle while the index order is the reverse; both mappings are fixed
// platform conventions and are preserved exactly.
//
// Records carrying neither form (touch-synthesized moves) leave the button
// state as-is.
func (e *PointerEvent) setButtons(raw RawPointer) {
	if !raw.HasButtons && !raw.HasButton {
		return
	}
	single := func(b MouseButton) bool {
		return raw.HasButton && raw.Button == b
	}
	var bits ButtonBits
	if raw.HasButtons {
		bits = raw.Buttons
	}
	e.Left = bits&BitLeft != 0 || single(MouseButtonLeft)
	e.Right = bits&BitRight != 0 || single(MouseButtonRight)
	e.Middle = bits&BitMiddle != 0 || single(MouseButtonMiddle)
	e.Aux1 = bits&BitAux1 != 0 || single(MouseButtonAux1)
	e.Aux2 = bits&BitAux2 != 0 || single(MouseButtonAux2)
}
