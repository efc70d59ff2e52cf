package bracken

// RawPointer is a single raw mouse/pointer event in viewport (client)
// coordinates, before any translation or frame coalescing.
type RawPointer struct {
	X, Y float64
	// Buttons is the held-buttons bitmask (move events), valid only when
	// HasButtons is true. Touch-synthesized records carry no button
	// information at all and leave the snapshot's button state untouched.
	Buttons    ButtonBits
	HasButtons bool
	// Button is the single button that changed (down/up events), valid
	// only when HasButton is true.
	Button    MouseButton
	HasButton bool
}

// RawTouch is a single raw touch event. Points holds the relevant touch
// positions in viewport coordinates: the active points for start/move, the
// released points for end. Multi-touch is not interpreted by the pipeline;
// only the first point is used.
type RawTouch struct {
	Points []Vector
}

// RawListener is the set of callbacks a consumer attaches to an InputSource.
// Nil fields are skipped. The same struct pointer passed to Subscribe must be
// passed to Unsubscribe.
type RawListener struct {
	MouseMove  func(RawPointer)
	MouseDown  func(RawPointer)
	MouseUp    func(RawPointer)
	MouseEnter func(RawPointer)
	MouseLeave func(RawPointer)
	TouchStart func(RawTouch)
	TouchMove  func(RawTouch)
	TouchEnd   func(RawTouch)
}

// InputSource delivers raw pointer and touch events. Callbacks run
// synchronously on the caller's goroutine, at uncontrolled times relative to
// the frame clock; the Pointer component takes care of coalescing them.
//
// Implementations that consume touch input must suppress the platform's
// default gesture handling (scrolling, zooming) for every touch event they
// deliver.
type InputSource interface {
	Subscribe(l *RawListener)
	Unsubscribe(l *RawListener)
}

// SyntheticSource is an in-memory InputSource driven by explicit Emit calls.
// It backs tests and scripted input (AI players, replays): events are
// delivered to subscribers immediately, exactly as a platform source would.
type SyntheticSource struct {
	listeners []*RawListener
}

// NewSyntheticSource returns an empty synthetic source.
func NewSyntheticSource() *SyntheticSource {
	return &SyntheticSource{}
}

// Subscribe adds l to the delivery list. Subscribing the same pointer twice
// is a no-op.
func (s *SyntheticSource) Subscribe(l *RawListener) {
	for _, existing := range s.listeners {
		if existing == l {
			return
		}
	}
	s.listeners = append(s.listeners, l)
}

// Unsubscribe removes l from the delivery list.
func (s *SyntheticSource) Unsubscribe(l *RawListener) {
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// EmitMove delivers a mouse move at (x, y) with the given held-buttons mask.
func (s *SyntheticSource) EmitMove(x, y float64, buttons ButtonBits) {
	for _, l := range s.listeners {
		if l.MouseMove != nil {
			l.MouseMove(RawPointer{X: x, Y: y, Buttons: buttons, HasButtons: true})
		}
	}
}

// EmitDown delivers a mouse button press at (x, y).
func (s *SyntheticSource) EmitDown(x, y float64, button MouseButton) {
	for _, l := range s.listeners {
		if l.MouseDown != nil {
			l.MouseDown(RawPointer{X: x, Y: y, Button: button, HasButton: true})
		}
	}
}

// EmitUp delivers a mouse button release at (x, y).
func (s *SyntheticSource) EmitUp(x, y float64, button MouseButton) {
	for _, l := range s.listeners {
		if l.MouseUp != nil {
			l.MouseUp(RawPointer{X: x, Y: y, Button: button, HasButton: true})
		}
	}
}

// EmitEnter delivers a pointer-enter at (x, y).
func (s *SyntheticSource) EmitEnter(x, y float64) {
	for _, l := range s.listeners {
		if l.MouseEnter != nil {
			l.MouseEnter(RawPointer{X: x, Y: y})
		}
	}
}

// EmitLeave delivers a pointer-leave at (x, y).
func (s *SyntheticSource) EmitLeave(x, y float64) {
	for _, l := range s.listeners {
		if l.MouseLeave != nil {
			l.MouseLeave(RawPointer{X: x, Y: y})
		}
	}
}

// EmitTouchStart delivers a touch-start with the given active points.
func (s *SyntheticSource) EmitTouchStart(points ...Vector) {
	t := RawTouch{Points: points}
	for _, l := range s.listeners {
		if l.TouchStart != nil {
			l.TouchStart(t)
		}
	}
}

// EmitTouchMove delivers a touch-move with the given active points.
func (s *SyntheticSource) EmitTouchMove(points ...Vector) {
	t := RawTouch{Points: points}
	for _, l := range s.listeners {
		if l.TouchMove != nil {
			l.TouchMove(t)
		}
	}
}

// EmitTouchEnd delivers a touch-end with the given released points.
func (s *SyntheticSource) EmitTouchEnd(points ...Vector) {
	t := RawTouch{Points: points}
	for _, l := range s.listeners {
		if l.TouchEnd != nil {
			l.TouchEnd(t)
		}
	}
}

// Click emits a left-button press followed by a release at (x, y).
func (s *SyntheticSource) Click(x, y float64) {
	s.EmitDown(x, y, MouseButtonLeft)
	s.EmitUp(x, y, MouseButtonLeft)
}

// Drag emits a full drag sequence: press at (fromX, fromY), steps
// interpolated moves with the left button held, and release at (toX, toY).
func (s *SyntheticSource) Drag(fromX, fromY, toX, toY float64, steps int) {
	s.EmitDown(fromX, fromY, MouseButtonLeft)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.EmitMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, BitLeft)
	}
	s.EmitUp(toX, toY, MouseButtonLeft)
}
