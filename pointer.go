package bracken

import (
	"fmt"
	"os"
)

// Lifecycle lets a component react to its owning entity becoming active or
// inactive. The surrounding component framework provides the implementation;
// a Pointer with no Lifecycle is bound immediately and stays bound.
type Lifecycle interface {
	OnEnable(fn func())
	OnDisable(fn func())
}

// PointerConfig configures a Pointer. Source and Target are required.
type PointerConfig struct {
	// Source delivers raw pointer/touch events.
	Source InputSource
	// Target is the surface raw coordinates are relative to.
	Target RenderTarget
	// Transform resolves the owning entity's world matrix. Nil means the
	// entity's local space is the target's logical-pixel space.
	Transform TransformResolver
	// Frames, when non-nil, drives the per-tick flush automatically. When
	// nil the host must call Tick once per frame itself.
	Frames FrameScheduler
	// Lifecycle, when non-nil, controls raw-listener attachment. When nil
	// the pointer is bound at construction.
	Lifecycle Lifecycle
	// FirstClick, when non-nil, overrides the process-wide first-click
	// gate. Tests inject a fresh gate per case.
	FirstClick *FirstClickGate
	// OnError receives one error per listener that panics during a
	// dispatch. Nil defaults to a stderr report.
	OnError func(error)
}

// Pointer unifies mouse and touch input into per-frame move/down/up events in
// the owning entity's local coordinate space.
//
// Raw events arrive at uncontrolled times, possibly several per frame. Each
// raw event only overwrites its class's pending slot; once per tick the slots
// flush in the fixed order move, down, up. A touch-start synthesizes both a
// move and a down, and processing move first guarantees listeners never see a
// down at a stale position on the first frame of a touch.
type Pointer struct {
	source     InputSource
	translator Translator
	gate       *FirstClickGate
	onError    func(error)

	event      *PointerEvent
	lastPos    Vector
	pending    pendingSet
	listeners  listenerRegistry
	raw        RawListener
	isTouching bool
	bound      bool
}

// NewPointer creates a Pointer and wires it to the configured collaborators.
// Panics if Source or Target is nil (programmer error, not a runtime
// condition).
func NewPointer(cfg PointerConfig) *Pointer {
	if cfg.Source == nil {
		panic("bracken: PointerConfig.Source is required")
	}
	if cfg.Target == nil {
		panic("bracken: PointerConfig.Target is required")
	}

	gate := cfg.FirstClick
	if gate == nil {
		gate = defaultFirstClick
	}
	onError := cfg.OnError
	if onError == nil {
		onError = reportListenerError
	}

	p := &Pointer{
		source:     cfg.Source,
		translator: Translator{Target: cfg.Target, Transform: cfg.Transform},
		gate:       gate,
		onError:    onError,
		event:      &PointerEvent{},
	}
	p.raw = RawListener{
		MouseMove:  p.handleMouseMove,
		MouseDown:  p.handleMouseDown,
		MouseUp:    p.handleMouseUp,
		MouseEnter: p.handleMouseEnter,
		MouseLeave: p.handleMouseLeave,
		TouchStart: p.handleTouchStart,
		TouchMove:  p.handleTouchMove,
		TouchEnd:   p.handleTouchEnd,
	}

	if cfg.Frames != nil {
		cfg.Frames.OnFrame(p.Tick)
	}
	if cfg.Lifecycle != nil {
		cfg.Lifecycle.OnEnable(p.Enable)
		cfg.Lifecycle.OnDisable(p.Disable)
	} else {
		p.Enable()
	}
	return p
}

func reportListenerError(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[bracken] %v\n", err)
}

// --- Subscription ---

// On registers a callback for the given event class. Registration is
// add-only; there is no removal.
func (p *Pointer) On(class EventClass, fn PointerListener) {
	if list := p.listeners.class(class); list != nil {
		list.add(fn)
	}
}

// OnMove registers a callback for coalesced pointer-move events.
func (p *Pointer) OnMove(fn PointerListener) { p.On(EventMove, fn) }

// OnDown registers a callback for coalesced pointer-down events.
func (p *Pointer) OnDown(fn PointerListener) { p.On(EventDown, fn) }

// OnUp registers a callback for coalesced pointer-up events.
func (p *Pointer) OnUp(fn PointerListener) { p.On(EventUp, fn) }

// OnEnter registers a callback for pointer-enter events. Enter/leave are not
// frame-coalesced; they fire at raw-event time.
func (p *Pointer) OnEnter(fn PointerListener) { p.On(EventEnter, fn) }

// OnLeave registers a callback for pointer-leave events.
func (p *Pointer) OnLeave(fn PointerListener) { p.On(EventLeave, fn) }

// OnFirstInteraction queues fn on the pointer's first-click gate and returns
// the gate so the caller can read its live Happened state. The gate fires on
// the first down or touch-start observed by ANY pointer sharing it; if it has
// already fired, fn is never invoked (check Happened first).
func (p *Pointer) OnFirstInteraction(fn func()) *FirstClickGate {
	p.gate.Register(fn)
	return p.gate
}

// Event returns the live snapshot. It is mutated on every dispatch; copy what
// must survive the frame.
func (p *Pointer) Event() *PointerEvent {
	return p.event
}

// --- Lifecycle ---

// Enable attaches the pointer's raw listeners to the input source. No-op if
// already bound.
func (p *Pointer) Enable() {
	if p.bound {
		return
	}
	p.bound = true
	p.source.Subscribe(&p.raw)
}

// Disable detaches from the input source and drops any pending actions; they
// are not flushed late. No-op if not bound.
func (p *Pointer) Disable() {
	if !p.bound {
		return
	}
	p.bound = false
	p.source.Unsubscribe(&p.raw)
	p.pending.clear()
	p.isTouching = false
}

// --- Raw handlers ---

func (p *Pointer) handleMouseMove(raw RawPointer) {
	p.pending.move.set(raw)
}

func (p *Pointer) handleMouseDown(raw RawPointer) {
	p.gate.trigger()
	p.pending.down.set(raw)
}

func (p *Pointer) handleMouseUp(raw RawPointer) {
	p.pending.up.set(raw)
}

func (p *Pointer) handleMouseEnter(raw RawPointer) {
	p.updateSnapshot(raw)
	p.dispatch(&p.listeners.enter)
}

func (p *Pointer) handleMouseLeave(raw RawPointer) {
	p.updateSnapshot(raw)
	p.dispatch(&p.listeners.leave)
}

// handleTouchStart synthesizes mouse-style move+down from the first touch
// point. The isTouching latch ignores a second concurrent touch-start;
// secondary points are never consulted (single-pointer model).
func (p *Pointer) handleTouchStart(t RawTouch) {
	if len(t.Points) == 0 || p.isTouching {
		return
	}
	p.isTouching = true
	p.gate.trigger()

	first := t.Points[0]
	p.pending.move.set(RawPointer{X: first.X, Y: first.Y})
	p.pending.down.set(RawPointer{X: first.X, Y: first.Y, Button: MouseButtonLeft, HasButton: true})
}

func (p *Pointer) handleTouchMove(t RawTouch) {
	if len(t.Points) == 0 {
		return
	}
	first := t.Points[0]
	p.pending.move.set(RawPointer{X: first.X, Y: first.Y})
}

// handleTouchEnd releases the logical pointer at the lifted point. An end
// without a matching start (duplicate or malformed sequence) is ignored.
func (p *Pointer) handleTouchEnd(t RawTouch) {
	if len(t.Points) == 0 || !p.isTouching {
		return
	}
	p.isTouching = false

	first := t.Points[0]
	p.pending.up.set(RawPointer{X: first.X, Y: first.Y, Button: MouseButtonLeft, HasButton: true})
}

// --- Frame flush ---

// Tick flushes the pending slots, in the fixed order move, down, up, each at
// most once. Call exactly once per frame when no FrameScheduler is
// configured.
func (p *Pointer) Tick() {
	if raw, ok := p.pending.move.take(); ok {
		p.updateSnapshot(raw)
		p.dispatch(&p.listeners.move)
	}
	if raw, ok := p.pending.down.take(); ok {
		p.updateSnapshot(raw)
		p.dispatch(&p.listeners.down)
	}
	if raw, ok := p.pending.up.take(); ok {
		p.updateSnapshot(raw)
		p.dispatch(&p.listeners.up)
	}
}

// updateSnapshot recomputes the shared event from a raw record: position is
// translated into local space first, delta is measured in that space against
// the previous snapshot position, then button state is decoded.
func (p *Pointer) updateSnapshot(raw RawPointer) {
	pos := p.translator.ToLocal(Vector{X: raw.X, Y: raw.Y})
	p.event.Pos = pos
	p.event.Delta = pos.Subtract(p.lastPos)
	p.lastPos = pos
	p.event.setButtons(raw)
}

// dispatch invokes every listener in the list with the shared snapshot. The
// slice header is captured up front: listeners added during the pass become
// visible on the next dispatch, never mid-pass. A panicking listener is
// reported through the error channel and does not abort its siblings.
func (p *Pointer) dispatch(list *listenerList) {
	fns := list.fns
	for _, fn := range fns {
		p.invoke(fn)
	}
}

func (p *Pointer) invoke(fn PointerListener) {
	defer func() {
		if r := recover(); r != nil {
			p.onError(fmt.Errorf("pointer listener panicked: %v", r))
		}
	}()
	fn(p.event)
}
