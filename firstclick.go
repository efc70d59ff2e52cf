package bracken

// FirstClickGate is a one-shot latch that fires queued callbacks exactly once,
// on the first pointer-down or touch-start observed by ANY Pointer sharing the
// gate. There is no reset; the gate's lifetime is the lifetime of whatever
// owns it (the process, for the default gate).
//
// Browsers refuse to start audio before the user's first interaction, which is
// the classic use: queue the audio-context unlock here.
type FirstClickGate struct {
	happened bool
	queue    []func()
}

// NewFirstClickGate returns a fresh, untriggered gate. Pointers not given an
// explicit gate share a process-wide default; tests inject their own so each
// case starts untriggered.
func NewFirstClickGate() *FirstClickGate {
	return &FirstClickGate{}
}

// defaultFirstClick is the process-wide gate shared by every Pointer whose
// config leaves FirstClick nil.
var defaultFirstClick = NewFirstClickGate()

// Happened reports whether the first interaction has been observed. Live at
// any time, including from callbacks registered after the flip.
func (g *FirstClickGate) Happened() bool {
	return g.happened
}

// Register queues fn to run when the gate flips. Callbacks run in
// registration order. Registering after the flip does NOT invoke fn
// retroactively — callers are expected to check Happened themselves first.
func (g *FirstClickGate) Register(fn func()) {
	if g.happened || fn == nil {
		return
	}
	g.queue = append(g.queue, fn)
}

// trigger flips the gate and drains the queue. Only the first call has any
// effect.
func (g *FirstClickGate) trigger() {
	if g.happened {
		return
	}
	g.happened = true
	queue := g.queue
	g.queue = nil
	for _, fn := range queue {
		fn()
	}
}
