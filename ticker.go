package bracken

import "github.com/hajimehoshi/ebiten/v2"

// FrameScheduler invokes registered callbacks once per frame, in registration
// order. The surrounding framework's update hook satisfies this; Ticker is
// the built-in implementation.
type FrameScheduler interface {
	OnFrame(fn func())
}

// Ticker is a minimal FrameScheduler: the host calls Tick once per frame and
// every registered callback runs, in registration order.
type Ticker struct {
	callbacks []func()
}

// NewTicker returns an empty Ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// OnFrame registers fn to run on every Tick. Registration is add-only.
func (t *Ticker) OnFrame(fn func()) {
	if fn == nil {
		return
	}
	t.callbacks = append(t.callbacks, fn)
}

// Tick runs all registered callbacks once. Callbacks registered during a
// Tick run starting from the next Tick.
func (t *Ticker) Tick() {
	callbacks := t.callbacks
	for _, fn := range callbacks {
		fn()
	}
}

// LoopConfig configures Run / NewLoop.
type LoopConfig struct {
	Title  string
	Width  int
	Height int

	// Cursor, when non-nil, is polled at the start of every update so its
	// raw events land before the tick flushes them.
	Cursor *CursorSource

	// OnUpdate runs after input each frame. Returning an error stops the
	// loop.
	OnUpdate func() error
	// OnDraw renders the frame.
	OnDraw func(screen *ebiten.Image)
}

// Loop adapts the per-frame pipeline to [ebiten.Game]: poll the cursor
// source, tick the scheduler, then run the game's own update.
type Loop struct {
	cfg    LoopConfig
	ticker *Ticker
}

// NewLoop creates a Loop with a fresh Ticker.
func NewLoop(cfg LoopConfig) *Loop {
	return &Loop{cfg: cfg, ticker: NewTicker()}
}

// Ticker returns the loop's frame scheduler, for PointerConfig.Frames.
func (l *Loop) Ticker() *Ticker {
	return l.ticker
}

// Update implements ebiten.Game.
func (l *Loop) Update() error {
	if l.cfg.Cursor != nil {
		l.cfg.Cursor.Poll()
	}
	l.ticker.Tick()
	if l.cfg.OnUpdate != nil {
		return l.cfg.OnUpdate()
	}
	return nil
}

// Draw implements ebiten.Game.
func (l *Loop) Draw(screen *ebiten.Image) {
	if l.cfg.OnDraw != nil {
		l.cfg.OnDraw(screen)
	}
}

// Layout implements ebiten.Game.
func (l *Loop) Layout(_, _ int) (int, int) {
	return l.cfg.Width, l.cfg.Height
}

// Run creates a window and drives a Loop until the game ends or OnUpdate
// returns an error.
func Run(cfg LoopConfig) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(NewLoop(cfg))
}
