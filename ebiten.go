package bracken

import "github.com/hajimehoshi/ebiten/v2"

// CursorSource is an InputSource backed by Ebitengine's polled mouse and
// touch state. Ebitengine exposes no event callbacks, so Poll must run once
// per frame (Loop does this automatically); it diffs the current state
// against the previous frame and synthesizes the raw event stream.
//
// Touch handling follows the single-pointer model: the first touch to appear
// becomes the logical pointer and later touches are ignored until it lifts.
// Ebitengine consumes touches before the browser's default gestures see
// them, satisfying the InputSource contract.
type CursorSource struct {
	synth SyntheticSource

	lastX, lastY float64
	hasCursor    bool
	prevBits     ButtonBits

	touchIDs   []ebiten.TouchID
	activeID   ebiten.TouchID
	touching   bool
	touchPoint Vector
}

// NewCursorSource returns a CursorSource; call Poll once per frame.
func NewCursorSource() *CursorSource {
	return &CursorSource{}
}

// Subscribe implements InputSource.
func (c *CursorSource) Subscribe(l *RawListener) { c.synth.Subscribe(l) }

// Unsubscribe implements InputSource.
func (c *CursorSource) Unsubscribe(l *RawListener) { c.synth.Unsubscribe(l) }

// cursorButtons pairs each logical button with its ebiten button and its
// held-mask bit. Order is the single-button index order.
var cursorButtons = [...]struct {
	eb     ebiten.MouseButton
	button MouseButton
	bit    ButtonBits
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft, BitLeft},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle, BitMiddle},
	{ebiten.MouseButtonRight, MouseButtonRight, BitRight},
	{ebiten.MouseButton3, MouseButtonAux1, BitAux1},
	{ebiten.MouseButton4, MouseButtonAux2, BitAux2},
}

// buttonBit maps a single-button index to its held-mask bit, preserving the
// middle/right swap between the two encodings.
func buttonBit(b MouseButton) ButtonBits {
	switch b {
	case MouseButtonLeft:
		return BitLeft
	case MouseButtonMiddle:
		return BitMiddle
	case MouseButtonRight:
		return BitRight
	case MouseButtonAux1:
		return BitAux1
	case MouseButtonAux2:
		return BitAux2
	}
	return 0
}

// Poll reads the current mouse and touch state and emits the raw events that
// changed since the previous Poll.
func (c *CursorSource) Poll() {
	c.pollMouse()
	c.pollTouch()
}

func (c *CursorSource) pollMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	var bits ButtonBits
	for _, b := range cursorButtons {
		if ebiten.IsMouseButtonPressed(b.eb) {
			bits |= b.bit
		}
	}

	if c.hasCursor && (x != c.lastX || y != c.lastY) {
		c.synth.EmitMove(x, y, bits)
	}

	for _, b := range cursorButtons {
		now := bits&b.bit != 0
		was := c.prevBits&b.bit != 0
		if now && !was {
			c.synth.EmitDown(x, y, b.button)
		} else if !now && was {
			c.synth.EmitUp(x, y, b.button)
		}
	}

	c.lastX, c.lastY = x, y
	c.hasCursor = true
	c.prevBits = bits
}

func (c *CursorSource) pollTouch() {
	c.touchIDs = ebiten.AppendTouchIDs(c.touchIDs[:0])

	if !c.touching {
		if len(c.touchIDs) == 0 {
			return
		}
		c.touching = true
		c.activeID = c.touchIDs[0]
		tx, ty := ebiten.TouchPosition(c.activeID)
		c.touchPoint = Vector{X: float64(tx), Y: float64(ty)}
		c.synth.EmitTouchStart(c.touchPoint)
		return
	}

	for _, id := range c.touchIDs {
		if id == c.activeID {
			tx, ty := ebiten.TouchPosition(id)
			point := Vector{X: float64(tx), Y: float64(ty)}
			if point != c.touchPoint {
				c.touchPoint = point
				c.synth.EmitTouchMove(point)
			}
			return
		}
	}

	// Active touch lifted; release at its last known position.
	c.touching = false
	c.synth.EmitTouchEnd(c.touchPoint)
}
