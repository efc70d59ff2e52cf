package bracken

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventClass identifies a kind of pointer event.
type EventClass uint8

const (
	EventMove  EventClass = iota // pointer moved (coalesced per frame)
	EventDown                    // a button was pressed (coalesced per frame)
	EventUp                      // a button was released (coalesced per frame)
	EventEnter                   // pointer entered the render target (immediate)
	EventLeave                   // pointer left the render target (immediate)
)

// MouseButton identifies a pointer button by its platform index:
// 0=left, 1=middle, 2=right, 3=aux1 (back), 4=aux2 (forward).
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) button
	MouseButtonMiddle                    // middle button (wheel click)
	MouseButtonRight                     // secondary (right) button
	MouseButtonAux1                      // first auxiliary button (browser back)
	MouseButtonAux2                      // second auxiliary button (browser forward)
)

// ButtonBits is the held-buttons bitmask carried by move events. Note the bit
// order differs from the MouseButton index order: middle and right swap places.
// This asymmetry is the platform convention and is preserved for compatibility.
type ButtonBits uint8

const (
	BitLeft   ButtonBits = 1 << iota // bit 0
	BitRight                         // bit 1
	BitMiddle                        // bit 2
	BitAux1                          // bit 3
	BitAux2                          // bit 4
)
