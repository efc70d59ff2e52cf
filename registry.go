package bracken

import "reflect"

// PointerListener is a callback invoked with the shared event snapshot.
// The snapshot is reused across dispatches; see PointerEvent.
type PointerListener func(*PointerEvent)

// listenerList is an insertion-ordered, add-only list of callbacks for one
// event class. Re-adding the same function is a no-op, keyed by function
// identity; two distinct closures over the same code are distinct entries.
type listenerList struct {
	fns []PointerListener
	ids []uintptr
}

func (l *listenerList) add(fn PointerListener) {
	if fn == nil {
		return
	}
	id := reflect.ValueOf(fn).Pointer()
	for _, existing := range l.ids {
		if existing == id {
			return
		}
	}
	l.fns = append(l.fns, fn)
	l.ids = append(l.ids, id)
}

// listenerRegistry holds one list per event class. There is no removal:
// unsubscription is the surrounding component lifecycle's concern, not this
// registry's.
type listenerRegistry struct {
	move  listenerList
	down  listenerList
	up    listenerList
	enter listenerList
	leave listenerList
}

func (r *listenerRegistry) class(c EventClass) *listenerList {
	switch c {
	case EventMove:
		return &r.move
	case EventDown:
		return &r.down
	case EventUp:
		return &r.up
	case EventEnter:
		return &r.enter
	case EventLeave:
		return &r.leave
	}
	return nil
}
