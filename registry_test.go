package bracken

import "testing"

func TestListenerListOrder(t *testing.T) {
	var got []int
	var l listenerList
	l.add(func(*PointerEvent) { got = append(got, 1) })
	l.add(func(*PointerEvent) { got = append(got, 2) })
	l.add(func(*PointerEvent) { got = append(got, 3) })

	for _, fn := range l.fns {
		fn(nil)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("invocation order = %v, want [1 2 3]", got)
	}
}

func TestListenerListDuplicateAddIsNoOp(t *testing.T) {
	calls := 0
	fn := func(*PointerEvent) { calls++ }

	var l listenerList
	l.add(fn)
	l.add(fn)
	if len(l.fns) != 1 {
		t.Fatalf("duplicate add stored %d entries, want 1", len(l.fns))
	}

	// Distinct closures over the same body are distinct listeners.
	make := func() PointerListener {
		return func(*PointerEvent) { calls++ }
	}
	l.add(make())
	l.add(make())
	if len(l.fns) != 3 {
		t.Errorf("distinct closures stored %d entries, want 3", len(l.fns))
	}
}

func TestListenerListNilAddIgnored(t *testing.T) {
	var l listenerList
	l.add(nil)
	if len(l.fns) != 0 {
		t.Error("nil listener should not be stored")
	}
}

func TestRegistryClassLookup(t *testing.T) {
	var r listenerRegistry
	tests := []struct {
		class EventClass
		want  *listenerList
	}{
		{EventMove, &r.move},
		{EventDown, &r.down},
		{EventUp, &r.up},
		{EventEnter, &r.enter},
		{EventLeave, &r.leave},
	}
	for _, tt := range tests {
		if got := r.class(tt.class); got != tt.want {
			t.Errorf("class(%d) returned wrong list", tt.class)
		}
	}
}
