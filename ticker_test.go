package bracken

import "testing"

func TestTickerRunsCallbacksInOrder(t *testing.T) {
	ticker := NewTicker()

	var got []int
	ticker.OnFrame(func() { got = append(got, 1) })
	ticker.OnFrame(func() { got = append(got, 2) })

	ticker.Tick()
	ticker.Tick()

	want := []int{1, 2, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("calls = %v, want %v", got, want)
		}
	}
}

func TestTickerRegistrationDuringTickDeferred(t *testing.T) {
	ticker := NewTicker()

	var lateRuns int
	ticker.OnFrame(func() {
		if lateRuns == 0 {
			ticker.OnFrame(func() { lateRuns++ })
		}
	})

	ticker.Tick()
	if lateRuns != 0 {
		t.Fatal("callback added during a tick ran in the same tick")
	}
	ticker.Tick()
	if lateRuns != 1 {
		t.Errorf("late callback ran %d times on the next tick, want 1", lateRuns)
	}
}

func TestTickerNilCallbackIgnored(t *testing.T) {
	ticker := NewTicker()
	ticker.OnFrame(nil)
	ticker.Tick() // must not panic
}

func TestLoopLayout(t *testing.T) {
	loop := NewLoop(LoopConfig{Width: 320, Height: 240})
	w, h := loop.Layout(1280, 960)
	if w != 320 || h != 240 {
		t.Errorf("Layout = (%d, %d), want (320, 240)", w, h)
	}
}

func TestLoopUpdateTicksScheduler(t *testing.T) {
	loop := NewLoop(LoopConfig{Width: 100, Height: 100})

	ticks := 0
	loop.Ticker().OnFrame(func() { ticks++ })

	if err := loop.Update(); err != nil {
		t.Fatalf("Update returned %v", err)
	}
	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}
}
