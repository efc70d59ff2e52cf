// Package bracken is the pointer-input and 2D geometry core for
// composition-based game engines built on [Ebitengine].
//
// Bracken turns raw, bursty mouse and touch input into clean per-frame
// events in an entity's own coordinate space: it buffers raw events as they
// arrive, coalesces each class (move, down, up) to at most one
// representative per frame, translates viewport coordinates through the
// render target's scaling and the entity's inverse world transform, and
// dispatches to ordered listener lists in a fixed move-then-down-then-up
// order.
//
// # Quick start
//
//	cursor := bracken.NewCursorSource()
//	loop := bracken.NewLoop(bracken.LoopConfig{
//		Title: "Game", Width: 640, Height: 480, Cursor: cursor,
//	})
//
//	pointer := bracken.NewPointer(bracken.PointerConfig{
//		Source: cursor,
//		Target: bracken.FixedTarget{
//			Width: 640, Height: 480,
//			Rect: bracken.Rect{Width: 640, Height: 480},
//		},
//		Frames: loop.Ticker(),
//	})
//
//	pointer.OnDown(func(e *bracken.PointerEvent) {
//		fmt.Println("down at", e.Pos)
//	})
//
//	ebiten.RunGame(loop)
//
// Hosts with their own frame loop skip Loop, call [CursorSource.Poll] and
// [Pointer.Tick] once per frame themselves, and wire [Pointer] into their
// own scheduler.
//
// # Coordinate spaces
//
// Raw events arrive in viewport (client) pixels. [Translator] maps them
// through the [RenderTarget]'s displayed-vs-logical scale and then through
// the inverse of the entity's world matrix, supplied by a
// [TransformResolver] such as [Spatial]. [Vector] and [Matrix] carry the
// math; Vector angles use an inverted-y convention suited to y-down screen
// space (documented on [Vector.Angle]).
//
// # Event model
//
// Each [Pointer] owns a single [PointerEvent] snapshot, mutated in place on
// every dispatch. Listeners must copy anything they keep past their own
// invocation. Touch input is unified into the same vocabulary: a touch-start
// synthesizes a move and a left-button down, and only the first active touch
// point is tracked.
//
// The first interaction in a process is a one-shot signal exposed through
// [FirstClickGate] (see [Pointer.OnFirstInteraction]); browsers gate audio
// playback behind it.
//
// [Ebitengine]: https://ebitengine.org
package bracken
