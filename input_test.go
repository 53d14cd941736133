package spiraltree

import "testing"

func testInput() *Input {
	cfg := DefaultConfig()
	return NewInput(cfg.Camera, cfg.Tilt)
}

func TestInputPointerNDC(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy float64
		want   Vec2
	}{
		{"center", 400, 300, Vec2{0, 0}},
		{"top left", 0, 0, Vec2{-1, 1}},
		{"bottom right", 800, 600, Vec2{1, -1}},
		{"right middle", 600, 300, Vec2{0.5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testInput()
			in.PointerMoved(tt.cx, tt.cy, 800, 600, false)
			s := in.Snapshot()
			if !s.HasPointer {
				t.Fatal("HasPointer = false")
			}
			if !approxEqual(s.Pointer.X, tt.want.X, epsilon) || !approxEqual(s.Pointer.Y, tt.want.Y, epsilon) {
				t.Errorf("Pointer = %+v, want %+v", s.Pointer, tt.want)
			}
		})
	}
}

func TestInputNoPointerInitially(t *testing.T) {
	if testInput().Snapshot().HasPointer {
		t.Error("HasPointer = true before any move")
	}
}

func TestInputPointerVelocity(t *testing.T) {
	in := testInput()
	in.PointerMoved(400, 300, 800, 600, false)
	if v := in.Snapshot().PointerVelocity; v != (Vec2{}) {
		t.Errorf("first sample velocity = %+v, want zero", v)
	}
	in.PointerMoved(600, 300, 800, 600, false)
	if v := in.Snapshot().PointerVelocity; !approxEqual(v.X, 0.5, epsilon) || v.Y != 0 {
		t.Errorf("velocity = %+v, want (0.5, 0)", v)
	}
}

func TestInputMouseLook(t *testing.T) {
	in := testInput()
	in.PointerMoved(600, 100, 800, 600, false)
	look := in.Snapshot().Look
	if !approxEqual(look.X, 200*0.001, epsilon) || !approxEqual(look.Y, -200*0.001, epsilon) {
		t.Errorf("Look = %+v, want (0.2, -0.2)", look)
	}
}

func TestInputTouchDoesNotLook(t *testing.T) {
	in := testInput()
	in.PointerMoved(600, 100, 800, 600, true)
	s := in.Snapshot()
	if !s.HasPointer {
		t.Error("touch move did not set the pointer")
	}
	if s.Look != (Vec2{}) {
		t.Errorf("touch move changed Look to %+v", s.Look)
	}
}

func TestInputZeroViewportIgnored(t *testing.T) {
	in := testInput()
	in.PointerMoved(10, 10, 0, 0, false)
	if in.Snapshot().HasPointer {
		t.Error("move in a zero viewport was recorded")
	}
}

func TestInputTiltRequiresWiring(t *testing.T) {
	in := testInput()
	in.Oriented(30, 90)
	if in.Snapshot().Look != (Vec2{}) {
		t.Error("orientation applied before WireTilt")
	}
	in.WireTilt()
	if !in.TiltWired() {
		t.Fatal("TiltWired = false after WireTilt")
	}
	in.Oriented(45, 60)
	if look := in.Snapshot().Look; !approxEqual(look.X, 0.5, epsilon) || !approxEqual(look.Y, 0, epsilon) {
		t.Errorf("Look = %+v, want (0.5, 0)", look)
	}
}

func TestInputTiltClamps(t *testing.T) {
	tests := []struct {
		name        string
		gamma, beta float64
		want        Vec2
	}{
		{"in range", -18, 78, Vec2{-0.2, 0.2}},
		{"gamma high", 170, 60, Vec2{0.5, 0}},
		{"gamma low", -170, 60, Vec2{-0.5, 0}},
		{"beta high", 0, 200, Vec2{0, 0.5}},
		{"beta low", 0, -90, Vec2{0, -0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testInput()
			in.WireTilt()
			in.Oriented(tt.gamma, tt.beta)
			look := in.Snapshot().Look
			if !approxEqual(look.X, tt.want.X, 1e-9) || !approxEqual(look.Y, tt.want.Y, 1e-9) {
				t.Errorf("Look = %+v, want %+v", look, tt.want)
			}
		})
	}
}

func TestInputTrigger(t *testing.T) {
	in := testInput()
	if in.TakeTrigger() {
		t.Error("TakeTrigger = true with nothing pending")
	}
	in.Triggered()
	in.Triggered()
	if !in.TakeTrigger() {
		t.Error("TakeTrigger = false after Triggered")
	}
	if in.TakeTrigger() {
		t.Error("trigger not cleared after TakeTrigger")
	}
}
