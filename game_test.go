package spiraltree

import (
	"testing"
)

// newTestGame builds a Game without a renderer so it runs headless.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	s, _ := newTestShow(t, 50)
	return &Game{
		show:   s,
		cfg:    RunConfig{ScreenshotDir: "screenshots"},
		width:  800,
		height: 600,
		dt:     tick,
	}
}

func TestInjectClickQueuesMoveThenClick(t *testing.T) {
	g := newTestGame(t)
	g.InjectClick(400, 300)
	if g.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", g.Pending())
	}

	if !g.processInjectedInput() {
		t.Fatal("first event not consumed")
	}
	in := g.show.Input().Snapshot()
	if !in.HasPointer || in.TriggerPending {
		t.Fatalf("after move: %+v", in)
	}

	g.processInjectedInput()
	if !g.show.Input().Snapshot().TriggerPending {
		t.Fatal("click did not set a pending trigger")
	}
	if g.processInjectedInput() {
		t.Error("empty queue reported a consumed event")
	}

	g.show.Update(tick)
	if g.show.State() != StateForming {
		t.Errorf("State = %v after injected click", g.show.State())
	}
}

func TestInjectSweep(t *testing.T) {
	g := newTestGame(t)
	g.InjectSweep(100, 300, 700, 300, 5)
	if g.Pending() != 5 {
		t.Fatalf("Pending = %d, want 5", g.Pending())
	}
	want := []float64{100, 250, 400, 550, 700}
	for i, x := range want {
		if e := g.injectQueue[i]; e.kind != injectMove || !approxEqual(e.x, x, epsilon) || e.y != 300 {
			t.Errorf("event %d = %+v, want move to (%f, 300)", i, e, x)
		}
	}

	g = newTestGame(t)
	g.InjectSweep(0, 0, 10, 10, 0)
	if g.Pending() != 2 {
		t.Errorf("short sweep Pending = %d, want 2", g.Pending())
	}
}

func TestInjectTiltNeedsWiring(t *testing.T) {
	g := newTestGame(t)
	g.InjectTilt(45, 60)
	g.processInjectedInput()
	if g.show.Input().Snapshot().Look != (Vec2{}) {
		t.Error("tilt applied before wiring")
	}

	g.show.Input().WireTilt()
	g.InjectTilt(45, 60)
	g.processInjectedInput()
	if look := g.show.Input().Snapshot().Look; !approxEqual(look.X, 0.5, epsilon) {
		t.Errorf("Look = %+v, want x=0.5", look)
	}
}

func TestPollTilt(t *testing.T) {
	g := newTestGame(t)
	g.show.SetTiltSource(&fixedTilt{gamma: -45, beta: 105})
	g.pollTilt()
	if g.show.Input().Snapshot().Look != (Vec2{}) {
		t.Error("tilt polled before the show started")
	}

	g.show.Trigger()
	g.pollTilt()
	if look := g.show.Input().Snapshot().Look; !approxEqual(look.X, -0.5, epsilon) || !approxEqual(look.Y, 0.5, epsilon) {
		t.Errorf("Look = %+v, want (-0.5, 0.5)", look)
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	g := newTestGame(t)
	g.Screenshot("a")
	g.Screenshot("b")
	if len(g.screenshotQueue) != 2 || g.screenshotQueue[0] != "a" || g.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", g.screenshotQueue)
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"formed", "formed"},
		{"after-click", "after-click"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128,
		255, 255, 255, 255,
		0, 0, 0, 0,
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		255, 127, 0, 128,
		255, 255, 255, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "click", "x": 400, "y": 300},
			{"action": "wait", "frames": 3},
			{"action": "sweep", "fromX": 100, "fromY": 300, "toX": 700, "toY": 300, "frames": 10},
			{"action": "tilt", "gamma": 20, "beta": 70},
			{"action": "screenshot", "label": "formed"}
		]
	}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if st := runner.steps[2]; st.FromX != 100 || st.ToX != 700 || st.Frames != 10 {
		t.Errorf("sweep step = %+v", st)
	}
	if st := runner.steps[3]; st.Gamma != 20 || st.Beta != 70 {
		t.Errorf("tilt step = %+v", st)
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	for name, data := range map[string]string{
		"invalid json":   `not json`,
		"empty":          `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "drag"}]}`,
	} {
		if _, err := LoadTestScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRunnerStepClick(t *testing.T) {
	g := newTestGame(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 400, "y": 300}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(g)
	if g.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", g.Pending())
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	g.processInjectedInput()
	g.processInjectedInput()

	runner.step(g)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerWaitAndScreenshot(t *testing.T) {
	g := newTestGame(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "shot"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		runner.step(g)
		if len(g.screenshotQueue) != 0 {
			t.Fatalf("screenshot queued during wait frame %d", i)
		}
	}
	runner.step(g)
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != "shot" {
		t.Fatalf("queue = %v, want [shot]", g.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner not done after last step")
	}
}

func TestGameUpdateDrivesShow(t *testing.T) {
	g := newTestGame(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 400, "y": 300}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.cfg.Runner = runner
	g.cfg.ExitWhenDone = true

	var last error
	for i := 0; i < 10 && last == nil; i++ {
		last = g.Update()
	}
	if last != ErrScriptDone {
		t.Fatalf("Update returned %v, want ErrScriptDone", last)
	}
	if g.show.State() != StateForming {
		t.Errorf("State = %v, want forming", g.show.State())
	}
}

func TestGameLayoutResizes(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(1024, 512)
	if w != 1024 || h != 512 || g.width != 1024 || g.height != 512 {
		t.Fatalf("Layout = %dx%d, game %dx%d", w, h, g.width, g.height)
	}
	if !approxEqual(g.show.Camera().Aspect, 2, epsilon) {
		t.Errorf("camera aspect = %f, want 2", g.show.Camera().Aspect)
	}
}
