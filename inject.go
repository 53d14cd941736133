package spiraltree

// injectKind tags a synthetic host event.
type injectKind uint8

const (
	injectMove injectKind = iota
	injectClick
	injectTilt
)

// syntheticEvent is a single injected host event. Pointer events use
// screen pixels, the same space ebiten reports the cursor in.
type syntheticEvent struct {
	kind        injectKind
	x, y        float64
	gamma, beta float64
}

// InjectMove queues a mouse move to screen pixel (x, y). It is consumed on
// the next frame's Update call.
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: injectMove, x: x, y: y})
}

// InjectClick queues a move to (x, y) followed by a click there. Consumes
// two frames.
func (g *Game) InjectClick(x, y float64) {
	g.InjectMove(x, y)
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: injectClick, x: x, y: y})
}

// InjectTilt queues a device orientation reading in degrees. Ignored by the
// show until tilt is wired by the first trigger.
func (g *Game) InjectTilt(gamma, beta float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: injectTilt, gamma: gamma, beta: beta})
}

// InjectSweep queues a pointer sweep from (fromX, fromY) to (toX, toY):
// one move per frame, linearly interpolated, ending exactly on (toX, toY).
// The sequence consumes `frames` frames; the minimum is 2.
func (g *Game) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending reports how many injected events remain queued.
func (g *Game) Pending() int {
	return len(g.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it to
// the show's input adapter. Returns true if an event was consumed (real
// input should be skipped).
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	in := g.show.Input()
	switch evt.kind {
	case injectMove:
		in.PointerMoved(evt.x, evt.y, float64(g.width), float64(g.height), false)
	case injectClick:
		in.Triggered()
	case injectTilt:
		in.Oriented(evt.gamma, evt.beta)
	}
	return true
}
