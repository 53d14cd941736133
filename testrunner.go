package spiraltree

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a test script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Gamma  float64 `json:"gamma,omitempty"`
	Beta   float64 `json:"beta,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type testScript struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"move":       true,
	"click":      true,
	"tilt":       true,
	"sweep":      true,
	"wait":       true,
	"screenshot": true,
}

// TestRunner sequences injected input and screenshots across frames for
// automated runs of the show. Attach it through RunConfig.Runner.
//
// Script format:
//
//	{"steps": [
//	  {"action": "click", "x": 640, "y": 360},
//	  {"action": "wait", "frames": 300},
//	  {"action": "sweep", "fromX": 300, "fromY": 360, "toX": 980, "toY": 360, "frames": 60},
//	  {"action": "tilt", "gamma": 20, "beta": 70},
//	  {"action": "screenshot", "label": "formed"}
//	]}
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Game.Update before
// input is processed.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(g.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "move":
		g.InjectMove(st.X, st.Y)
	case "click":
		g.InjectClick(st.X, st.Y)
	case "tilt":
		g.InjectTilt(st.Gamma, st.Beta)
	case "sweep":
		g.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}
