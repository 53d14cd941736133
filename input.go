package spiraltree

// InputState is the latest observed input. Event adapters overwrite it; the
// tick reads a copy once per frame and never writes it.
type InputState struct {
	// Pointer is the last pointer position in normalized device coordinates
	// ([-1, 1], y up). Only meaningful when HasPointer is true.
	Pointer Vec2
	// PointerVelocity is the NDC delta between the last two pointer samples.
	PointerVelocity Vec2
	// HasPointer is false until the first pointer or touch move.
	HasPointer bool
	// Look drives the camera follow goal. Mouse moves and tilt both write it.
	Look Vec2
	// TriggerPending is set by a click or touch start and cleared by
	// TakeTrigger.
	TriggerPending bool
}

// Input is the adapter boundary between host events and the tick. It holds
// no references to the host; callers translate their events into the
// PointerMoved, Oriented and Triggered calls.
type Input struct {
	state       InputState
	sensitivity float64
	tilt        TiltConfig
	tiltWired   bool
}

// NewInput returns an Input with no pointer observed yet.
func NewInput(cam CameraConfig, tilt TiltConfig) *Input {
	return &Input{sensitivity: cam.MouseSensitivity, tilt: tilt}
}

// PointerMoved records a pointer at client coordinates (cx, cy) in a
// width×height viewport. Mouse moves also steer the camera; touch moves only
// move the pointer.
func (in *Input) PointerMoved(cx, cy, width, height float64, touch bool) {
	if width <= 0 || height <= 0 {
		return
	}
	ndc := Vec2{
		X: cx/width*2 - 1,
		Y: -(cy/height)*2 + 1,
	}
	if in.state.HasPointer {
		in.state.PointerVelocity = Vec2{
			X: ndc.X - in.state.Pointer.X,
			Y: ndc.Y - in.state.Pointer.Y,
		}
	}
	in.state.Pointer = ndc
	in.state.HasPointer = true

	if !touch {
		in.state.Look = Vec2{
			X: (cx - width/2) * in.sensitivity,
			Y: (cy - height/2) * in.sensitivity,
		}
	}
}

// WireTilt enables orientation input. Until it is called Oriented is ignored.
func (in *Input) WireTilt() {
	in.tiltWired = true
}

// TiltWired reports whether orientation input is enabled.
func (in *Input) TiltWired() bool {
	return in.tiltWired
}

// Oriented records a device orientation in degrees. Each angle is clamped to
// its configured range before use.
func (in *Input) Oriented(gamma, beta float64) {
	if !in.tiltWired {
		return
	}
	g := in.tilt.Gamma.Clamp(gamma)
	b := in.tilt.Beta.Clamp(beta)
	in.state.Look = Vec2{
		X: g / in.tilt.Scale,
		Y: (b - in.tilt.BetaCenter) / in.tilt.Scale,
	}
}

// Triggered records a click or touch start.
func (in *Input) Triggered() {
	in.state.TriggerPending = true
}

// TakeTrigger returns and clears the pending trigger.
func (in *Input) TakeTrigger() bool {
	t := in.state.TriggerPending
	in.state.TriggerPending = false
	return t
}

// Snapshot returns a copy of the current state.
func (in *Input) Snapshot() InputState {
	return in.state
}
