package spiraltree

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Marker is a single world-space point sprite (the tree-top star, the
// launch-point glow).
type Marker struct {
	Position mgl64.Vec3
	Size     float64
	Color    Color
	Visible  bool
}

// Ornament is the tree-top star. It stays invisible (size 0) until
// revealed, grows with an elastic tween, then pulses forever.
type Ornament struct {
	Marker

	baseSize  float64
	amplitude float64
	rate      float64
	revealed  bool
}

// newOrnament places the star just above the tree top.
func newOrnament(treeHeight float64, cfg AmbientConfig) *Ornament {
	return &Ornament{
		Marker: Marker{
			Position: mgl64.Vec3{0, treeHeight/2 + 1, 0},
			Color:    Color{R: 1, G: 1, B: 0, A: 1},
			Visible:  true,
		},
		baseSize:  cfg.OrnamentSize,
		amplitude: cfg.PulseAmplitude,
		rate:      cfg.PulseRate,
	}
}

// reveal starts the grow tween once. It returns nil if already revealed.
func (o *Ornament) reveal(cfg AmbientConfig) *FieldTween {
	if o.revealed {
		return nil
	}
	o.revealed = true
	fn, _ := easingByName(cfg.OrnamentEasing)
	return TweenField(&o.Size, o.baseSize, float32(cfg.OrnamentDuration), fn)
}

// Revealed reports whether the reveal tween has been started.
func (o *Ornament) Revealed() bool {
	return o.revealed
}

// pulse overrides the size with base ± amplitude once the star is visibly
// grown. It runs after tweens each frame, so it takes over mid-reveal.
func (o *Ornament) pulse(time float64) {
	if o.Size > 0.1 {
		o.Size = o.baseSize + math.Sin(time*o.rate)*o.amplitude
	}
}

// newLauncher returns the glow shown at the launch point while idle.
func newLauncher(launchY float64, cfg AmbientConfig) *Marker {
	return &Marker{
		Position: mgl64.Vec3{0, launchY, 0},
		Size:     cfg.LauncherSize,
		Color:    ColorWhite,
		Visible:  true,
	}
}
