package spiraltree

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Particle is one point of the tree. Its index in the particle slice is its
// identity.
//
// Target, Color and Size are fixed at planning time. Anim and Home are written
// only by Growth; Velocity and Offset only by Physics.
type Particle struct {
	Target Cylindrical // planned resting coordinate
	Anim   Cylindrical // current interpolated coordinate
	Home   mgl64.Vec3  // Anim in cartesian form, cached on every growth write

	Velocity mgl64.Vec3
	Offset   mgl64.Vec3

	Color Color
	Size  float64
}

// Position returns the composed render position: Home plus the physics offset.
func (p *Particle) Position() mgl64.Vec3 {
	return p.Home.Add(p.Offset)
}

// PlanTarget computes the resting coordinate of particle i out of n. The
// index maps linearly to progress up the tree so the spiral order is stable;
// only the small angle and radius jitter is random.
func PlanTarget(cfg TreeConfig, i, n int, rng *rand.Rand) Cylindrical {
	ratio := float64(i) / float64(n)
	theta := ratio*math.Pi*cfg.Windings + (rng.Float64()*2-1)*cfg.AngleJitter
	y := ratio*cfg.Height - cfg.Height/2
	r := (1-ratio)*cfg.Radius + (rng.Float64()*2-1)*cfg.RadiusJitter
	return Cylindrical{R: math.Max(0, r), Theta: theta, Y: y}
}

// PlanTree allocates cfg.Count particles with their targets, colors and sizes.
// Every particle starts at the launch point (zero radius, launchY).
// The same rng seed always yields the same tree.
func PlanTree(cfg TreeConfig, palette []Color, launchY float64, rng *rand.Rand) []Particle {
	n := cfg.Count
	particles := make([]Particle, n)
	for i := range particles {
		p := &particles[i]
		// Draw order is color, size, then geometry; seeded runs depend on it.
		if len(palette) > 0 {
			p.Color = palette[rng.IntN(len(palette))]
		} else {
			p.Color = ColorWhite
		}
		p.Size = cfg.Size.Random(rng)
		p.Target = PlanTarget(cfg, i, n, rng)
		p.Anim = Cylindrical{R: 0, Theta: p.Target.Theta, Y: launchY}
		p.Home = p.Anim.Cartesian()
	}
	return particles
}
