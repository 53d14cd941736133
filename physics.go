package spiraltree

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// degenerateLenSq is the squared length below which a ray-to-particle vector
// is treated as zero and replaced with a random direction.
const degenerateLenSq = 1e-12

// Physics is the per-frame local integrator. It is the only writer of
// Particle.Velocity and Particle.Offset. Constants are per frame, not per
// second, so results depend on tick count only.
type Physics struct {
	cfg PhysicsConfig
	rng *rand.Rand

	// Pushed is the number of particles repelled during the last Step.
	Pushed int
}

// NewPhysics returns an integrator using cfg and drawing jitter from rng.
func NewPhysics(cfg PhysicsConfig, rng *rand.Rand) *Physics {
	return &Physics{cfg: cfg, rng: rng}
}

// Config returns a pointer to the physics config for live tuning.
func (ph *Physics) Config() *PhysicsConfig {
	return &ph.cfg
}

// Step runs one frame over all particles. pointer is the pointer ray in the
// particles' local space, or nil when there is no pointer this frame.
func (ph *Physics) Step(particles []Particle, pointer *Ray) {
	rho := ph.cfg.RepulsionRadius
	rhoSq := rho * rho
	ph.Pushed = 0

	for i := range particles {
		p := &particles[i]

		if pointer != nil {
			pos := p.Position()
			if distSq := pointer.DistanceSq(pos); distSq < rhoSq {
				dist := math.Sqrt(distSq)
				dir := pos.Sub(pointer.ClosestPoint(pos))
				ph.push(p, dir, 1-dist/rho)
				ph.Pushed++
			}
		}

		ph.integrate(p)
	}
}

// push adds an impulse along away (normalized here) scaled by falloff.
func (ph *Physics) push(p *Particle, away mgl64.Vec3, falloff float64) {
	var dir mgl64.Vec3
	if away.LenSqr() < degenerateLenSq {
		dir = ph.randomUnit()
	} else {
		dir = away.Normalize()
	}
	mag := falloff * ph.cfg.RepulsionForce * ph.cfg.ImpulseScale.Random(ph.rng)
	p.Velocity = p.Velocity.Add(dir.Mul(mag))
}

// integrate applies friction, moves the offset, and drifts the offset home
// only while the particle is nearly still.
func (ph *Physics) integrate(p *Particle) {
	p.Velocity = p.Velocity.Mul(ph.cfg.Friction)
	p.Offset = p.Offset.Add(p.Velocity)
	if p.Velocity.LenSqr() < ph.cfg.RestSpeedSq {
		p.Offset = p.Offset.Sub(p.Offset.Mul(ph.cfg.ReturnRate))
	}
}

// randomUnit returns a uniformly jittered unit vector. It retries the rare
// draw that lands on the origin so the result is never NaN.
func (ph *Physics) randomUnit() mgl64.Vec3 {
	for {
		v := mgl64.Vec3{
			ph.rng.Float64() - 0.5,
			ph.rng.Float64() - 0.5,
			ph.rng.Float64() - 0.5,
		}
		if v.LenSqr() > degenerateLenSq {
			return v.Normalize()
		}
	}
}
