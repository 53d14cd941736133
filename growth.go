package spiraltree

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// growthTask is the timed interpolation record for one particle. It holds no
// callback state: Advance re-evaluates it from the scene clock each tick.
type growthTask struct {
	start    float64 // scene time the flight begins
	duration float64
	progress *gween.Tween // eased 0→1 over duration
	from, to Cylindrical
	done     bool
}

// Growth drives every particle from the launch point to its planned target.
// It is the only writer of Particle.Anim and Particle.Home.
type Growth struct {
	tasks     []growthTask
	remaining int
	startAt   float64
	endAt     float64
}

// NewGrowth returns an unscheduled animator.
func NewGrowth() *Growth {
	return &Growth{}
}

// LaunchState returns the coordinate a particle with the given target leaves
// from: zero radius at launchY, wound turns full rotations behind its target.
func LaunchState(target Cylindrical, launchY, turns float64) Cylindrical {
	return Cylindrical{
		R:     0,
		Theta: target.Theta - turns*2*math.Pi,
		Y:     launchY,
	}
}

// Schedule creates one task per particle starting at now. Task i waits
// i·Stagger seconds and flies for Duration plus up to DurationJitter seconds.
// A second call is a no-op and returns false.
func (g *Growth) Schedule(particles []Particle, cfg GrowthConfig, now float64, rng *rand.Rand) bool {
	if g.tasks != nil {
		return false
	}
	fn, err := easingByName(cfg.Easing)
	if err != nil {
		fn = ease.OutCubic
	}

	g.tasks = make([]growthTask, len(particles))
	g.remaining = len(particles)
	g.startAt = now
	g.endAt = now

	for i := range particles {
		p := &particles[i]
		from := LaunchState(p.Target, cfg.LaunchHeight, cfg.WindTurns)
		d := cfg.Duration + rng.Float64()*cfg.DurationJitter
		t := &g.tasks[i]
		t.start = now + float64(i)*cfg.Stagger
		t.duration = d
		t.progress = gween.New(0, 1, float32(d), fn)
		t.from = from
		t.to = p.Target

		p.Anim = from
		p.Home = from.Cartesian()

		if end := t.start + d; end > g.endAt {
			g.endAt = end
		}
	}
	return true
}

// Advance evaluates every unfinished task at scene time now. Tasks that have
// not reached their start time leave the particle at its launch state.
func (g *Growth) Advance(now float64, particles []Particle) {
	if g.remaining == 0 {
		return
	}
	for i := range g.tasks {
		t := &g.tasks[i]
		if t.done {
			continue
		}
		elapsed := now - t.start
		if elapsed < 0 {
			continue
		}
		p := &particles[i]
		if elapsed >= t.duration {
			p.Anim = t.to
			t.done = true
			g.remaining--
		} else {
			f, _ := t.progress.Set(float32(elapsed))
			p.Anim = lerpCylindrical(t.from, t.to, float64(f))
		}
		p.Home = p.Anim.Cartesian()
	}
}

// Scheduled returns the number of tasks created. It is either 0 or N.
func (g *Growth) Scheduled() int {
	return len(g.tasks)
}

// Remaining returns the number of tasks still in flight or waiting.
func (g *Growth) Remaining() int {
	return g.remaining
}

// Done reports whether every scheduled task has finished.
func (g *Growth) Done() bool {
	return g.tasks != nil && g.remaining == 0
}

// Window returns the scene times of the first launch and of the last landing.
func (g *Growth) Window() (start, end float64) {
	return g.startAt, g.endAt
}

func lerpCylindrical(a, b Cylindrical, t float64) Cylindrical {
	return Cylindrical{
		R:     lerp(a.R, b.R, t),
		Theta: lerp(a.Theta, b.Theta, t),
		Y:     lerp(a.Y, b.Y, t),
	}
}
