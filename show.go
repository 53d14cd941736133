package spiraltree

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Show owns the whole particle pipeline and advances it one tick at a time.
// All work for a tick happens synchronously inside Update.
type Show struct {
	cfg   Config
	state ShowState
	rng   *rand.Rand

	clock     float64 // scene time in seconds
	frame     uint64
	ambient   float64 // per-frame ambient time driving the pulse
	startedAt float64

	particles []Particle
	growth    *Growth
	physics   *Physics
	tweens    tweenSet

	camera *Camera
	input  *Input
	tilt   TiltSource
	audio  AudioPlayer
	store  EventStore

	// Cloud is the tree's position/color/size buffer.
	Cloud *PointCloud
	// Rotation is the tree's y rotation in radians.
	Rotation float64
	// Snow is the ambient flake field.
	Snow *Snow
	// Ornament is the tree-top star.
	Ornament *Ornament
	// Launcher marks the launch point while idle.
	Launcher *Marker
	// TipAlpha and MessageAlpha fade the idle tip and the end message.
	TipAlpha     float64
	MessageAlpha float64

	revealAt float64
	revealed bool

	debug bool
	stats frameStats
}

// NewShow plans the tree and builds every component from cfg. cfg must be
// valid (see Config.Validate); invalid palettes fall back to white.
func NewShow(cfg Config) *Show {
	rng := newRand(cfg.Seed)
	palette, err := parsePalette(cfg.Tree.Palette)
	if err != nil {
		logf("palette: %v", err)
		palette = []Color{ColorWhite}
	}

	particles := PlanTree(cfg.Tree, palette, cfg.Growth.LaunchHeight, rng)
	cloud := cloudFromParticles(particles, cfg.Tree.PointSize)
	cloud.Alpha = 0

	return &Show{
		cfg:       cfg,
		rng:       rng,
		particles: particles,
		growth:    NewGrowth(),
		physics:   NewPhysics(cfg.Physics, rng),
		camera:    newCamera(cfg.Camera, 1),
		input:     NewInput(cfg.Camera, cfg.Tilt),
		Cloud:     cloud,
		Snow:      newSnow(cfg.Ambient, rng),
		Ornament:  newOrnament(cfg.Tree.Height, cfg.Ambient),
		Launcher:  newLauncher(cfg.Growth.LaunchHeight, cfg.Ambient),
		TipAlpha:  1,
	}
}

// State returns the current show state.
func (s *Show) State() ShowState {
	return s.state
}

// Config returns the configuration the show was built with.
func (s *Show) Config() Config {
	return s.cfg
}

// Particles returns the particle slice. The returned slice MUST NOT be mutated.
func (s *Show) Particles() []Particle {
	return s.particles
}

// Growth returns the growth animator.
func (s *Show) Growth() *Growth {
	return s.growth
}

// Physics returns the local physics integrator.
func (s *Show) Physics() *Physics {
	return s.physics
}

// Camera returns the show's camera.
func (s *Show) Camera() *Camera {
	return s.camera
}

// Input returns the input adapter that host events are fed into.
func (s *Show) Input() *Input {
	return s.input
}

// Clock returns the scene time in seconds.
func (s *Show) Clock() float64 {
	return s.clock
}

// Frame returns the number of ticks run so far.
func (s *Show) Frame() uint64 {
	return s.frame
}

// RevealAt returns the scene time the ornament reveal is scheduled for, or 0
// while idle.
func (s *Show) RevealAt() float64 {
	return s.revealAt
}

// Revealed reports whether the completion reveal has fired.
func (s *Show) Revealed() bool {
	return s.revealed
}

// SetAudio sets the background track started by the first trigger.
func (s *Show) SetAudio(p AudioPlayer) {
	s.audio = p
}

// SetTiltSource sets the orientation source wired on the first trigger.
func (s *Show) SetTiltSource(src TiltSource) {
	s.tilt = src
}

// TiltSource returns the configured orientation source, or nil.
func (s *Show) TiltSource() TiltSource {
	return s.tilt
}

// SetEventStore sets the optional lifecycle event sink.
func (s *Show) SetEventStore(store EventStore) {
	s.store = store
}

// SetDebugMode enables per-frame timing stats on stderr.
func (s *Show) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Resize updates the camera aspect ratio for a new viewport.
func (s *Show) Resize(width, height float64) {
	s.camera.SetAspect(width, height)
}

// Model returns the tree's local-to-world transform.
func (s *Show) Model() mgl64.Mat4 {
	return mgl64.HomogRotate3DY(s.Rotation)
}

// Trigger moves the show from idle to forming and schedules the growth of
// every particle at the current scene time. It returns false, doing nothing,
// if the show has already started.
func (s *Show) Trigger() bool {
	if s.state != StateIdle {
		return false
	}
	s.state = StateForming
	s.startedAt = s.clock
	s.revealAt = s.clock + s.cfg.RevealDelay()

	s.wireTilt()

	s.TipAlpha = 0
	s.Launcher.Visible = false
	if s.audio != nil {
		if err := s.audio.Play(); err != nil {
			logf("audio play failed: %v", err)
			s.emit(EventAudioFailed)
		}
	}

	s.Cloud.Alpha = 1
	s.tweens.add(TweenField(&s.Snow.Cloud.Alpha, s.cfg.Ambient.SnowOpacity, float32(s.cfg.Ambient.SnowFade), nil))
	s.growth.Schedule(s.particles, s.cfg.Growth, s.clock, s.rng)
	s.emit(EventShowStarted)
	return true
}

// wireTilt enables orientation input, asking the source for permission when
// it needs one. Denial only leaves tilt off.
func (s *Show) wireTilt() {
	if s.tilt == nil {
		return
	}
	if req, ok := s.tilt.(PermissionRequester); ok {
		if err := req.RequestPermission(); err != nil {
			logf("tilt permission: %v", err)
			s.emit(EventTiltDenied)
			return
		}
	}
	s.input.WireTilt()
	s.emit(EventTiltWired)
}

// Update runs one tick of dt seconds:
//  1. consume a pending trigger, advance tweens and growth, fire the reveal
//  2. run physics while forming
//  3. spin the tree while forming
//  4. ease the camera toward the input goal
//  5. compose positions into the cloud
//  6. advance snow and the ornament pulse
func (s *Show) Update(dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.clock += dt
	s.frame++
	in := s.input.Snapshot()
	if s.input.TakeTrigger() {
		s.Trigger()
	}

	s.tweens.update(float32(dt))
	s.growth.Advance(s.clock, s.particles)
	if s.state == StateForming && !s.revealed && s.clock >= s.revealAt {
		s.reveal()
	}
	if s.debug {
		s.stats.growthTime = time.Since(t0)
		t0 = time.Now()
	}

	if s.state == StateForming {
		var ray *Ray
		if in.HasPointer {
			r := s.camera.RayInSpace(in.Pointer, s.Model())
			ray = &r
		}
		s.physics.Step(s.particles, ray)
		s.Rotation += s.cfg.Ambient.SpinRate
	}
	if s.debug {
		s.stats.physicsTime = time.Since(t0)
		t0 = time.Now()
	}

	s.camera.Follow(in.Look)

	if s.state == StateForming {
		s.compose()
	}
	if s.debug {
		s.stats.composeTime = time.Since(t0)
		s.stats.pushed = s.physics.Pushed
		s.stats.inFlight = s.growth.Remaining()
		s.debugLog()
	}

	s.ambient += s.cfg.Ambient.TimeStep
	s.Ornament.pulse(s.ambient)
	s.Snow.update()
}

// compose writes cartesian(anim) + offset for every particle into the cloud.
func (s *Show) compose() {
	for i := range s.particles {
		s.Cloud.SetPosition(i, s.particles[i].Position())
	}
	s.Cloud.MarkDirty()
}

// reveal starts the ornament grow and the end message fade, once.
func (s *Show) reveal() {
	s.revealed = true
	if tw := s.Ornament.reveal(s.cfg.Ambient); tw != nil {
		s.tweens.add(tw)
	}
	s.tweens.add(TweenField(&s.MessageAlpha, 1, float32(s.cfg.Ambient.MessageFade), nil))
	s.emit(EventGrowthComplete)
}

func (s *Show) emit(t EventType) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(ShowEvent{Type: t, Time: s.clock, Frame: s.frame})
}
