package spiraltree

import (
	"encoding/json"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"
)

// TreeConfig controls the planned resting geometry of the tree.
type TreeConfig struct {
	// Count is the number of particles N.
	Count int `json:"count"`
	// Height is the tree height H. Particles span [-H/2, H/2].
	Height float64 `json:"height"`
	// Radius is the base radius R of the cone.
	Radius float64 `json:"radius"`
	// Windings is W; particle i sits at angle (i/N)·π·W before jitter.
	Windings float64 `json:"windings"`
	// AngleJitter is the half-width of the uniform angular jitter in radians.
	AngleJitter float64 `json:"angleJitter"`
	// RadiusJitter is the half-width of the uniform radial jitter.
	RadiusJitter float64 `json:"radiusJitter"`
	// Palette lists hex colors; each particle picks one uniformly.
	Palette []string `json:"palette"`
	// Size is the range of per-particle base sizes.
	Size Range `json:"size"`
	// PointSize scales every base size at render time.
	PointSize float64 `json:"pointSize"`
}

// GrowthConfig controls the staggered growth animation.
type GrowthConfig struct {
	// Stagger is the delay k in seconds between consecutive particle launches.
	Stagger float64 `json:"stagger"`
	// Duration is the base flight time D_base in seconds.
	Duration float64 `json:"duration"`
	// DurationJitter is the upper bound of the random extra flight time.
	DurationJitter float64 `json:"durationJitter"`
	// LaunchHeight is the y coordinate every particle starts from.
	LaunchHeight float64 `json:"launchHeight"`
	// WindTurns is the number of extra full rotations a particle makes on
	// its way up.
	WindTurns float64 `json:"windTurns"`
	// Easing names a gween easing curve, e.g. "outCubic".
	Easing string `json:"easing"`
}

// PhysicsConfig controls pointer repulsion and settling.
type PhysicsConfig struct {
	// RepulsionRadius is ρ, the distance from the pointer ray within which
	// particles are pushed.
	RepulsionRadius float64 `json:"repulsionRadius"`
	// RepulsionForce is the base impulse magnitude at zero distance.
	RepulsionForce float64 `json:"repulsionForce"`
	// ImpulseScale is the per-push random multiplier range.
	ImpulseScale Range `json:"impulseScale"`
	// Friction multiplies velocity every frame. Must be in (0, 1).
	Friction float64 `json:"friction"`
	// ReturnRate is the fraction of offset removed per frame while at rest.
	ReturnRate float64 `json:"returnRate"`
	// RestSpeedSq is the squared speed below which a particle drifts home.
	RestSpeedSq float64 `json:"restSpeedSq"`
}

// CameraConfig controls the perspective camera and its input follow.
type CameraConfig struct {
	// Fov is the vertical field of view in degrees.
	Fov float64 `json:"fov"`
	// Near and Far are the clip distances.
	Near float64 `json:"near"`
	Far  float64 `json:"far"`
	// X, Y, Z is the starting camera position.
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	// FollowLerp is the per-frame fraction of the remaining distance covered.
	FollowLerp float64 `json:"followLerp"`
	// LookRange converts a unit look vector into camera offset.
	LookRange float64 `json:"lookRange"`
	// MouseSensitivity converts cursor pixels from centre into look units.
	MouseSensitivity float64 `json:"mouseSensitivity"`
}

// TiltConfig controls how device orientation maps onto the look vector.
type TiltConfig struct {
	// Gamma is the allowed left/right tilt range in degrees.
	Gamma Range `json:"gamma"`
	// Beta is the allowed front/back tilt range in degrees.
	Beta Range `json:"beta"`
	// BetaCenter is the beta angle treated as "upright".
	BetaCenter float64 `json:"betaCenter"`
	// Scale divides both angles into look units.
	Scale float64 `json:"scale"`
}

// AmbientConfig controls scene dressing: rotation, snow, ornament, fog.
type AmbientConfig struct {
	// SpinRate is the tree's y rotation per frame while forming.
	SpinRate float64 `json:"spinRate"`
	// TimeStep is the ambient time advanced per frame (drives the pulse).
	TimeStep float64 `json:"timeStep"`

	SnowCount   int     `json:"snowCount"`
	SnowSpread  float64 `json:"snowSpread"` // half-width of the x/z box
	SnowCeiling float64 `json:"snowCeiling"`
	SnowFall    float64 `json:"snowFall"` // y units per frame
	SnowSpin    float64 `json:"snowSpin"` // radians per frame
	SnowSize    float64 `json:"snowSize"`
	SnowOpacity float64 `json:"snowOpacity"`
	SnowFade    float64 `json:"snowFade"` // seconds

	OrnamentSize     float64 `json:"ornamentSize"`
	OrnamentDuration float64 `json:"ornamentDuration"` // seconds
	OrnamentEasing   string  `json:"ornamentEasing"`
	PulseAmplitude   float64 `json:"pulseAmplitude"`
	PulseRate        float64 `json:"pulseRate"`

	LauncherSize float64 `json:"launcherSize"`
	MessageFade  float64 `json:"messageFade"` // seconds
	FogDensity   float64 `json:"fogDensity"`
}

// Config is the full set of tunables for a Show.
type Config struct {
	// Seed feeds every random draw. Zero picks a fresh seed per run.
	Seed    uint64        `json:"seed"`
	Tree    TreeConfig    `json:"tree"`
	Growth  GrowthConfig  `json:"growth"`
	Physics PhysicsConfig `json:"physics"`
	Camera  CameraConfig  `json:"camera"`
	Tilt    TiltConfig    `json:"tilt"`
	Ambient AmbientConfig `json:"ambient"`
	// TipText is shown while idle; EndText after the tree completes.
	TipText string `json:"tipText"`
	EndText string `json:"endText"`
}

// DefaultConfig returns the stock tree: 2000 particles in a 40×15 cone.
func DefaultConfig() Config {
	return Config{
		Tree: TreeConfig{
			Count:        2000,
			Height:       40,
			Radius:       15,
			Windings:     25,
			AngleJitter:  0.25,
			RadiusJitter: 1,
			Palette:      []string{"#ff0000", "#00ff00", "#ffff00", "#00ffff", "#ff00ff"},
			Size:         Range{0.5, 2.0},
			PointSize:    1,
		},
		Growth: GrowthConfig{
			Stagger:        0.0015,
			Duration:       2.0,
			DurationJitter: 0.5,
			LaunchHeight:   -30,
			WindTurns:      6,
			Easing:         "outCubic",
		},
		Physics: PhysicsConfig{
			RepulsionRadius: 3.5,
			RepulsionForce:  0.5,
			ImpulseScale:    Range{0.8, 1.2},
			Friction:        0.92,
			ReturnRate:      0.02,
			RestSpeedSq:     0.01,
		},
		Camera: CameraConfig{
			Fov:              75,
			Near:             0.1,
			Far:              1000,
			Y:                10,
			Z:                60,
			FollowLerp:       0.05,
			LookRange:        50,
			MouseSensitivity: 0.001,
		},
		Tilt: TiltConfig{
			Gamma:      Range{-45, 45},
			Beta:       Range{15, 105},
			BetaCenter: 60,
			Scale:      90,
		},
		Ambient: AmbientConfig{
			SpinRate:         0.002,
			TimeStep:         0.01,
			SnowCount:        1000,
			SnowSpread:       100,
			SnowCeiling:      50,
			SnowFall:         0.1,
			SnowSpin:         0.001,
			SnowSize:         0.8,
			SnowOpacity:      0.8,
			SnowFade:         2,
			OrnamentSize:     4,
			OrnamentDuration: 1,
			OrnamentEasing:   "outElastic",
			PulseAmplitude:   1,
			PulseRate:        2,
			LauncherSize:     5,
			MessageFade:      1,
			FogDensity:       0.002,
		},
		TipText: "Click to launch",
		EndText: "Merry Christmas",
	}
}

// LoadConfig parses JSON over DefaultConfig and validates the result.
// Fields absent from the JSON keep their default values.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Tree.Count <= 0:
		return fmt.Errorf("config: tree count must be positive, got %d", c.Tree.Count)
	case c.Tree.Height <= 0:
		return fmt.Errorf("config: tree height must be positive, got %g", c.Tree.Height)
	case c.Tree.Radius < 0:
		return fmt.Errorf("config: tree radius must not be negative, got %g", c.Tree.Radius)
	case len(c.Tree.Palette) == 0:
		return fmt.Errorf("config: palette is empty")
	case c.Growth.Duration <= 0:
		return fmt.Errorf("config: growth duration must be positive, got %g", c.Growth.Duration)
	case c.Growth.Stagger < 0 || c.Growth.DurationJitter < 0:
		return fmt.Errorf("config: growth stagger and jitter must not be negative")
	case c.Physics.Friction <= 0 || c.Physics.Friction >= 1:
		return fmt.Errorf("config: friction must be in (0, 1), got %g", c.Physics.Friction)
	case c.Physics.RepulsionRadius <= 0:
		return fmt.Errorf("config: repulsion radius must be positive, got %g", c.Physics.RepulsionRadius)
	case c.Physics.ReturnRate < 0 || c.Physics.ReturnRate > 1:
		return fmt.Errorf("config: return rate must be in [0, 1], got %g", c.Physics.ReturnRate)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("config: camera clip range [%g, %g] is invalid", c.Camera.Near, c.Camera.Far)
	case c.Camera.Fov <= 0 || c.Camera.Fov >= 180:
		return fmt.Errorf("config: camera fov must be in (0, 180), got %g", c.Camera.Fov)
	case c.Tilt.Scale == 0:
		return fmt.Errorf("config: tilt scale must not be zero")
	}
	if _, err := easingByName(c.Growth.Easing); err != nil {
		return fmt.Errorf("config: growth: %w", err)
	}
	if _, err := easingByName(c.Ambient.OrnamentEasing); err != nil {
		return fmt.Errorf("config: ornament: %w", err)
	}
	if _, err := parsePalette(c.Tree.Palette); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// RevealDelay is the time in seconds from trigger until every particle is
// guaranteed to have settled: N·k plus the longest possible flight.
func (c Config) RevealDelay() float64 {
	return float64(c.Tree.Count)*c.Growth.Stagger + c.Growth.Duration + c.Growth.DurationJitter
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"outQuad":    ease.OutQuad,
	"outCubic":   ease.OutCubic,
	"outQuart":   ease.OutQuart,
	"outQuint":   ease.OutQuint,
	"outSine":    ease.OutSine,
	"outExpo":    ease.OutExpo,
	"outCirc":    ease.OutCirc,
	"outBack":    ease.OutBack,
	"outElastic": ease.OutElastic,
	"outBounce":  ease.OutBounce,
	"inOutCubic": ease.InOutCubic,
}

// easingByName resolves a curve name. An empty name means linear.
func easingByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// parsePalette decodes hex colors into opaque Colors.
func parsePalette(hex []string) ([]Color, error) {
	out := make([]Color, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		c = c.Clamped()
		out[i] = Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
	return out, nil
}
