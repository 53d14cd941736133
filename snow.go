package spiraltree

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Snow is the ambient flake field. Flakes fall straight down in local space
// and wrap from the floor back to the ceiling; the whole field spins slowly.
type Snow struct {
	Cloud    *PointCloud
	Rotation float64

	fall    float64
	spin    float64
	ceiling float64
}

// newSnow scatters cfg.SnowCount flakes uniformly in a box of half-width
// SnowSpread (x, z) and half-height SnowCeiling (y). The field starts hidden.
func newSnow(cfg AmbientConfig, rng *rand.Rand) *Snow {
	pc := NewPointCloud(cfg.SnowCount)
	pc.Alpha = 0
	spread := Range{-cfg.SnowSpread, cfg.SnowSpread}
	height := Range{-cfg.SnowCeiling, cfg.SnowCeiling}
	for i := 0; i < pc.Len(); i++ {
		pc.SetPosition(i, mgl64.Vec3{spread.Random(rng), height.Random(rng), spread.Random(rng)})
		pc.Sizes[i] = float32(cfg.SnowSize)
	}
	return &Snow{
		Cloud:   pc,
		fall:    cfg.SnowFall,
		spin:    cfg.SnowSpin,
		ceiling: cfg.SnowCeiling,
	}
}

// update advances one frame. Hidden snow does not move.
func (s *Snow) update() {
	if s.Cloud.Alpha <= 0 {
		return
	}
	pos := s.Cloud.Positions
	floor := float32(-s.ceiling)
	for i := 1; i < len(pos); i += 3 {
		pos[i] -= float32(s.fall)
		if pos[i] < floor {
			pos[i] = float32(s.ceiling)
		}
	}
	s.Cloud.MarkDirty()
	s.Rotation += s.spin
}

// Model returns the field's local-to-world transform.
func (s *Snow) Model() mgl64.Mat4 {
	return mgl64.HomogRotate3DY(s.Rotation)
}
