package spiraltree

import "github.com/go-gl/mathgl/mgl64"

// PointCloud is the flat buffer handed to the renderer: N×3 positions with
// parallel N×3 colors and N sizes. Colors and sizes are written once; the
// position buffer is rewritten each frame and flagged dirty for re-upload.
type PointCloud struct {
	Positions []float32
	Colors    []float32
	Sizes     []float32

	// Alpha fades the whole cloud.
	Alpha float64
	// BlendMode is the compositing operation used to draw the cloud.
	BlendMode BlendMode

	dirty bool
}

// NewPointCloud allocates buffers for n points, all at the origin, white,
// size 1.
func NewPointCloud(n int) *PointCloud {
	pc := &PointCloud{
		Positions: make([]float32, n*3),
		Colors:    make([]float32, n*3),
		Sizes:     make([]float32, n),
		Alpha:     1,
		BlendMode: BlendAdd,
		dirty:     true,
	}
	for i := range pc.Colors {
		pc.Colors[i] = 1
	}
	for i := range pc.Sizes {
		pc.Sizes[i] = 1
	}
	return pc
}

// Len returns the number of points.
func (pc *PointCloud) Len() int {
	return len(pc.Sizes)
}

// SetPosition writes point i. It does not mark the buffer dirty; callers
// batch writes and call MarkDirty once.
func (pc *PointCloud) SetPosition(i int, v mgl64.Vec3) {
	j := i * 3
	pc.Positions[j] = float32(v[0])
	pc.Positions[j+1] = float32(v[1])
	pc.Positions[j+2] = float32(v[2])
}

// Position reads point i back.
func (pc *PointCloud) Position(i int) mgl64.Vec3 {
	j := i * 3
	return mgl64.Vec3{float64(pc.Positions[j]), float64(pc.Positions[j+1]), float64(pc.Positions[j+2])}
}

// SetColor writes the color of point i.
func (pc *PointCloud) SetColor(i int, c Color) {
	j := i * 3
	pc.Colors[j] = float32(c.R)
	pc.Colors[j+1] = float32(c.G)
	pc.Colors[j+2] = float32(c.B)
}

// MarkDirty flags the position buffer for re-upload.
func (pc *PointCloud) MarkDirty() {
	pc.dirty = true
}

// Dirty reports whether positions changed since the last ClearDirty.
func (pc *PointCloud) Dirty() bool {
	return pc.dirty
}

// ClearDirty is called by the renderer after consuming the positions.
func (pc *PointCloud) ClearDirty() {
	pc.dirty = false
}

// cloudFromParticles builds the tree cloud with colors and sizes from particles.
func cloudFromParticles(particles []Particle, pointSize float64) *PointCloud {
	pc := NewPointCloud(len(particles))
	for i := range particles {
		p := &particles[i]
		pc.SetColor(i, p.Color)
		pc.Sizes[i] = float32(p.Size * pointSize)
		pc.SetPosition(i, p.Position())
	}
	return pc
}
