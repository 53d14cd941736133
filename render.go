package spiraltree

import (
	"image/color"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws a Show onto an ebiten image. Every cloud is projected on the
// CPU and submitted as one textured quad batch per cloud.
type Renderer struct {
	// ClearColor fills the screen before drawing.
	ClearColor Color
	// FogDensity is the exponential-squared fog density; 0 disables fog.
	FogDensity float64

	texture *ebiten.Image
	tip     *Label
	message *Label

	verts []ebiten.Vertex
	inds  []uint32
}

// NewRenderer builds the point sprite and text faces for s.
func NewRenderer(s *Show) (*Renderer, error) {
	src, err := newFaceSource()
	if err != nil {
		return nil, err
	}
	cfg := s.Config()
	return &Renderer{
		ClearColor: Color{R: 0x09 / 255.0, G: 0x0a / 255.0, B: 0x0f / 255.0, A: 1},
		FogDensity: cfg.Ambient.FogDensity,
		texture:    ebiten.NewImageFromImage(newParticleImage(particleTextureSize)),
		tip:        newLabel(src, cfg.TipText, 28, 0.5, 0.85),
		message:    newLabel(src, cfg.EndText, 40, 0.5, 0.2),
	}, nil
}

// Draw renders snow, tree, markers, then text.
func (r *Renderer) Draw(screen *ebiten.Image, s *Show) {
	t0 := time.Now()

	screen.Fill(r.ClearColor.toRGBA())
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	cam := s.Camera()
	cam.SetAspect(w, h)
	vp := cam.ViewProjection()

	r.drawCloud(screen, s.Snow.Cloud, vp.Mul4(s.Snow.Model()), w, h)
	r.drawCloud(screen, s.Cloud, vp.Mul4(s.Model()), w, h)
	r.drawMarker(screen, s.Launcher, vp, w, h)
	r.drawMarker(screen, &s.Ornament.Marker, vp, w, h)

	r.tip.draw(screen, s.TipAlpha)
	r.message.draw(screen, s.MessageAlpha)

	s.recordDrawTime(time.Since(t0))
}

// drawCloud projects every point of pc through mvp and submits the batch.
func (r *Renderer) drawCloud(target *ebiten.Image, pc *PointCloud, mvp mgl64.Mat4, w, h float64) {
	if pc.Alpha <= 0 || pc.Len() == 0 {
		return
	}
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	for i := 0; i < pc.Len(); i++ {
		sx, sy, depth, ok := Project(mvp, pc.Position(i), w, h)
		if !ok {
			continue
		}
		j := i * 3
		c := Color{
			R: float64(pc.Colors[j]),
			G: float64(pc.Colors[j+1]),
			B: float64(pc.Colors[j+2]),
			A: pc.Alpha,
		}
		r.appendPoint(sx, sy, pointScreenSize(float64(pc.Sizes[i]), h, depth), c, fogFactor(r.FogDensity, depth))
	}
	pc.ClearDirty()
	r.flush(target, pc.BlendMode)
}

// drawMarker draws a single world-space sprite.
func (r *Renderer) drawMarker(target *ebiten.Image, m *Marker, vp mgl64.Mat4, w, h float64) {
	if m == nil || !m.Visible || m.Size <= 0 {
		return
	}
	sx, sy, depth, ok := Project(vp, m.Position, w, h)
	if !ok {
		return
	}
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	r.appendPoint(sx, sy, pointScreenSize(m.Size, h, depth), m.Color, fogFactor(r.FogDensity, depth))
	r.flush(target, BlendAdd)
}

// appendPoint appends one centred quad of edge px pixels, tinted c and
// dimmed by fog.
func (r *Renderer) appendPoint(sx, sy, px float64, c Color, fog float64) {
	if px <= 0 {
		return
	}
	half := float32(px / 2)
	x, y := float32(sx), float32(sy)
	ts := float32(particleTextureSize)

	keep := 1 - fog
	ca := float32(c.A)
	cr := float32(c.R*keep) * ca
	cg := float32(c.G*keep) * ca
	cb := float32(c.B*keep) * ca

	base := uint32(len(r.verts))
	dx := [4]float32{x - half, x + half, x - half, x + half}
	dy := [4]float32{y - half, y - half, y + half, y + half}
	su := [4]float32{0, ts, 0, ts}
	sv := [4]float32{0, 0, ts, ts}
	for i := 0; i < 4; i++ {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   dx[i],
			DstY:   dy[i],
			SrcX:   su[i],
			SrcY:   sv[i],
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}

	// Two triangles: TL-TR-BL, TR-BR-BL
	r.inds = append(r.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// flush submits accumulated vertices as a single DrawTriangles32 call.
func (r *Renderer) flush(target *ebiten.Image, blend BlendMode) {
	if len(r.verts) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.Blend = blend.EbitenBlend()
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles32(r.verts, r.inds, r.texture, &op)
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}

// pointScreenSize returns the pixel edge of a point of world size at the given
// view depth, attenuated like a perspective point sprite: size·(h/2)/depth.
func pointScreenSize(size, viewHeight, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return size * (viewHeight / 2) / depth
}

// fogFactor is the exponential-squared fog amount in [0, 1) at depth.
func fogFactor(density, depth float64) float64 {
	if density <= 0 {
		return 0
	}
	d := density * depth
	return 1 - math.Exp(-d*d)
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}
