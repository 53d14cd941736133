package spiraltree

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera that always looks at Target. Its X and Y
// ease toward an input-driven goal; Z stays where it was configured.
type Camera struct {
	// Position is the eye point in world space.
	Position mgl64.Vec3
	// Target is the point the camera looks at (the scene origin by default).
	Target mgl64.Vec3
	// Up is the world up vector.
	Up mgl64.Vec3
	// Fov is the vertical field of view in degrees.
	Fov float64
	// Aspect is viewport width over height.
	Aspect float64
	// Near and Far are the clip plane distances.
	Near, Far float64

	followLerp float64
	lookRange  float64
	baseY      float64

	view        mgl64.Mat4
	proj        mgl64.Mat4
	viewProj    mgl64.Mat4
	invViewProj mgl64.Mat4
	dirty       bool
}

// newCamera creates a camera from cfg with the given aspect ratio.
func newCamera(cfg CameraConfig, aspect float64) *Camera {
	if aspect <= 0 {
		aspect = 1
	}
	return &Camera{
		Position:   mgl64.Vec3{cfg.X, cfg.Y, cfg.Z},
		Up:         mgl64.Vec3{0, 1, 0},
		Fov:        cfg.Fov,
		Aspect:     aspect,
		Near:       cfg.Near,
		Far:        cfg.Far,
		followLerp: cfg.FollowLerp,
		lookRange:  cfg.LookRange,
		baseY:      cfg.Y,
		dirty:      true,
	}
}

// SetAspect updates the aspect ratio from a viewport size. Zero sizes are
// ignored.
func (c *Camera) SetAspect(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	aspect := width / height
	if aspect != c.Aspect {
		c.Aspect = aspect
		c.dirty = true
	}
}

// Follow eases the camera one frame toward the goal derived from a look
// vector: x = look.X·range, y = base − look.Y·range. The approach is
// exponential and never snaps.
func (c *Camera) Follow(look Vec2) {
	goalX := look.X * c.lookRange
	goalY := -look.Y*c.lookRange + c.baseY
	prev := c.Position
	c.Position[0] += (goalX - c.Position[0]) * c.followLerp
	c.Position[1] += (goalY - c.Position[1]) * c.followLerp
	if c.Position != prev {
		c.dirty = true
	}
}

// MarkDirty forces the matrices to be recomputed on next use.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// computeMatrices refreshes the cached matrices if dirty.
func (c *Camera) computeMatrices() {
	if !c.dirty {
		return
	}
	c.dirty = false
	c.view = mgl64.LookAtV(c.Position, c.Target, c.Up)
	c.proj = mgl64.Perspective(mgl64.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
	c.viewProj = c.proj.Mul4(c.view)
	c.invViewProj = c.viewProj.Inv()
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	c.computeMatrices()
	return c.view
}

// Projection returns the camera-to-clip matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	c.computeMatrices()
	return c.proj
}

// ViewProjection returns Projection × View.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	c.computeMatrices()
	return c.viewProj
}

// Ray casts from the eye through a normalized device coordinate in [-1, 1]²
// (y up) and returns the world-space ray.
func (c *Camera) Ray(ndc Vec2) Ray {
	c.computeMatrices()
	through := mgl64.TransformCoordinate(mgl64.Vec3{ndc.X, ndc.Y, 0.5}, c.invViewProj)
	return NewRay(c.Position, through.Sub(c.Position))
}

// RayInSpace casts like Ray and maps the result into the local space of an
// object whose world transform is model. Call once per frame, not per point.
func (c *Camera) RayInSpace(ndc Vec2, model mgl64.Mat4) Ray {
	return c.Ray(ndc).Transform(model.Inv())
}

// Project maps a local-space point through mvp onto a width×height viewport.
// depth is the clip w (distance along the view axis). ok is false for points
// behind the near plane or beyond the far plane.
func Project(mvp mgl64.Mat4, p mgl64.Vec3, width, height float64) (sx, sy, depth float64, ok bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, 0, false
	}
	nz := clip.Z() / w
	if nz < -1 || nz > 1 {
		return 0, 0, 0, false
	}
	nx := clip.X() / w
	ny := clip.Y() / w
	sx = (nx*0.5 + 0.5) * width
	sy = (0.5 - ny*0.5) * height
	return sx, sy, w, true
}
