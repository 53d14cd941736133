package spiraltree

import "github.com/go-gl/mathgl/mgl64"

// Ray is a half-line starting at Origin. Direction is kept unit length.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay returns a ray with a normalized direction.
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// ClosestPoint returns the point on the ray nearest p. Points behind the
// origin project onto the origin itself.
func (r Ray) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	t := p.Sub(r.Origin).Dot(r.Direction)
	if t < 0 {
		return r.Origin
	}
	return r.Origin.Add(r.Direction.Mul(t))
}

// DistanceSq returns the squared distance from p to the ray.
func (r Ray) DistanceSq(p mgl64.Vec3) float64 {
	d := p.Sub(r.ClosestPoint(p))
	return d.Dot(d)
}

// Transform maps the ray through m (an affine matrix). The direction is
// renormalized so scaled transforms keep distances meaningful.
func (r Ray) Transform(m mgl64.Mat4) Ray {
	origin := mgl64.TransformCoordinate(r.Origin, m)
	dir := mgl64.TransformNormal(r.Direction, m)
	return NewRay(origin, dir)
}
