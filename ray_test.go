package spiraltree

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewRayNormalizes(t *testing.T) {
	r := NewRay(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 0, -10})
	if !vecApproxEqual(r.Direction, mgl64.Vec3{0, 0, -1}, epsilon) {
		t.Errorf("Direction = %v, want (0,0,-1)", r.Direction)
	}
}

func TestRayClosestPoint(t *testing.T) {
	r := NewRay(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1})
	tests := []struct {
		name string
		p    mgl64.Vec3
		want mgl64.Vec3
		dsq  float64
	}{
		{"on ray", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 0}, 0},
		{"beside ray", mgl64.Vec3{3, 0, 2}, mgl64.Vec3{0, 0, 2}, 9},
		{"above ray", mgl64.Vec3{0, -4, -5}, mgl64.Vec3{0, 0, -5}, 16},
		{"behind origin", mgl64.Vec3{1, 0, 20}, mgl64.Vec3{0, 0, 10}, 101},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ClosestPoint(tt.p); !vecApproxEqual(got, tt.want, epsilon) {
				t.Errorf("ClosestPoint = %v, want %v", got, tt.want)
			}
			if got := r.DistanceSq(tt.p); !approxEqual(got, tt.dsq, epsilon) {
				t.Errorf("DistanceSq = %f, want %f", got, tt.dsq)
			}
		})
	}
}

func TestRayTransform(t *testing.T) {
	r := NewRay(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1})

	moved := r.Transform(mgl64.Translate3D(1, 2, 3))
	if !vecApproxEqual(moved.Origin, mgl64.Vec3{1, 2, 13}, epsilon) {
		t.Errorf("translated origin = %v", moved.Origin)
	}
	if !vecApproxEqual(moved.Direction, r.Direction, epsilon) {
		t.Errorf("translation changed direction: %v", moved.Direction)
	}

	// +90° about Y maps -Z onto -X.
	turned := r.Transform(mgl64.HomogRotate3DY(math.Pi / 2))
	if !vecApproxEqual(turned.Direction, mgl64.Vec3{-1, 0, 0}, 1e-9) {
		t.Errorf("rotated direction = %v, want (-1,0,0)", turned.Direction)
	}

	scaled := r.Transform(mgl64.Scale3D(3, 3, 3))
	if !approxEqual(scaled.Direction.Len(), 1, 1e-9) {
		t.Errorf("scaled direction length = %f, want 1", scaled.Direction.Len())
	}
}
