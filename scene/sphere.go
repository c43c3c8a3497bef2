// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"math"

	"github.com/galvanized-logic/sgl/lin"
)

// Sphere is a scene primitive defined by a center and radius. Its
// Intersect reports hits from inside the sphere as well as outside
// (the nearer root negative, the farther positive).
type Sphere struct {
	Center lin.Vec3
	Radius float32
	Mat_   *Material
}

// NewSphere returns a Sphere primitive referencing mat by pointer;
// materials are shared, not copied.
func NewSphere(center lin.Vec3, radius float32, mat *Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat_: mat}
}

func (s *Sphere) Mat() *Material { return s.Mat_ }

// Intersect solves the ray-sphere quadratic in t and returns the
// smallest positive root. If the ray origin is inside the sphere the
// nearer root is negative and the farther positive; that farther root
// is still reported as the exit hit.
func (s *Sphere) Intersect(r Ray) (Hit, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Dir.Dot(r.Dir)
	b := 2 * r.Dir.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return Hit{}, false
	}
	sqrtDisc := float32(math.Sqrt(float64(disc)))
	t0 := (-b - sqrtDisc) / (2 * a)
	t1 := (-b + sqrtDisc) / (2 * a)

	var t float32
	switch {
	case t0 > 0:
		t = t0
	case t1 > 0:
		t = t1
	default:
		return Hit{}, false
	}
	return Hit{T: t, Point: r.At(t)}, true
}

// Normal returns the outward unit normal at point.
func (s *Sphere) Normal(point lin.Vec3) lin.Vec3 { return point.Sub(s.Center).Unit() }

// UV returns the equirectangular parameterization of point's surface
// direction.
func (s *Sphere) UV(point lin.Vec3) lin.Vec2 {
	d := point.Sub(s.Center).Unit()
	u := 0.5 - float32(math.Atan2(float64(d.Z), float64(d.X))/(2*math.Pi))
	v := 0.5 + float32(math.Asin(float64(clampAsin(d.Y)))/math.Pi)
	return lin.Vec2{X: u, Y: v}
}

func clampAsin(f float32) float32 {
	if f < -1 {
		return -1
	}
	if f > 1 {
		return 1
	}
	return f
}
