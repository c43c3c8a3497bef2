// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import "github.com/galvanized-logic/sgl/lin"

// Ray is a world-space ray: points at Origin + t*Dir for t >= 0.
type Ray struct {
	Origin, Dir lin.Vec3
}

// At returns the point along the ray at parameter t.
func (r Ray) At(t float32) lin.Vec3 { return r.Origin.Add(r.Dir.Scale(t)) }

// Hit describes a ray-primitive intersection.
type Hit struct {
	T     float32
	Point lin.Vec3
}

// Primitive is implemented by every piece of scene geometry: Sphere
// and Triangle. It is a small interface rather than a closed sum
// type, since the two share nothing beyond the ability to be
// intersected and shaded.
type Primitive interface {
	// Intersect returns the nearest positive-t intersection, if any.
	Intersect(r Ray) (Hit, bool)

	// Normal returns the surface normal at point (assumed to lie on
	// the primitive).
	Normal(point lin.Vec3) lin.Vec3

	// UV returns the surface parameterization at point.
	UV(point lin.Vec3) lin.Vec2

	// Mat returns the primitive's shared material reference.
	Mat() *Material
}
