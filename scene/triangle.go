// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import "github.com/galvanized-logic/sgl/lin"

// Triangle is a scene primitive with a precomputed face normal and
// optional per-vertex texture coordinates.
type Triangle struct {
	V0, V1, V2    lin.Vec3
	UV0, UV1, UV2 lin.Vec2
	HasUV         bool
	Mat_          *Material

	normal lin.Vec3
}

// NewTriangle returns a Triangle primitive with its face normal
// precomputed from the winding of v0, v1, v2.
func NewTriangle(v0, v1, v2 lin.Vec3, mat *Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Mat_: mat}
	t.normal = v1.Sub(v0).Cross(v2.Sub(v0)).Unit()
	return t
}

// SetUVs attaches per-vertex texture coordinates, used by UV's
// barycentric interpolation.
func (t *Triangle) SetUVs(uv0, uv1, uv2 lin.Vec2) {
	t.UV0, t.UV1, t.UV2 = uv0, uv1, uv2
	t.HasUV = true
}

func (t *Triangle) Mat() *Material { return t.Mat_ }

// Intersect implements Möller-Trumbore with barycentric acceptance
// b1 >= 0, b2 >= 0, b1+b2 <= 1 and t > 0.
func (t *Triangle) Intersect(r Ray) (Hit, bool) {
	const epsilon = 1e-7

	e1 := t.V1.Sub(t.V0)
	e2 := t.V2.Sub(t.V0)
	pvec := r.Dir.Cross(e2)
	det := e1.Dot(pvec)
	if det > -epsilon && det < epsilon {
		return Hit{}, false
	}
	invDet := 1 / det

	tvec := r.Origin.Sub(t.V0)
	b1 := tvec.Dot(pvec) * invDet
	if b1 < 0 || b1 > 1 {
		return Hit{}, false
	}

	qvec := tvec.Cross(e1)
	b2 := r.Dir.Dot(qvec) * invDet
	if b2 < 0 || b1+b2 > 1 {
		return Hit{}, false
	}

	tt := e2.Dot(qvec) * invDet
	if tt <= 0 {
		return Hit{}, false
	}
	return Hit{T: tt, Point: r.At(tt)}, true
}

// Normal returns the precomputed face normal (independent of the hit
// point since the triangle is flat).
func (t *Triangle) Normal(_ lin.Vec3) lin.Vec3 { return t.normal }

// UV returns the barycentric interpolation of the stored per-vertex
// texture coordinates; if none were set, returns the origin.
func (t *Triangle) UV(point lin.Vec3) lin.Vec2 {
	if !t.HasUV {
		return lin.Vec2{}
	}
	b0, b1, b2 := t.barycentric(point)
	return lin.Vec2{
		X: b0*t.UV0.X + b1*t.UV1.X + b2*t.UV2.X,
		Y: b0*t.UV0.Y + b1*t.UV1.Y + b2*t.UV2.Y,
	}
}

func (t *Triangle) barycentric(p lin.Vec3) (b0, b1, b2 float32) {
	e1 := t.V1.Sub(t.V0)
	e2 := t.V2.Sub(t.V0)
	ep := p.Sub(t.V0)

	d00 := e1.Dot(e1)
	d01 := e1.Dot(e2)
	d11 := e2.Dot(e2)
	d20 := ep.Dot(e1)
	d21 := ep.Dot(e2)
	denom := d00*d11 - d01*d01
	if denom == 0 {
		return 1, 0, 0
	}
	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1 - v - w
	return u, v, w
}
