// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package trace implements a Whitted-style ray tracer: primary ray
// generation from the inverse PVM/view transforms, recursive
// reflection/refraction, shadow rays, area-light sampling, optional
// depth-of-field, and an adaptive anti-aliasing post pass.
package trace

import (
	"math"
	"math/rand"

	"github.com/galvanized-logic/sgl/lin"
	"github.com/galvanized-logic/sgl/raster"
	"github.com/galvanized-logic/sgl/scene"
)

// RayType distinguishes a ray traveling through air (Normal) from one
// traveling inside a refractive medium (Inside); it flips normal
// orientation and inverts the index-of-refraction ratio used at the
// next refraction.
type RayType int

const (
	Normal RayType = iota
	Inside
)

// Config holds the tracer's tunable constants as fields instead of
// hard-coded literals.
type Config struct {
	MaxDepth int // Recursion depth ceiling.

	EnableDOF   bool
	Aperture    float32 // Jitter window side squared.
	FocalLength float32 // Focal-plane distance factor.
	DOFRays     int     // Samples per pixel when DOF is enabled.

	EnableAA    bool
	AAThreshold float32 // Neighbor color-distance trigger.
}

// DefaultConfig returns reasonable defaults for every Config field.
func DefaultConfig() Config {
	return Config{
		MaxDepth:    8,
		Aperture:    256,
		FocalLength: 900,
		DOFRays:     16,
		AAThreshold: 0.2,
	}
}

// Tracer renders one scene.Scene into a raster.Framebuffer.
type Tracer struct {
	Scene      *scene.Scene
	ClearColor lin.Vec3
	Config     Config

	rng *rand.Rand
}

// New returns a Tracer for sc using the given clear color and config.
func New(sc *scene.Scene, clearColor lin.Vec3, cfg Config) *Tracer {
	return &Tracer{Scene: sc, ClearColor: clearColor, Config: cfg, rng: rand.New(rand.NewSource(1))}
}

// pixelToNDC maps a (possibly fractional) pixel coordinate to NDC
// [-1,1], with row 0 at the top of the image — px=0,py=0 is the
// top-left pixel's top-left corner; add 0.5 to sample a pixel center.
// The ray tracer's invPVM is the inverse of projection*model_view only
// (no viewport — unlike the rasterizer's cached Context.pvm), so
// primary rays are generated in NDC and never touch pixel-resolution
// scaling at all.
func pixelToNDC(px, py float32, w, h int) (float32, float32) {
	ndcX := 2*px/float32(w) - 1
	ndcY := 1 - 2*py/float32(h)
	return ndcX, ndcY
}

// primaryRay casts the ray through pixel-space point (px,py): the
// clip-space point (x,y,-1,1) is unprojected by the inverse PVM to a
// world-space point on the near plane, the eye position is recovered
// by unprojecting the origin through the inverse model-view, and the
// ray direction is the normalized difference between them.
func primaryRay(px, py float32, w, h int, invPVM, invModelView lin.Mat4) (scene.Ray, lin.Vec3, lin.Vec3) {
	ndcX, ndcY := pixelToNDC(px, py, w, h)
	clip := lin.V4(ndcX, ndcY, -1, 1)
	pWorld := invPVM.MulV(clip).PerspectiveDivide().Vec3()
	origin := invModelView.MulV(lin.V4(0, 0, 0, 1)).PerspectiveDivide().Vec3()
	dir := pWorld.Sub(origin).Unit()
	return scene.Ray{Origin: origin, Dir: dir}, pWorld, origin
}

// TraceFrame renders every pixel of fb, then applies the adaptive
// anti-aliasing post pass if enabled.
func (tr *Tracer) TraceFrame(fb *raster.Framebuffer, invPVM, invModelView lin.Mat4) {
	for y := 0; y < fb.H; y++ {
		for x := 0; x < fb.W; x++ {
			var c lin.Vec3
			if tr.Config.EnableDOF {
				c = tr.dofColor(float32(x)+0.5, float32(y)+0.5, fb.W, fb.H, invPVM, invModelView)
			} else {
				r, _, _ := primaryRay(float32(x)+0.5, float32(y)+0.5, fb.W, fb.H, invPVM, invModelView)
				c = tr.castRay(r, 0, Normal)
			}
			fb.PutPixel(x, y, c.X, c.Y, c.Z)
		}
	}
	if tr.Config.EnableAA {
		tr.adaptiveAA(fb, invPVM, invModelView)
	}
}

// castRay returns the color seen along r at the given recursion depth.
func (tr *Tracer) castRay(r scene.Ray, depth int, rt RayType) lin.Vec3 {
	if depth > tr.Config.MaxDepth {
		return tr.ClearColor
	}

	prim, hit, ok := tr.nearestHit(r, rt)
	if !ok {
		if tr.Scene.Env != nil {
			return tr.Scene.Env.Sample(r.Dir)
		}
		return tr.ClearColor
	}
	return tr.shade(prim, hit, r, depth, rt)
}

// nearestHit returns the closest positive-t intersection. For a
// Normal ray, hits whose normal does not face against the ray are
// culled (the one-sided backface rule); an Inside ray skips that
// culling since it is traveling through the medium's own surface from
// the other direction.
func (tr *Tracer) nearestHit(r scene.Ray, rt RayType) (scene.Primitive, scene.Hit, bool) {
	var bestPrim scene.Primitive
	var bestHit scene.Hit
	found := false
	for _, p := range tr.Scene.Primitives {
		hit, ok := p.Intersect(r)
		if !ok {
			continue
		}
		if rt == Normal && p.Normal(hit.Point).Dot(r.Dir) >= 0 {
			continue
		}
		if !found || hit.T < bestHit.T {
			bestPrim, bestHit, found = p, hit, true
		}
	}
	return bestPrim, bestHit, found
}

// shadowEpsilon, reflectEpsilon, and refractEpsilon offset ray
// origins off the surface they left, to avoid immediate
// self-intersection.
const (
	shadowEpsilon  = 1e-4
	reflectEpsilon = 1e-4
	refractEpsilon = 1.8e-3
)

// shade computes the Phong, reflected, and refracted color at a hit.
// An emissive hit short-circuits to its constant color with no shadow
// test: it is a light source, not a reflector.
func (tr *Tracer) shade(prim scene.Primitive, hit scene.Hit, r scene.Ray, depth int, rt RayType) lin.Vec3 {
	mat := prim.Mat()
	if mat.IsEmissive {
		return mat.Color
	}

	n := prim.Normal(hit.Point)
	eta := float32(1) / mat.IOR
	if rt == Inside {
		n = n.Neg()
		eta = mat.IOR
	}

	var color lin.Vec3

	if mat.Ks != 0 {
		reflDir := lin.Reflect(r.Dir, n)
		reflRay := scene.Ray{Origin: hit.Point.Add(reflDir.Scale(reflectEpsilon)), Dir: reflDir}
		color = color.Add(tr.castRay(reflRay, depth+1, rt).Scale(mat.Ks))
	}

	if mat.T != 0 {
		refrDir := lin.Refract(r.Dir, n, eta)
		if refrDir != (lin.Vec3{}) {
			nextType := Normal
			if rt == Normal {
				nextType = Inside
			}
			refrRay := scene.Ray{Origin: hit.Point.Add(refrDir.Scale(refractEpsilon)), Dir: refrDir}
			color = color.Add(tr.castRay(refrRay, depth+1, nextType).Scale(mat.T))
		}
	}

	color = color.Add(tr.phong(prim, mat, hit, r, n))
	return color
}

// phong accumulates diffuse and specular contributions from every
// light, testing occlusion per sample. The result is left unclamped:
// the caller may recurse and compose it further before any final
// tonemapping.
func (tr *Tracer) phong(prim scene.Primitive, mat *scene.Material, hit scene.Hit, r scene.Ray, n lin.Vec3) lin.Vec3 {
	var sum lin.Vec3
	uv := prim.UV(hit.Point)
	matColor := mat.ColorAt(uv)
	viewDir := r.Dir.Neg().Unit()

	for _, light := range tr.Scene.Lights {
		for i := 0; i < light.SampleCount(); i++ {
			dirToLight, lcolor, dist := light.Sample(i, hit.Point)
			if lcolor == (lin.Vec3{}) {
				continue
			}

			shadowOrigin := hit.Point.Add(dirToLight.Scale(shadowEpsilon))
			shadowRay := scene.Ray{Origin: shadowOrigin, Dir: dirToLight}
			if tr.occluded(shadowRay, dist) {
				continue
			}

			ndotl := n.Dot(dirToLight)
			if ndotl > 0 {
				sum = sum.Add(lcolor.Mul(matColor).Scale(mat.Kd * ndotl))
			}

			reflected := n.Scale(2 * ndotl).Sub(dirToLight)
			vdotr := viewDir.Dot(reflected)
			if vdotr > 0 && mat.Shine > 0 {
				spec := float32(math.Pow(float64(vdotr), float64(mat.Shine)))
				sum = sum.Add(lcolor.Scale(mat.Ks * spec))
			}
		}
	}
	return sum
}

// occluded reports whether anything along r blocks the light at
// distance dist, ignoring emissive surfaces: an emissive surface is
// itself a light source and casts no shadow.
func (tr *Tracer) occluded(r scene.Ray, dist float32) bool {
	for _, p := range tr.Scene.Primitives {
		hit, ok := p.Intersect(r)
		if !ok {
			continue
		}
		if p.Mat().IsEmissive {
			continue
		}
		if hit.T < dist-shadowEpsilon {
			return true
		}
	}
	return false
}
