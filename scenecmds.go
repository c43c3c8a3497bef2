// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sgl

import (
	"log/slog"

	"github.com/galvanized-logic/sgl/lin"
	"github.com/galvanized-logic/sgl/raster"
	"github.com/galvanized-logic/sgl/scene"
	"github.com/galvanized-logic/sgl/trace"
)

// BeginScene opens scene specification: subsequent Sphere, Material,
// EmissiveMaterial, PointLight, EnvironmentMap, and
// Begin(Polygon|Triangles|AreaLight)/End calls populate the scene
// instead of rasterizing. Resets any previously specified scene.
func (c *Context) BeginScene() {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	c.scene.Reset()
	c.isSpecifyingScene = true
}

// EndScene closes scene specification.
func (c *Context) EndScene() {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	c.isSpecifyingScene = false
}

// Sphere appends a sphere primitive to the scene using the current
// material. Per spec.md invariant 5, only valid while specifying a
// scene.
func (c *Context) Sphere(x, y, z, r float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	if !c.isSpecifyingScene {
		c.err.setError(InvalidOperation)
		return
	}
	if r <= 0 {
		c.err.setError(InvalidValue)
		return
	}
	c.scene.AddPrimitive(scene.NewSphere(lin.V3(x, y, z), r, c.material))
}

// Material sets the current material to a plain constant-color
// material, used by subsequently assembled scene primitives.
func (c *Context) Material(r, g, b, kd, ks, shine, t, ior float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	c.material = scene.NewMaterial(lin.V3(r, g, b), kd, ks, shine, t, ior)
}

// EmissiveMaterial sets the current material to an emissive one:
// subsequent primitives built with it contribute color directly to a
// ray hit, with no shadow test (spec.md §3, §4.G).
func (c *Context) EmissiveMaterial(r, g, b, c0, c1, c2 float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	c.material = scene.NewEmissiveMaterial(lin.V3(r, g, b), c0, c1, c2)
}

// PointLight appends a point light to the scene.
func (c *Context) PointLight(x, y, z, r, g, b float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	if !c.isSpecifyingScene {
		c.err.setError(InvalidOperation)
		return
	}
	c.scene.AddLight(scene.NewPointLight(lin.V3(x, y, z), lin.V3(r, g, b)))
}

// EnvironmentMap installs a caller-owned W*H RGB float buffer, sampled
// equirectangularly in place of the clear color for ray-traced misses.
// The buffer is referenced, not copied, and must outlive its use.
func (c *Context) EnvironmentMap(w, h int, rgb []float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	if w <= 0 || h <= 0 || len(rgb) != w*h*3 {
		c.err.setError(InvalidValue)
		return
	}
	if c.scene.Env != nil {
		slog.Warn("sgl: environment map replaced while scene still references the previous one")
	}
	c.scene.SetEnvironment(scene.NewEnvironment(w, h, rgb))
}

// projModelView returns projection.top * model_view.top — deliberately
// excluding the viewport, unlike the rasterizer's cached Context.pvm —
// since the ray tracer's primary-ray generation maps pixels to NDC
// itself (sgl/trace.pixelToNDC) before unprojecting.
func (c *Context) projModelView() lin.Mat4 {
	mv := c.modelView[len(c.modelView)-1]
	pr := c.projection[len(c.projection)-1]
	return pr.Mul(mv)
}

// RayTraceScene renders the specified scene with the Whitted ray
// tracer into the context's framebuffer.
func (c *Context) RayTraceScene() {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	invPVM, ok := c.projModelView().Inverse()
	if !ok {
		c.err.setError(InvalidOperation)
		return
	}
	invMV, ok := c.modelView[len(c.modelView)-1].Inverse()
	if !ok {
		c.err.setError(InvalidOperation)
		return
	}
	tr := trace.New(c.scene, c.clearColor, c.cfg.Trace)
	tr.TraceFrame(c.fb, invPVM, invMV)
}

// RasterizeScene renders the specified scene's Triangle primitives
// through the rasterizer instead of the ray tracer: each triangle is
// projected by the current PVM and scanline-filled with its material's
// plain color. Sphere primitives have no rasterizer representation
// (spec.md's rasterizer has no curved-surface fill rule) and are
// skipped — an [EXPANSION] resolution of an open question spec.md §6
// leaves unstated; see DESIGN.md.
func (c *Context) RasterizeScene() {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	depthTest := c.depthTestOn()
	for _, p := range c.scene.Primitives {
		tri, ok := p.(*scene.Triangle)
		if !ok {
			slog.Debug("sgl: RasterizeScene skipping non-triangle primitive")
			continue
		}
		verts := [3]raster.Vertex{
			rasterVertex(c.pvm, tri.V0),
			rasterVertex(c.pvm, tri.V1),
			rasterVertex(c.pvm, tri.V2),
		}
		raster.Fill(c.fb, verts[:], depthTest, tri.Mat().Color)
	}
}

func rasterVertex(pvm lin.Mat4, p lin.Vec3) raster.Vertex {
	v := pvm.MulV(p.Homogeneous(1)).PerspectiveDivide()
	return raster.Vertex{X: v.X, Y: v.Y, Z: v.Z}
}
