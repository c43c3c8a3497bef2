// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sgl

import (
	"github.com/galvanized-logic/sgl/lin"
	"github.com/galvanized-logic/sgl/raster"
	"github.com/galvanized-logic/sgl/scene"
)

// PrimitiveMode selects the topology a begin/end block assembles.
type PrimitiveMode int

const (
	Points PrimitiveMode = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	Polygon
	AreaLight
)

func validPrimitiveMode(m PrimitiveMode) bool { return m >= Points && m <= AreaLight }

// Begin opens a vertex-assembly block: every subsequent call before
// End must be a vertex ingestion call. Grounded on mesh.go's
// stage-before-commit accumulation pattern (spec.md §4.D).
func (c *Context) Begin(mode PrimitiveMode) {
	if !c.requireActive() {
		return
	}
	if c.isDrawing {
		c.err.setError(InvalidOperation)
		return
	}
	if !validPrimitiveMode(mode) {
		c.err.setError(InvalidEnum)
		return
	}
	c.mode = mode
	c.vertices = c.vertices[:0]
	c.isDrawing = true
}

// End closes the current vertex-assembly block. While specifying a
// scene, a 3-vertex POLYGON/TRIANGLES block appends a Triangle and a
// 3-vertex AREA_LIGHT block appends an AreaLight to the scene; any
// other combination is invalid. Outside a scene, End dispatches to the
// rasterizer by (mode, area mode) per spec.md §4.D's table — a
// terminal switch, not the fallthrough the design notes flag as a
// likely source bug.
func (c *Context) End() {
	if !c.requireActive() {
		return
	}
	if !c.isDrawing {
		c.err.setError(InvalidOperation)
		return
	}
	c.isDrawing = false

	if c.isSpecifyingScene {
		c.endScenePrimitive()
		return
	}
	c.endRasterPrimitive()
}

// Vertex2f ingests a vertex with z=0, w=1.
func (c *Context) Vertex2f(x, y float32) { c.Vertex4f(x, y, 0, 1) }

// Vertex3f ingests a vertex with w=1.
func (c *Context) Vertex3f(x, y, z float32) { c.Vertex4f(x, y, z, 1) }

// Vertex4f ingests a homogeneous vertex. While specifying a scene, it
// is stored verbatim as a world-space coordinate (spec.md invariant 6:
// transforms never touch scene primitives); otherwise it is
// transformed by the cached PVM and perspective-divided immediately,
// per spec.md §4.D.
func (c *Context) Vertex4f(x, y, z, w float32) {
	if !c.requireActive() {
		return
	}
	if !c.isDrawing {
		c.err.setError(InvalidOperation)
		return
	}
	v := lin.V4(x, y, z, w)
	if !c.isSpecifyingScene {
		v = c.pvm.MulV(v).PerspectiveDivide()
	}
	c.vertices = append(c.vertices, v)
}

func (c *Context) endScenePrimitive() {
	switch c.mode {
	case Polygon, Triangles:
		if len(c.vertices) != 3 {
			c.err.setError(InvalidOperation)
			return
		}
		v0, v1, v2 := c.vertices[0].Vec3(), c.vertices[1].Vec3(), c.vertices[2].Vec3()
		c.scene.AddPrimitive(scene.NewTriangle(v0, v1, v2, c.material))
	case AreaLight:
		if len(c.vertices) != 3 {
			c.err.setError(InvalidOperation)
			return
		}
		v0, v1, v2 := c.vertices[0].Vec3(), c.vertices[1].Vec3(), c.vertices[2].Vec3()
		light := scene.NewAreaLight(v0, v1, v2, c.drawColor, c.lightAtten[0], c.lightAtten[1], c.lightAtten[2])
		c.scene.AddLight(light)
	default:
		c.err.setError(InvalidOperation)
	}
}

func (c *Context) rasterVerts() []raster.Vertex {
	verts := make([]raster.Vertex, len(c.vertices))
	for i, v := range c.vertices {
		verts[i] = raster.Vertex{X: v.X, Y: v.Y, Z: v.Z}
	}
	return verts
}

func (c *Context) endRasterPrimitive() {
	verts := c.rasterVerts()
	depthTest := c.depthTestOn()

	switch c.mode {
	case Points:
		raster.Splat(c.fb, verts, c.pointSize, depthTest, c.drawColor)

	case Lines:
		if c.areaMode == AreaPoint {
			raster.Splat(c.fb, verts, c.pointSize, depthTest, c.drawColor)
			return
		}
		for i := 0; i+1 < len(verts); i += 2 {
			raster.Line(c.fb, verts[i], verts[i+1], depthTest, c.drawColor)
		}

	case LineStrip:
		if c.areaMode == AreaPoint {
			raster.Splat(c.fb, verts, c.pointSize, depthTest, c.drawColor)
			return
		}
		raster.Outline(c.fb, verts, false, depthTest, c.drawColor)

	case LineLoop:
		if c.areaMode == AreaPoint {
			raster.Splat(c.fb, verts, c.pointSize, depthTest, c.drawColor)
			return
		}
		raster.Outline(c.fb, verts, true, depthTest, c.drawColor)

	case Polygon:
		if len(verts) < 3 {
			return
		}
		switch c.areaMode {
		case AreaPoint:
			raster.Splat(c.fb, verts, c.pointSize, depthTest, c.drawColor)
		case AreaLine:
			raster.Outline(c.fb, verts, true, depthTest, c.drawColor)
		case AreaFill:
			raster.Fill(c.fb, verts, depthTest, c.drawColor)
		}

	case Triangles:
		for i := 0; i+2 < len(verts); i += 3 {
			tri := verts[i : i+3]
			switch c.areaMode {
			case AreaPoint:
				raster.Splat(c.fb, tri, c.pointSize, depthTest, c.drawColor)
			case AreaLine:
				raster.Outline(c.fb, tri, true, depthTest, c.drawColor)
			case AreaFill:
				raster.Fill(c.fb, tri, depthTest, c.drawColor)
			}
		}

	default:
		c.err.setError(InvalidOperation)
	}
}
