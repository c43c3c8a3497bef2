// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sgl

import (
	"math"

	"github.com/galvanized-logic/sgl/lin"
	"github.com/galvanized-logic/sgl/raster"
)

// ellipseArcVerts is the 40-vertex polyline approximation's vertex
// count for a full loop (spec.md §4.E); Arc scales this down by the
// fraction of the circle it sweeps.
const ellipseArcVerts = 40

// Circle draws a midpoint circle centered at (x,y,z) with pixel-space
// radius r scaled by sqrt(|det| of the PVM's upper-left 2x2 block)
// (spec.md §4.E). The outline/fill choice follows the current area
// mode; POINT and LINE area modes both draw the unfilled eight-way
// symmetric outline (the rasterizer only distinguishes fill from
// not-fill, per spec.md §4.E's algorithm description).
func (c *Context) Circle(x, y, z, r float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	if r <= 0 {
		c.err.setError(InvalidValue)
		return
	}
	center := c.pvm.MulV(lin.V4(x, y, z, 1)).PerspectiveDivide()
	scale := float32(math.Sqrt(math.Abs(float64(c.pvm.UpperLeft2x2Det()))))
	raster.Circle(c.fb, raster.Vertex{X: center.X, Y: center.Y, Z: center.Z}, r*scale, c.areaMode == AreaFill, c.depthTestOn(), c.drawColor)
}

// ellipsePoint returns the PVM-transformed, perspective-divided vertex
// on the ellipse centered at (x,y,z) with semi-axes a,b at the given
// angle (radians, in the object's local XY plane).
func (c *Context) ellipsePoint(x, y, z, a, b, angle float32) lin.Vec4 {
	sin, cos := math.Sincos(float64(angle))
	local := lin.V4(x+a*float32(cos), y+b*float32(sin), z, 1)
	return c.pvm.MulV(local).PerspectiveDivide()
}

func (c *Context) emitCurve(pts []lin.Vec4, center lin.Vec4, closedWhenOutlined bool) {
	switch c.areaMode {
	case AreaFill:
		verts := make([]raster.Vertex, len(pts)+1)
		for i, v := range pts {
			verts[i] = raster.Vertex{X: v.X, Y: v.Y, Z: v.Z}
		}
		verts[len(pts)] = raster.Vertex{X: center.X, Y: center.Y, Z: center.Z}
		raster.Fill(c.fb, verts, c.depthTestOn(), c.drawColor)
	case AreaLine:
		verts := make([]raster.Vertex, len(pts))
		for i, v := range pts {
			verts[i] = raster.Vertex{X: v.X, Y: v.Y, Z: v.Z}
		}
		raster.Outline(c.fb, verts, closedWhenOutlined, c.depthTestOn(), c.drawColor)
	default: // AreaPoint
		verts := make([]raster.Vertex, len(pts))
		for i, v := range pts {
			verts[i] = raster.Vertex{X: v.X, Y: v.Y, Z: v.Z}
		}
		raster.Splat(c.fb, verts, c.pointSize, c.depthTestOn(), c.drawColor)
	}
}

// Ellipse draws a 40-vertex polyline approximation of a full ellipse
// centered at (x,y,z) with semi-axes a,b. With AreaFill, the center
// vertex is appended and the loop scanline-filled as a polygon.
func (c *Context) Ellipse(x, y, z, a, b float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	if a <= 0 || b <= 0 {
		c.err.setError(InvalidValue)
		return
	}
	pts := make([]lin.Vec4, ellipseArcVerts)
	for i := range pts {
		angle := 2 * math.Pi * float32(i) / float32(ellipseArcVerts)
		pts[i] = c.ellipsePoint(x, y, z, a, b, angle)
	}
	center := c.pvm.MulV(lin.V4(x, y, z, 1)).PerspectiveDivide()
	c.emitCurve(pts, center, true)
}

// Arc draws a partial-circle polyline from angle "from" to "to"
// (radians), sized to (40*|to-from|/2pi) vertices (spec.md §4.E). With
// AreaFill the center vertex is appended, producing a pie-slice fill;
// otherwise the arc is drawn as an open polyline (never closed back to
// its own start, unlike the full Ellipse loop).
func (c *Context) Arc(x, y, z, r, from, to float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	if r <= 0 {
		c.err.setError(InvalidValue)
		return
	}
	sweep := to - from
	if sweep < 0 {
		sweep = -sweep
	}
	n := int(float32(ellipseArcVerts) * sweep / (2 * math.Pi))
	if n < 2 {
		n = 2
	}
	pts := make([]lin.Vec4, n)
	for i := 0; i < n; i++ {
		angle := from + (to-from)*float32(i)/float32(n-1)
		pts[i] = c.ellipsePoint(x, y, z, r, r, angle)
	}
	center := c.pvm.MulV(lin.V4(x, y, z, 1)).PerspectiveDivide()
	c.emitCurve(pts, center, false)
}
