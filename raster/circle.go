// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

// Circle draws a midpoint circle of the given pixel-space radius
// centered at center, using eight-way symmetry from one octant. Every
// fragment shares center.Z as its depth. When fill is true, the
// eight-pixel emission is replaced by four horizontal spans
// connecting symmetric pairs.
func Circle(fb *Framebuffer, center Vertex, radius float32, fill, depthTest bool, c Color) {
	cx, cy := int(center.X), int(center.Y)
	r := int(radius + 0.5)
	if r < 0 {
		return
	}

	x, y := r, 0
	err := 1 - r
	for x >= y {
		emitOctants(fb, cx, cy, x, y, center.Z, fill, depthTest, c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func emitOctants(fb *Framebuffer, cx, cy, x, y int, z float32, fill, depthTest bool, c Color) {
	if fill {
		span(fb, cx-x, cx+x, cy+y, z, depthTest, c)
		span(fb, cx-x, cx+x, cy-y, z, depthTest, c)
		span(fb, cx-y, cx+y, cy+x, z, depthTest, c)
		span(fb, cx-y, cx+y, cy-x, z, depthTest, c)
		return
	}
	pts := [8][2]int{
		{cx + x, cy + y}, {cx - x, cy + y}, {cx + x, cy - y}, {cx - x, cy - y},
		{cx + y, cy + x}, {cx - y, cy + x}, {cx + y, cy - x}, {cx - y, cy - x},
	}
	for _, p := range pts {
		putLinePixel(fb, p[0], p[1], z, depthTest, c)
	}
}

func span(fb *Framebuffer, x0, x1 int, y int, z float32, depthTest bool, c Color) {
	if depthTest {
		fb.PutSpanDepth(x0, x1+1, y, z, z, c.X, c.Y, c.Z)
		return
	}
	fb.PutSpan(x0, x1+1, y, c.X, c.Y, c.Z)
}
