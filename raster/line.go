// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

// Line draws a Bresenham line between a and b, inclusive of both
// endpoints, symmetric in both octants. With depth test on, z is
// interpolated linearly across the pixel sequence by span-length
// proportion.
func Line(fb *Framebuffer, a, b Vertex, depthTest bool, c Color) {
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	steps := dx
	if dy > steps {
		steps = dy
	}
	if steps == 0 {
		putLinePixel(fb, x0, y0, a.Z, depthTest, c)
		return
	}

	x, y := x0, y0
	err := dx - dy
	i := 0
	for {
		t := float32(i) / float32(steps)
		z := a.Z + (b.Z-a.Z)*t
		putLinePixel(fb, x, y, z, depthTest, c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
		i++
	}
}

func putLinePixel(fb *Framebuffer, x, y int, z float32, depthTest bool, c Color) {
	if depthTest {
		fb.PutPixelDepth(x, y, z, c.X, c.Y, c.Z)
		return
	}
	fb.PutPixel(x, y, c.X, c.Y, c.Z)
}
