// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

// Point draws a filled square of side size centered at v's pixel
// position. With depth test on, a single depth read at the integer
// center gates the entire splat; without it, the splat is drawn
// unconditionally.
func Point(fb *Framebuffer, v Vertex, size int, depthTest bool, c Color) {
	if size < 1 {
		size = 1
	}
	cx, cy := int(v.X), int(v.Y)
	half := size / 2

	if depthTest {
		di := fb.depthIndex(cx, cy)
		if !fb.inBounds(cx, cy) || v.Z >= fb.Depth[di] {
			return
		}
		fb.Depth[di] = v.Z
	}
	for dy := -half; dy < size-half; dy++ {
		for dx := -half; dx < size-half; dx++ {
			fb.PutPixel(cx+dx, cy+dy, c.X, c.Y, c.Z)
		}
	}
}
