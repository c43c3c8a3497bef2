// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

// Outline draws the Bresenham edges between consecutive vertices. If
// closed, an edge from the last vertex back to the first is also
// drawn.
func Outline(fb *Framebuffer, verts []Vertex, closed bool, depthTest bool, c Color) {
	n := len(verts)
	if n < 2 {
		return
	}
	for i := 0; i+1 < n; i++ {
		Line(fb, verts[i], verts[i+1], depthTest, c)
	}
	if closed {
		Line(fb, verts[n-1], verts[0], depthTest, c)
	}
}

// Splat draws a Point at every vertex.
func Splat(fb *Framebuffer, verts []Vertex, size int, depthTest bool, c Color) {
	for _, v := range verts {
		Point(fb, v, size, depthTest, c)
	}
}
