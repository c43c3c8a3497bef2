// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

import "sort"

// edge is one side of the polygon, active over the scanline range
// [yMin, yMax). Horizontal edges are never stored.
type edge struct {
	yMax     int
	x        float32 // current x at the active scanline, advanced by invSlope
	invSlope float32 // dx/dy
	z        float32 // current z at the active scanline
	dz       float32 // dz/dy
}

// Fill scanline-fills the polygon described by verts (in order)
// using the parity rule: left-edge inclusive, right-edge exclusive
// at the integer column boundary. When depthTest is true, z is
// interpolated per edge and the depth-tested span writer is used.
func Fill(fb *Framebuffer, verts []Vertex, depthTest bool, c Color) {
	if len(verts) < 3 {
		return
	}

	minY, maxY := int(verts[0].Y), int(verts[0].Y)
	for _, v := range verts {
		y := int(v.Y)
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	if maxY < minY {
		return
	}

	buckets := make(map[int][]edge, maxY-minY+1)
	n := len(verts)
	for i := 0; i < n; i++ {
		p1 := verts[i]
		p2 := verts[(i+1)%n]
		if int(p1.Y) == int(p2.Y) {
			continue // skip horizontal edges
		}
		lo, hi := p1, p2
		if lo.Y > hi.Y {
			lo, hi = hi, lo
		}
		dy := hi.Y - lo.Y
		e := edge{
			yMax:     int(hi.Y),
			x:        lo.X,
			invSlope: (hi.X - lo.X) / dy,
			z:        lo.Z,
			dz:       (hi.Z - lo.Z) / dy,
		}
		key := int(lo.Y)
		buckets[key] = append(buckets[key], e)
	}

	var active []edge
	for y := minY; y <= maxY; y++ {
		active = append(active, buckets[y]...)

		kept := active[:0]
		for _, e := range active {
			if e.yMax > y {
				kept = append(kept, e)
			}
		}
		active = kept

		sort.Slice(active, func(i, j int) bool { return active[i].x < active[j].x })

		for i := 0; i+1 < len(active); i += 2 {
			a, b := active[i], active[i+1]
			x0 := int(a.x)
			x1 := int(b.x + 0.999999) // ceil without importing math
			if depthTest {
				fb.PutSpanDepth(x0, x1, y, a.z, b.z, c.X, c.Y, c.Z)
			} else {
				fb.PutSpan(x0, x1, y, c.X, c.Y, c.Z)
			}
		}

		for i := range active {
			active[i].x += active[i].invSlope
			active[i].z += active[i].dz
		}
	}
}
