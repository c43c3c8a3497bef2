// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

import (
	"github.com/galvanized-logic/sgl/lin"
	"github.com/galvanized-logic/sgl/raster"
)

// adaptiveAA re-renders high-contrast interior pixels at 4x
// supersampling. A pixel is deemed high-contrast when its color
// distance to any of its four axis neighbors exceeds AAThreshold; it
// is then replaced with the mean of four primary rays cast at
// quarter-pixel offsets. Every comparison reads from a snapshot of
// the frame taken before any pixel is rewritten, so neighbor lookups
// are unaffected by earlier replacements in the same pass.
func (tr *Tracer) adaptiveAA(fb *raster.Framebuffer, invPVM, invModelView lin.Mat4) {
	w, h := fb.W, fb.H
	before := make([]float32, len(fb.Color))
	copy(before, fb.Color)

	at := func(x, y int) lin.Vec3 {
		i := (y*w + x) * 3
		return lin.Vec3{X: before[i], Y: before[i+1], Z: before[i+2]}
	}

	offsets := [4][2]float32{{0.25, 0.25}, {0.25, -0.25}, {-0.25, 0.25}, {-0.25, -0.25}}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			c := at(x, y)
			maxDist := lin.Distance(c, at(x-1, y))
			if d := lin.Distance(c, at(x+1, y)); d > maxDist {
				maxDist = d
			}
			if d := lin.Distance(c, at(x, y-1)); d > maxDist {
				maxDist = d
			}
			if d := lin.Distance(c, at(x, y+1)); d > maxDist {
				maxDist = d
			}
			if maxDist <= tr.Config.AAThreshold {
				continue
			}

			var sum lin.Vec3
			for _, off := range offsets {
				r, _, _ := primaryRay(float32(x)+0.5+off[0], float32(y)+0.5+off[1], w, h, invPVM, invModelView)
				sum = sum.Add(tr.castRay(r, 0, Normal))
			}
			avg := sum.Scale(0.25)
			fb.PutPixel(x, y, avg.X, avg.Y, avg.Z)
		}
	}
}
