// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package raster implements the CPU framebuffer and the rasterizers
// (point, line, circle, ellipse/arc, scanline polygon fill) that
// write into it. It has no notion of transforms or scenes; callers
// hand it pixel-space coordinates and colors already through the
// transform pipeline.
package raster

import "math"

// Framebuffer owns the color and depth pixel arrays for one context.
// Color is a row-major W*H*3 float32 sequence; row 0 is the top of
// the image. Depth is a row-major W*H float32 sequence, +Inf after a
// depth clear.
type Framebuffer struct {
	W, H  int
	Color []float32
	Depth []float32
}

// New allocates a Framebuffer of the given size with depth cleared to
// +Inf and color cleared to black.
func New(w, h int) *Framebuffer {
	fb := &Framebuffer{W: w, H: h, Color: make([]float32, w*h*3), Depth: make([]float32, w*h)}
	fb.ClearDepth()
	return fb
}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.W && y >= 0 && y < fb.H
}

func (fb *Framebuffer) colorIndex(x, y int) int { return (y*fb.W + x) * 3 }
func (fb *Framebuffer) depthIndex(x, y int) int { return y*fb.W + x }

// PutPixel writes color unconditionally, clipped to the buffer bounds.
func (fb *Framebuffer) PutPixel(x, y int, r, g, b float32) {
	if !fb.inBounds(x, y) {
		return
	}
	i := fb.colorIndex(x, y)
	fb.Color[i], fb.Color[i+1], fb.Color[i+2] = r, g, b
}

// PutPixelDepth writes color only if z is nearer than the stored
// depth at (x,y), updating the depth buffer on a successful write.
// Returns true if the fragment was written.
func (fb *Framebuffer) PutPixelDepth(x, y int, z, r, g, b float32) bool {
	if !fb.inBounds(x, y) {
		return false
	}
	di := fb.depthIndex(x, y)
	if z >= fb.Depth[di] {
		return false
	}
	fb.Depth[di] = z
	fb.PutPixel(x, y, r, g, b)
	return true
}

// PutSpan writes color across [x0, x1) at row y, clipped to [0, W).
func (fb *Framebuffer) PutSpan(x0, x1, y int, r, g, b float32) {
	if y < 0 || y >= fb.H {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > fb.W {
		x1 = fb.W
	}
	for x := x0; x < x1; x++ {
		fb.PutPixel(x, y, r, g, b)
	}
}

// PutSpanDepth writes color across [x0, x1) at row y, linearly
// interpolating depth from z0 at x0 to z1 at the exclusive end x1 (so
// the last written pixel, x1-1, is one step short of z1) and
// depth-testing each pixel individually.
func (fb *Framebuffer) PutSpanDepth(x0, x1, y int, z0, z1, r, g, b float32) {
	if y < 0 || y >= fb.H || x1 <= x0 {
		return
	}
	span := float32(x1 - x0)
	lo, hi := x0, x1
	if lo < 0 {
		lo = 0
	}
	if hi > fb.W {
		hi = fb.W
	}
	for x := lo; x < hi; x++ {
		t := float32(x-x0) / span
		z := z0 + (z1-z0)*t
		fb.PutPixelDepth(x, y, z, r, g, b)
	}
}

// ClearOpts selects which buffers Clear resets.
type ClearOpts struct {
	Color      bool
	Depth      bool
	R, G, B, A float32
}

// Clear resets the selected buffers.
func (fb *Framebuffer) Clear(o ClearOpts) {
	if o.Color {
		for i := 0; i < len(fb.Color); i += 3 {
			fb.Color[i], fb.Color[i+1], fb.Color[i+2] = o.R, o.G, o.B
		}
	}
	if o.Depth {
		fb.ClearDepth()
	}
}

// ClearDepth resets the depth buffer to +Inf.
func (fb *Framebuffer) ClearDepth() {
	inf := float32(math.Inf(1))
	for i := range fb.Depth {
		fb.Depth[i] = inf
	}
}
