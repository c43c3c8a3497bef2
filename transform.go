// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sgl

import "github.com/galvanized-logic/sgl/lin"

// MatrixMode selects which stack subsequent matrix mutators affect.
type MatrixMode int

const (
	ModelView MatrixMode = iota
	Projection
)

// maxStackDepth bounds each matrix stack; push beyond it is a
// StackOverflow, pop below a single entry is a StackUnderflow.
const maxStackDepth = 100

func (c *Context) stack() *[]lin.Mat4 {
	if c.matrixMode == Projection {
		return &c.projection
	}
	return &c.modelView
}

func (c *Context) top() lin.Mat4 {
	s := *c.stack()
	return s[len(s)-1]
}

func (c *Context) setTop(m lin.Mat4) {
	s := c.stack()
	(*s)[len(*s)-1] = m
	c.recomputePVM()
}

// recomputePVM refreshes the cached viewport*projection*model_view
// product read by the rasterizer on every draw. The ray tracer does
// not read it: RayTraceScene inverts projection*model_view without
// the viewport.
func (c *Context) recomputePVM() {
	mv := c.modelView[len(c.modelView)-1]
	pr := c.projection[len(c.projection)-1]
	c.pvm = c.viewport.Mul(pr.Mul(mv))
}

// MatrixMode selects the model_view or projection stack for
// subsequent matrix mutators.
func (c *Context) MatrixMode(m MatrixMode) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	if m != ModelView && m != Projection {
		c.err.setError(InvalidEnum)
		return
	}
	c.matrixMode = m
}

// Push duplicates the current stack's top entry.
func (c *Context) Push() {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	s := c.stack()
	if len(*s) >= maxStackDepth {
		c.err.setError(StackOverflow)
		return
	}
	*s = append(*s, (*s)[len(*s)-1])
}

// Pop discards the current stack's top entry, leaving at least one.
func (c *Context) Pop() {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	s := c.stack()
	if len(*s) <= 1 {
		c.err.setError(StackUnderflow)
		return
	}
	*s = (*s)[:len(*s)-1]
	c.recomputePVM()
}

// LoadIdentity replaces the top of the current stack with the
// identity matrix.
func (c *Context) LoadIdentity() {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	c.setTop(lin.Identity4)
}

// LoadMatrix replaces the top of the current stack with m.
func (c *Context) LoadMatrix(m lin.Mat4) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	c.setTop(m)
}

// MultMatrix right-multiplies the top of the current stack by m.
func (c *Context) MultMatrix(m lin.Mat4) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	c.setTop(c.top().Mul(m))
}

// Translate right-multiplies the current stack's top by a translation.
func (c *Context) Translate(x, y, z float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	c.setTop(c.top().Mul(lin.Translate(x, y, z)))
}

// Scale right-multiplies the current stack's top by a scale matrix.
func (c *Context) Scale(sx, sy, sz float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	c.setTop(c.top().Mul(lin.Scale(sx, sy, sz)))
}

// Rotate2D right-multiplies the current stack's top by a rotation of
// angle radians about the point (cx,cy) in the matrix's own plane.
func (c *Context) Rotate2D(angle, cx, cy float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	c.setTop(c.top().Mul(lin.Rotate2D(angle, cx, cy)))
}

// RotateY right-multiplies the current stack's top by a rotation of
// angle radians about the Y axis.
func (c *Context) RotateY(angle float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	c.setTop(c.top().Mul(lin.RotateY(angle)))
}

// Ortho replaces the projection stack's top with an orthographic
// projection matrix. Ortho implicitly selects the projection stack,
// regardless of the current MatrixMode, matching the fixed-function
// convention that projection setup never targets model_view.
func (c *Context) Ortho(l, r, b, t, n, f float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	if l == r || b == t || n == f {
		c.err.setError(InvalidValue)
		return
	}
	s := &c.projection
	(*s)[len(*s)-1] = lin.Ortho(l, r, b, t, n, f)
	c.recomputePVM()
}

// Frustum replaces the projection stack's top with a perspective
// projection matrix.
func (c *Context) Frustum(l, r, b, t, n, f float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	if l == r || b == t || n <= 0 || f <= 0 || n == f {
		c.err.setError(InvalidValue)
		return
	}
	s := &c.projection
	(*s)[len(*s)-1] = lin.Frustum(l, r, b, t, n, f)
	c.recomputePVM()
}

// Viewport sets the pixel-space rectangle the rasterizer maps NDC
// coordinates into. RayTraceScene ignores it: its primary rays always
// span the whole framebuffer.
func (c *Context) Viewport(x, y, w, h float32) {
	if !c.requireActive() || !c.requireNotAssembling() {
		return
	}
	if w <= 0 || h <= 0 {
		c.err.setError(InvalidValue)
		return
	}
	c.viewport = lin.Viewport(x, y, w, h)
	c.recomputePVM()
}
