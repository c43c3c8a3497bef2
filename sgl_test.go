// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sgl

import (
	"math"
	"testing"

	"github.com/galvanized-logic/sgl/lin"
)

func newTestContext(t *testing.T, w, h int) *Context {
	t.Helper()
	c, err := NewContext(w, h)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return c
}

func TestMatrixStacksStartNonEmpty(t *testing.T) {
	c := newTestContext(t, 4, 4)
	if len(c.modelView) == 0 || len(c.projection) == 0 {
		t.Fatal("a fresh context must start with at least one entry on each matrix stack")
	}
}

func TestBeginEndIsAtomic(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.Viewport(0, 0, 4, 4)
	c.Ortho(-1, 1, -1, 1, -1, 1)
	c.SetDrawColor(1, 0, 0)
	before := append([]float32(nil), c.ColorBuffer()...)

	c.Begin(Points)
	c.Vertex2f(0, 0)
	c.Vertex2f(0.5, 0.5)
	mid := c.ColorBuffer()
	for i := range mid {
		if mid[i] != before[i] {
			t.Fatalf("framebuffer changed before End at index %d", i)
		}
	}
	c.End()

	after := c.ColorBuffer()
	same := true
	for i := range after {
		if after[i] != before[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("End should have drawn the points, but the buffer is unchanged")
	}
}

func TestPushThenPopLeavesMatrixUnchanged(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.Translate(1, 2, 3)
	want := c.top()
	c.Push()
	c.Scale(5, 5, 5)
	c.Pop()
	if !lin.Mat4Aeq(c.top(), want) {
		t.Fatalf("push/scale/pop changed the top of stack: got %+v, want %+v", c.top(), want)
	}
}

func TestLoadIdentityRoundTrip(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.LoadIdentity()
	c.Translate(1, 2, 3)
	c.Scale(2, 2, 2)
	c.RotateY(0.7)
	c.LoadIdentity()
	if !lin.Mat4Aeq(c.top(), lin.Identity4) {
		t.Fatalf("load_identity after a sequence of mutators did not reset to identity: %+v", c.top())
	}
}

func TestClearDepthSetsInfinity(t *testing.T) {
	c := newTestContext(t, 3, 3)
	c.Clear(DepthBit)
	for i, z := range c.fb.Depth {
		if !math.IsInf(float64(z), 1) {
			t.Fatalf("depth[%d] = %v, want +Inf after clear(DEPTH)", i, z)
		}
	}
}

func TestOrthoViewportCornerRoundTrip(t *testing.T) {
	c := newTestContext(t, 10, 20)
	c.Viewport(0, 0, 10, 20)
	c.Ortho(-1, 1, -1, 1, -1, 1)

	// The bottom-left world corner (-1,-1) must land on the bottom edge
	// of the image under the top-left-origin convention, i.e. y = H (the
	// lower boundary of row H-1).
	got := c.pvm.MulV(lin.V4(-1, -1, 0, 1)).PerspectiveDivide()
	if !lin.Aeq(got.X, 0) || !lin.Aeq(got.Y, 20) {
		t.Fatalf("corner (-1,-1) mapped to (%v,%v), want (0,20)", got.X, got.Y)
	}
	got = c.pvm.MulV(lin.V4(1, 1, 0, 1)).PerspectiveDivide()
	if !lin.Aeq(got.X, 10) || !lin.Aeq(got.Y, 0) {
		t.Fatalf("corner (1,1) mapped to (%v,%v), want (10,0)", got.X, got.Y)
	}
}

func TestStackOverflow(t *testing.T) {
	c := newTestContext(t, 4, 4)
	for i := 0; i < maxStackDepth-1; i++ {
		c.Push()
	}
	if k := c.GetError(); k != NoError {
		t.Fatalf("unexpected error filling the stack: %v", k)
	}
	c.Push()
	if k := c.GetError(); k != StackOverflow {
		t.Fatalf("got %v, want StackOverflow", k)
	}
}

func TestStackUnderflow(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.Pop()
	if k := c.GetError(); k != StackUnderflow {
		t.Fatalf("got %v, want StackUnderflow", k)
	}
}

func TestBeginInsideBeginIsInvalidOperation(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.Begin(Points)
	c.Begin(Lines)
	if k := c.GetError(); k != InvalidOperation {
		t.Fatalf("got %v, want InvalidOperation", k)
	}
	c.End()
}

func TestDegenerateOrthoIsInvalidValue(t *testing.T) {
	c := newTestContext(t, 4, 4)
	before := c.projection[len(c.projection)-1]
	c.Ortho(1, 1, -1, 1, -1, 1)
	if k := c.GetError(); k != InvalidValue {
		t.Fatalf("got %v, want InvalidValue", k)
	}
	if !lin.Mat4Aeq(c.projection[len(c.projection)-1], before) {
		t.Fatal("degenerate ortho must leave the projection matrix unchanged")
	}
}

func TestCircleNonPositiveRadiusIsInvalidValue(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.Circle(0, 0, 0, 0)
	if k := c.GetError(); k != InvalidValue {
		t.Fatalf("got %v, want InvalidValue", k)
	}
	c.Circle(0, 0, 0, -1)
	if k := c.GetError(); k != InvalidValue {
		t.Fatalf("got %v, want InvalidValue", k)
	}
}

func TestDepthTestMonotonicity(t *testing.T) {
	c := newTestContext(t, 8, 8)
	c.Viewport(0, 0, 8, 8)
	c.Ortho(-1, 1, -1, 1, 1, 10)
	c.SetAreaMode(AreaFill)
	c.Clear(ColorBit | DepthBit)

	c.SetDrawColor(1, 0, 0)
	c.Begin(Triangles)
	c.Vertex3f(-2, -2, -3)
	c.Vertex3f(2, -2, -3)
	c.Vertex3f(0, 2, -3)
	c.End()

	c.SetDrawColor(0, 1, 0)
	c.Begin(Triangles)
	c.Vertex3f(-2, -2, -7)
	c.Vertex3f(2, -2, -7)
	c.Vertex3f(0, 2, -7)
	c.End()

	buf := c.ColorBuffer()
	idx := (3*8 + 4) * 3
	if buf[idx] != 1 || buf[idx+1] != 0 {
		t.Fatalf("nearer triangle should have won the depth test, buffer pixel = %v", buf[idx:idx+3])
	}
}

func TestCreateContextExhaustion(t *testing.T) {
	var ids []int
	for i := 0; i < maxContexts; i++ {
		id, err := CreateContext(2, 2)
		if err != nil {
			t.Fatalf("unexpected error allocating context %d: %v", i, err)
		}
		ids = append(ids, id)
	}
	if _, err := CreateContext(2, 2); err == nil {
		t.Fatal("expected out_of_resources once the registry is full")
	}
	for _, id := range ids {
		if err := Destroy(id); err != nil {
			t.Fatalf("Destroy(%d): %v", id, err)
		}
	}
}

func TestDestroyActiveContextIsInvalidOperation(t *testing.T) {
	id, err := CreateContext(2, 2)
	if err != nil {
		t.Fatalf("CreateContext: %v", err)
	}
	defer Destroy(id)
	if err := SetActive(id); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if err := Destroy(id); err == nil {
		t.Fatal("destroying the active context should fail")
	}
}
