// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

import "testing"

func TestClearDepthIsInf(t *testing.T) {
	fb := New(4, 4)
	for _, d := range fb.Depth {
		if d != fb.Depth[0] {
			t.Fatal("expected uniform depth")
		}
	}
	fb.Color[0] = 1
	fb.Clear(ClearOpts{Color: true, Depth: true, R: 0, G: 0, B: 0})
	for _, d := range fb.Depth {
		if d <= 1e30 {
			t.Errorf("expected +Inf depth after clear, got %f", d)
		}
	}
}

func TestPutPixelDepthGating(t *testing.T) {
	fb := New(2, 2)
	fb.Depth[0] = 5
	ok := fb.PutPixelDepth(0, 0, 9, 1, 0, 0)
	if ok {
		t.Error("farther fragment should not write")
	}
	ok = fb.PutPixelDepth(0, 0, 1, 1, 0, 0)
	if !ok {
		t.Error("nearer fragment should write")
	}
	if fb.Color[0] != 1 {
		t.Error("expected color written")
	}
}

func TestPointSplatCenter(t *testing.T) {
	fb := New(4, 4)
	Point(fb, Vertex{X: 2, Y: 2, Z: 0}, 1, false, Color{X: 1})
	idx := fb.colorIndex(2, 2)
	if fb.Color[idx] != 1 {
		t.Error("expected center pixel set")
	}
}

func TestLineEndpointsBresenham(t *testing.T) {
	fb := New(6, 4)
	Line(fb, Vertex{X: 0, Y: 0}, Vertex{X: 4, Y: 2}, false, Color{X: 1, Y: 1, Z: 1})
	want := map[[2]int]bool{{0, 0}: true, {1, 0}: true, {2, 1}: true, {3, 1}: true, {4, 2}: true}
	for p := range want {
		idx := fb.colorIndex(p[0], p[1])
		if fb.Color[idx] != 1 {
			t.Errorf("expected pixel %v set", p)
		}
	}
}

func TestFillDepthOcclusion(t *testing.T) {
	fb := New(10, 10)
	verts := []Vertex{{X: 0, Y: 0, Z: 0.5}, {X: 10, Y: 0, Z: 0.5}, {X: 0, Y: 10, Z: 0.5}}
	Fill(fb, verts, true, Color{X: 1})
	verts2 := []Vertex{{X: 0, Y: 0, Z: 0.9}, {X: 10, Y: 0, Z: 0.9}, {X: 0, Y: 10, Z: 0.9}}
	Fill(fb, verts2, true, Color{Y: 1})

	for y := 0; y < 10; y++ {
		for x := 0; x < 10-y; x++ {
			idx := fb.colorIndex(x, y)
			if fb.Color[idx] != 1 || fb.Color[idx+1] != 0 {
				t.Fatalf("pixel (%d,%d) expected color A, got %v", x, y, fb.Color[idx:idx+3])
			}
			if fb.Depth[fb.depthIndex(x, y)] != 0.5 {
				t.Fatalf("pixel (%d,%d) expected depth 0.5", x, y)
			}
		}
	}
}

func TestCircleFillCoversCenter(t *testing.T) {
	fb := New(20, 20)
	Circle(fb, Vertex{X: 10, Y: 10}, 5, true, false, Color{X: 1})
	if fb.Color[fb.colorIndex(10, 10)] != 1 {
		t.Error("expected the filled circle to cover its own center")
	}
}
