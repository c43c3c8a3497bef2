// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"math"
	"testing"

	"github.com/galvanized-logic/sgl/lin"
)

func TestSphereIntersectFromOutside(t *testing.T) {
	mat := NewMaterial(lin.V3(1, 0, 0), 1, 0, 0, 0, 1)
	s := NewSphere(lin.V3(0, 0, -5), 1, mat)
	r := Ray{Origin: lin.V3(0, 0, 0), Dir: lin.V3(0, 0, -1)}
	hit, ok := s.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !lin.Aeq(hit.T, 4) {
		t.Errorf("expected t=4, got %f", hit.T)
	}
}

func TestSphereMissesWhenFacingAway(t *testing.T) {
	mat := NewMaterial(lin.V3(1, 0, 0), 1, 0, 0, 0, 1)
	s := NewSphere(lin.V3(0, 0, 5), 1, mat)
	r := Ray{Origin: lin.V3(0, 0, 0), Dir: lin.V3(0, 0, -1)}
	if _, ok := s.Intersect(r); ok {
		t.Error("expected no hit behind the ray origin")
	}
}

func TestSphereReportsInsideHit(t *testing.T) {
	mat := NewMaterial(lin.V3(1, 0, 0), 1, 0, 0, 0, 1)
	s := NewSphere(lin.V3(0, 0, 0), 2, mat)
	r := Ray{Origin: lin.V3(0, 0, 0), Dir: lin.V3(0, 0, -1)}
	hit, ok := s.Intersect(r)
	if !ok {
		t.Fatal("expected the exit point to be reported even from inside")
	}
	if !lin.Aeq(hit.T, 2) {
		t.Errorf("expected t=2, got %f", hit.T)
	}
}

func TestTriangleIntersectIdempotentUnderPermutation(t *testing.T) {
	mat := NewMaterial(lin.V3(1, 1, 1), 1, 0, 0, 0, 1)
	a, b, c := lin.V3(-1, -1, -5), lin.V3(1, -1, -5), lin.V3(0, 1, -5)
	tri1 := NewTriangle(a, b, c, mat)
	tri2 := NewTriangle(b, c, a, mat)
	r := Ray{Origin: lin.V3(0, 0, 0), Dir: lin.V3(0, 0, -1)}

	h1, ok1 := tri1.Intersect(r)
	h2, ok2 := tri2.Intersect(r)
	if !ok1 || !ok2 {
		t.Fatal("expected both windings to hit")
	}
	if !lin.Vec3Aeq(h1.Point, h2.Point) {
		t.Errorf("hit points differ under permutation: %v vs %v", h1.Point, h2.Point)
	}
	if !lin.Aeq(h1.T, h2.T) {
		t.Errorf("t differs under permutation: %f vs %f", h1.T, h2.T)
	}
}

func TestTriangleRejectsOutsideBarycentric(t *testing.T) {
	mat := NewMaterial(lin.V3(1, 1, 1), 1, 0, 0, 0, 1)
	tri := NewTriangle(lin.V3(-1, -1, -5), lin.V3(1, -1, -5), lin.V3(0, 1, -5), mat)
	r := Ray{Origin: lin.V3(10, 10, 0), Dir: lin.V3(0, 0, -1)}
	if _, ok := tri.Intersect(r); ok {
		t.Error("expected no hit far outside the triangle")
	}
}

func TestTextureOutOfRangeUVIsBlack(t *testing.T) {
	tex := NewTexture(2, 2, make([]float32, 2*2*3))
	for i := range tex.Data {
		tex.Data[i] = 1
	}
	if c := tex.Sample(lin.Vec2{X: 0.5, Y: 0.5}); c.X != 1 {
		t.Error("expected in-range sample to hit the texture data")
	}
	if c := tex.Sample(lin.Vec2{X: 1.5, Y: 0.5}); c != (lin.Vec3{}) {
		t.Error("expected out-of-range uv to return black")
	}
}

func TestDirectionalLightSampleFacesAgainstStoredDirection(t *testing.T) {
	l := NewDirectionalLight(lin.V3(0, -1, 0), lin.V3(1, 1, 1))
	if l.IsArea() {
		t.Error("a directional light is never an area light")
	}
	if l.SampleCount() != 1 {
		t.Fatalf("expected 1 sample, got %d", l.SampleCount())
	}
	dir, color, dist := l.Sample(0, lin.V3(3, 4, 5))
	if !lin.Vec3Aeq(dir, lin.V3(0, 1, 0)) {
		t.Errorf("expected the direction toward the light to be the negated stored direction, got %v", dir)
	}
	if !lin.Vec3Aeq(color, lin.V3(1, 1, 1)) {
		t.Errorf("expected the constant light color regardless of hit point, got %v", color)
	}
	if !math.IsInf(float64(dist), 1) {
		t.Errorf("expected an infinite distance so any shadow-ray hit is obstructive, got %f", dist)
	}
}

func TestAreaLightSampleColorNonNegative(t *testing.T) {
	l := NewAreaLight(lin.V3(0, 0, 0), lin.V3(1, 0, 0), lin.V3(0, 1, 0), lin.V3(1, 1, 1), 1, 0, 0)
	if l.SampleCount() != areaSampleCount {
		t.Fatalf("expected %d samples, got %d", areaSampleCount, l.SampleCount())
	}
	_, color, _ := l.Sample(0, lin.V3(0, 0, 5))
	if color.X < 0 || color.Y < 0 || color.Z < 0 {
		t.Errorf("expected non-negative color contribution, got %v", color)
	}
}
