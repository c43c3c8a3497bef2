// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

import (
	"testing"

	"github.com/galvanized-logic/sgl/lin"
	"github.com/galvanized-logic/sgl/raster"
	"github.com/galvanized-logic/sgl/scene"
)

func TestCastRayHitsDiffuseSphere(t *testing.T) {
	sc := scene.New()
	mat := scene.NewMaterial(lin.V3(1, 0, 0), 1, 0, 0, 0, 1)
	sc.AddPrimitive(scene.NewSphere(lin.V3(0, 0, -5), 1, mat))
	sc.AddLight(scene.NewPointLight(lin.V3(0, 5, 0), lin.V3(1, 1, 1)))

	tr := New(sc, lin.Vec3{}, DefaultConfig())
	r := scene.Ray{Origin: lin.V3(0, 0, 0), Dir: lin.V3(0, 0, -1)}
	c := tr.castRay(r, 0, Normal)
	if c.X <= 0 {
		t.Errorf("expected a positive red contribution, got %v", c)
	}
}

func TestCastRayMissReturnsClearColor(t *testing.T) {
	sc := scene.New()
	clear := lin.V3(0.2, 0.3, 0.4)
	tr := New(sc, clear, DefaultConfig())
	r := scene.Ray{Origin: lin.V3(0, 0, 0), Dir: lin.V3(0, 0, -1)}
	c := tr.castRay(r, 0, Normal)
	if !lin.Vec3Aeq(c, clear) {
		t.Errorf("expected clear color on miss, got %v", c)
	}
}

func TestCastRaySamplesEnvironmentOnMiss(t *testing.T) {
	sc := scene.New()
	data := make([]float32, 2*2*3)
	for i := range data {
		data[i] = 0.5
	}
	sc.SetEnvironment(scene.NewEnvironment(2, 2, data))
	tr := New(sc, lin.Vec3{}, DefaultConfig())
	r := scene.Ray{Origin: lin.V3(0, 0, 0), Dir: lin.V3(0, 0, -1)}
	c := tr.castRay(r, 0, Normal)
	if !lin.Vec3Aeq(c, lin.V3(0.5, 0.5, 0.5)) {
		t.Errorf("expected environment sample on miss, got %v", c)
	}
}

func TestEmissiveHitSkipsShading(t *testing.T) {
	sc := scene.New()
	mat := scene.NewEmissiveMaterial(lin.V3(1, 1, 0), 1, 0, 0)
	sc.AddPrimitive(scene.NewTriangle(lin.V3(-5, -5, -5), lin.V3(5, -5, -5), lin.V3(0, 5, -5), mat))

	tr := New(sc, lin.Vec3{}, DefaultConfig())
	r := scene.Ray{Origin: lin.V3(0, 0, 0), Dir: lin.V3(0, 0, -1)}
	c := tr.castRay(r, 0, Normal)
	if !lin.Vec3Aeq(c, lin.V3(1, 1, 0)) {
		t.Errorf("expected the emissive color unchanged, got %v", c)
	}
}

func TestPhongOccludedSampleContributesNothing(t *testing.T) {
	sc := scene.New()
	floorMat := scene.NewMaterial(lin.V3(1, 1, 1), 1, 0, 0, 0, 1)
	floor := scene.NewSphere(lin.V3(0, 0, -5), 1, floorMat)
	sc.AddPrimitive(floor)
	sc.AddPrimitive(scene.NewSphere(lin.V3(0, 3, -5), 1, scene.NewMaterial(lin.V3(0, 0, 0), 1, 0, 0, 0, 1)))
	sc.AddLight(scene.NewPointLight(lin.V3(0, 10, -5), lin.V3(1, 1, 1)))

	tr := New(sc, lin.Vec3{}, DefaultConfig())
	hitPoint := lin.V3(0, 1, -5)
	fakeRay := scene.Ray{Origin: lin.V3(0, 0, 0), Dir: hitPoint.Unit()}
	c := tr.phong(floor, floorMat, scene.Hit{T: 1, Point: hitPoint}, fakeRay, lin.V3(0, 1, 0))
	if !lin.Vec3Aeq(c, lin.Vec3{}) {
		t.Errorf("expected a fully occluded point to receive no light, got %v", c)
	}
}

func TestPhongUnoccludedSampleContributesLight(t *testing.T) {
	sc := scene.New()
	floorMat := scene.NewMaterial(lin.V3(1, 1, 1), 1, 0, 0, 0, 1)
	floor := scene.NewSphere(lin.V3(0, 0, -5), 1, floorMat)
	sc.AddPrimitive(floor)
	sc.AddLight(scene.NewPointLight(lin.V3(0, 10, -5), lin.V3(1, 1, 1)))

	tr := New(sc, lin.Vec3{}, DefaultConfig())
	hitPoint := lin.V3(0, 1, -5)
	fakeRay := scene.Ray{Origin: lin.V3(0, 0, 0), Dir: hitPoint.Unit()}
	c := tr.phong(floor, floorMat, scene.Hit{T: 1, Point: hitPoint}, fakeRay, lin.V3(0, 1, 0))
	if c.X <= 0 {
		t.Errorf("expected an unoccluded point to receive diffuse light, got %v", c)
	}
}

func TestTraceFrameCenterPixelHitsSphere(t *testing.T) {
	sc := scene.New()
	mat := scene.NewMaterial(lin.V3(1, 0, 0), 1, 0, 0, 0, 1)
	sc.AddPrimitive(scene.NewSphere(lin.V3(0, 0, -5), 1, mat))
	sc.AddLight(scene.NewPointLight(lin.V3(0, 5, 0), lin.V3(1, 1, 1)))

	tr := New(sc, lin.Vec3{}, DefaultConfig())
	fb := raster.New(3, 3)
	tr.TraceFrame(fb, lin.Identity4, lin.Identity4)

	i := (1*3 + 1) * 3
	if fb.Color[i] <= 0 {
		t.Errorf("expected the center pixel to see the red sphere, got %v", fb.Color[i:i+3])
	}
}

func TestTraceFrameCornerPixelMisses(t *testing.T) {
	sc := scene.New()
	mat := scene.NewMaterial(lin.V3(1, 0, 0), 1, 0, 0, 0, 1)
	sc.AddPrimitive(scene.NewSphere(lin.V3(0, 0, -5), 1, mat))

	tr := New(sc, lin.Vec3{}, DefaultConfig())
	fb := raster.New(3, 3)
	tr.TraceFrame(fb, lin.Identity4, lin.Identity4)

	i := 0
	if fb.Color[i] != 0 || fb.Color[i+1] != 0 || fb.Color[i+2] != 0 {
		t.Errorf("expected the corner pixel to miss the sphere, got %v", fb.Color[i:i+3])
	}
}

func TestRefractiveSphereReachesBackgroundTriangle(t *testing.T) {
	sc := scene.New()
	bg := scene.NewMaterial(lin.V3(0, 1, 0), 1, 0, 0, 0, 1)
	sc.AddPrimitive(scene.NewTriangle(lin.V3(-10, -10, -10), lin.V3(10, -10, -10), lin.V3(0, 10, -10), bg))

	glass := scene.NewMaterial(lin.V3(0, 0, 0), 0, 0.1, 0, 0.9, 1.5)
	sc.AddPrimitive(scene.NewSphere(lin.V3(0, 0, -5), 1, glass))
	sc.AddLight(scene.NewPointLight(lin.V3(0, 5, 0), lin.V3(1, 1, 1)))

	tr := New(sc, lin.V3(1, 0, 0), DefaultConfig())
	r := scene.Ray{Origin: lin.V3(0, 0, 0), Dir: lin.V3(0, 0, -1)}
	c := tr.castRay(r, 0, Normal)
	if lin.Vec3Aeq(c, lin.V3(1, 0, 0)) {
		t.Errorf("expected the refracted ray to reach the background past the clear color, got %v", c)
	}
}
