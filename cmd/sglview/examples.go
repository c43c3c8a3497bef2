// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/galvanized-logic/sgl"
)

// pixel is spec.md §8 scenario 1: a single red pixel at the center of
// a 4x4 buffer, everything else black.
func pixel() error {
	c, err := sgl.NewContext(4, 4, sgl.WithClearColor(0, 0, 0))
	if err != nil {
		return err
	}
	c.Viewport(0, 0, 4, 4)
	c.Ortho(-1, 1, -1, 1, -1, 1)
	c.Clear(sgl.ColorBit)
	c.SetDrawColor(1, 0, 0)
	c.SetPointSize(1)
	c.Begin(sgl.Points)
	c.Vertex2f(0, 0)
	c.End()
	if err := checkErr(c); err != nil {
		return err
	}
	return writePPM("pixel.ppm", 4, 4, c.ColorBuffer())
}

// occlude is spec.md §8 scenario 2: two large overlapping triangles at
// different depths, depth test keeps only the nearer color.
func occlude() error {
	c, err := sgl.NewContext(10, 10)
	if err != nil {
		return err
	}
	c.Viewport(0, 0, 10, 10)
	c.Ortho(-1, 1, -1, 1, 1, 10)
	c.Clear(sgl.ColorBit | sgl.DepthBit)
	c.SetAreaMode(sgl.AreaFill)

	c.SetDrawColor(1, 0, 0) // nearer, should win
	c.Begin(sgl.Triangles)
	c.Vertex3f(-2, -2, -2)
	c.Vertex3f(2, -2, -2)
	c.Vertex3f(0, 2, -2)
	c.End()

	c.SetDrawColor(0, 0, 1) // farther, should be occluded
	c.Begin(sgl.Triangles)
	c.Vertex3f(-2, -2, -8)
	c.Vertex3f(2, -2, -8)
	c.Vertex3f(0, 2, -8)
	c.End()

	if err := checkErr(c); err != nil {
		return err
	}
	return writePPM("occlude.ppm", 10, 10, c.ColorBuffer())
}

// line is spec.md §8 scenario 3: a Bresenham line with no depth test.
func line() error {
	c, err := sgl.NewContext(5, 3)
	if err != nil {
		return err
	}
	c.Viewport(0, 0, 5, 3)
	c.Ortho(0, 5, 0, 3, -1, 1)
	c.Disable(sgl.DepthTest)
	c.Clear(sgl.ColorBit)
	c.SetDrawColor(1, 1, 1)
	c.SetPointSize(1)
	c.Begin(sgl.Lines)
	c.Vertex2f(0, 0)
	c.Vertex2f(4, 2)
	c.End()
	if err := checkErr(c); err != nil {
		return err
	}
	return writePPM("line.ppm", 5, 3, c.ColorBuffer())
}

// circle is spec.md §8 scenario 4: a unit circle under push/scale(2,2,1)/pop,
// rendered with pixel-space radius doubled by the transform.
func circle() error {
	c, err := sgl.NewContext(40, 40)
	if err != nil {
		return err
	}
	c.Viewport(0, 0, 40, 40)
	c.Ortho(-10, 10, -10, 10, -1, 1)
	c.Clear(sgl.ColorBit)
	c.SetDrawColor(0, 1, 0)
	c.SetAreaMode(sgl.AreaLine)

	c.Push()
	c.Scale(2, 2, 1)
	c.Circle(0, 0, 0, 1)
	c.Pop()

	if err := checkErr(c); err != nil {
		return err
	}
	return writePPM("circle.ppm", 40, 40, c.ColorBuffer())
}

// sphere is spec.md §8 scenario 5: a ray-traced diffuse sphere lit by
// a point light, with a triangle behind it catching the sphere's shadow.
func sphere() error {
	c, err := sgl.NewContext(64, 64, sgl.WithClearColor(0, 0, 0.1))
	if err != nil {
		return err
	}
	c.Viewport(0, 0, 64, 64)
	c.Ortho(-3, 3, -3, 3, 1, 20)

	c.BeginScene()
	c.Material(1, 1, 1, 1, 0, 0, 0, 1)
	c.Sphere(0, 0, -5, 1)

	c.Material(0.6, 0.6, 0.6, 1, 0, 0, 0, 1)
	c.Begin(sgl.Polygon)
	c.Vertex3f(-5, -5, -8)
	c.Vertex3f(5, -5, -8)
	c.Vertex3f(0, 5, -8)
	c.End()

	c.PointLight(0, -5, -3, 1, 1, 1)
	c.EndScene()

	c.RayTraceScene()
	if err := checkErr(c); err != nil {
		return err
	}
	return writePPM("sphere.ppm", 64, 64, c.ColorBuffer())
}

// refract is spec.md §8 scenario 6: a refractive sphere over a solid
// red background; along its axis the red background shows through it.
func refract() error {
	c, err := sgl.NewContext(64, 64, sgl.WithClearColor(1, 0, 0))
	if err != nil {
		return err
	}
	c.Viewport(0, 0, 64, 64)
	c.Ortho(-3, 3, -3, 3, 1, 20)

	c.BeginScene()
	c.Material(0, 0, 0, 0, 0, 0, 1, 1.5)
	c.Sphere(0, 0, -5, 1)
	c.PointLight(0, 5, 0, 1, 1, 1)
	c.EndScene()

	c.RayTraceScene()
	if err := checkErr(c); err != nil {
		return err
	}
	return writePPM("refract.ppm", 64, 64, c.ColorBuffer())
}

func checkErr(c *sgl.Context) error {
	if k := c.GetError(); k != sgl.NoError {
		return fmt.Errorf("sglview: %s", k)
	}
	return nil
}
