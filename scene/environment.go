// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"math"

	"github.com/galvanized-logic/sgl/lin"
)

// Environment is the optional rectangular RGB environment map
// sampled equirectangularly from a miss ray's direction, replacing
// the clear color for rays that hit nothing. Pixels are owned by the
// caller; Environment stores only dimensions and a reference.
type Environment struct {
	W, H int
	Data []float32 // row-major W*H*3, caller-owned.
}

// NewEnvironment wraps a caller-owned RGB buffer.
func NewEnvironment(w, h int, data []float32) *Environment {
	return &Environment{W: w, H: h, Data: data}
}

// Sample returns the nearest texel along direction dir (need not be
// normalized), using the same equirectangular mapping as Sphere.UV.
func (e *Environment) Sample(dir lin.Vec3) lin.Vec3 {
	d := dir.Unit()
	u := 0.5 - float32(math.Atan2(float64(d.Z), float64(d.X))/(2*math.Pi))
	v := 0.5 + float32(math.Asin(float64(clampAsin(d.Y)))/math.Pi)

	x := int(u * float32(e.W-1))
	y := int(v * float32(e.H-1))
	x = clampInt(x, 0, e.W-1)
	y = clampInt(y, 0, e.H-1)
	i := (y*e.W + x) * 3
	return lin.Vec3{X: e.Data[i], Y: e.Data[i+1], Z: e.Data[i+2]}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
