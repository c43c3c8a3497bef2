// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"math"
	"math/rand"

	"github.com/galvanized-logic/sgl/lin"
)

// areaSampleCount is the fixed Monte-Carlo sample count for area lights.
const areaSampleCount = 16

// Light is implemented by every light kind a scene can hold: point,
// directional, and area. It is a small capability interface rather
// than a closed sum type, since lights differ only in how they
// resolve a direction, color, and distance for a given shading point.
type Light interface {
	// IsArea reports whether this light requires multiple samples
	// per shading point.
	IsArea() bool

	// SampleCount is 1 for point/directional lights, areaSampleCount
	// for area lights.
	SampleCount() int

	// Sample returns the unit direction from hit toward sample i of
	// the light, that sample's color contribution (already divided by
	// SampleCount for area lights, so callers always sum across
	// 0..SampleCount-1 and never divide again), and the distance to
	// the sample point (used to bound shadow-ray intersections to
	// those closer than the light itself).
	Sample(i int, hit lin.Vec3) (dir lin.Vec3, color lin.Vec3, dist float32)
}

// PointLight is an omnidirectional light at a fixed world position.
type PointLight struct {
	Position lin.Vec3
	Color    lin.Vec3
}

// NewPointLight returns a Light positioned at p with constant color.
func NewPointLight(p, color lin.Vec3) *PointLight { return &PointLight{Position: p, Color: color} }

func (l *PointLight) IsArea() bool     { return false }
func (l *PointLight) SampleCount() int { return 1 }
func (l *PointLight) Sample(_ int, hit lin.Vec3) (lin.Vec3, lin.Vec3, float32) {
	toLight := l.Position.Sub(hit)
	return toLight.Unit(), l.Color, toLight.Len()
}

// DirectionalLight shines uniformly along a fixed direction (sun-like).
type DirectionalLight struct {
	Direction lin.Vec3 // The direction light travels (unit).
	Color     lin.Vec3
}

// NewDirectionalLight returns a Light traveling along dir (need not
// be pre-normalized).
func NewDirectionalLight(dir, color lin.Vec3) *DirectionalLight {
	return &DirectionalLight{Direction: dir.Unit(), Color: color}
}

func (l *DirectionalLight) IsArea() bool     { return false }
func (l *DirectionalLight) SampleCount() int { return 1 }

// Sample returns an effectively infinite distance: a directional
// light has no position, so any intersection along the shadow ray at
// all is treated as obstructive.
func (l *DirectionalLight) Sample(_ int, _ lin.Vec3) (lin.Vec3, lin.Vec3, float32) {
	return l.Direction.Neg(), l.Color, float32(math.Inf(1))
}

// AreaLight is a triangular emitter. It stores v1, e1=v2-v1, e2=v3-v1,
// and the precomputed face normal and area.
type AreaLight struct {
	V1         lin.Vec3
	E1, E2     lin.Vec3
	Normal     lin.Vec3
	Area       float32
	Color      lin.Vec3
	C0, C1, C2 float32 // Distance attenuation coefficients.

	rng *rand.Rand
}

// NewAreaLight builds an AreaLight from its three world-space
// vertices, a color, and distance-attenuation coefficients.
func NewAreaLight(v1, v2, v3, color lin.Vec3, c0, c1, c2 float32) *AreaLight {
	e1 := v2.Sub(v1)
	e2 := v3.Sub(v1)
	n := e1.Cross(e2)
	area := n.Len() / 2
	return &AreaLight{
		V1: v1, E1: e1, E2: e2,
		Normal: n.Unit(), Area: area,
		Color: color, C0: c0, C1: c1, C2: c2,
		rng: rand.New(rand.NewSource(1)),
	}
}

func (l *AreaLight) IsArea() bool     { return true }
func (l *AreaLight) SampleCount() int { return areaSampleCount }

// Sample draws a uniform point on the triangle via the
// (1-sqrt(r1), (1-r2)*sqrt(r1)) barycentric map and returns the
// direction to it, its attenuated cos-weighted per-sample radiance
// contribution, and the distance to the sampled point.
func (l *AreaLight) Sample(_ int, hit lin.Vec3) (lin.Vec3, lin.Vec3, float32) {
	r1, r2 := l.rng.Float32(), l.rng.Float32()
	sqrtR1 := float32(math.Sqrt(float64(r1)))
	b1, b2 := 1-sqrtR1, (1-r2)*sqrtR1
	point := l.V1.Add(l.E1.Scale(b1)).Add(l.E2.Scale(b2))

	toLight := point.Sub(hit)
	dist := toLight.Len()
	dir := toLight.Unit()
	if dist == 0 {
		return dir, lin.Vec3{}, 0
	}

	cos := l.Normal.Dot(dir.Neg())
	if cos < 0 {
		cos = 0
	}
	atten := l.C0 + l.C1*dist + l.C2*dist*dist
	if atten == 0 {
		atten = 1
	}
	k := cos * (l.Area / areaSampleCount) / atten
	return dir, l.Color.Scale(k), dist
}
