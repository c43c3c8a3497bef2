// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scene implements the ray-traced scene model: primitives
// (sphere, triangle), materials, lights, and the optional
// environment map. None of it is touched by the rasterizer's
// transform pipeline — scene primitives are stored and intersected in
// world space.
package scene

import "github.com/galvanized-logic/sgl/lin"

// Material colors a primitive's surface in one of three variants:
// plain constant color, textured, and emissive.
type Material struct {
	Color lin.Vec3 // Constant diffuse color for the plain variant.
	Kd    float32  // Diffuse coefficient.
	Ks    float32  // Specular coefficient.
	Shine float32  // Phong shininess exponent.
	T     float32  // Transmittance (refraction strength).
	IOR   float32  // Index of refraction.

	texture *Texture // Non-nil selects the textured variant.

	IsEmissive bool
	C0, C1, C2 float32 // Emissive attenuation coefficients.
}

// NewMaterial returns a plain material with a constant color.
func NewMaterial(color lin.Vec3, kd, ks, shine, t, ior float32) *Material {
	return &Material{Color: color, Kd: kd, Ks: ks, Shine: shine, T: t, IOR: ior}
}

// NewEmissiveMaterial returns a material flagged as a light source;
// its color contributes directly to a hit without a shadow test.
func NewEmissiveMaterial(color lin.Vec3, c0, c1, c2 float32) *Material {
	return &Material{Color: color, IsEmissive: true, C0: c0, C1: c1, C2: c2}
}

// SetTexture selects the textured variant: ColorAt will sample tex
// instead of returning the constant Color.
func (m *Material) SetTexture(tex *Texture) { m.texture = tex }

// ColorAt returns the material's color at the given surface uv. The
// textured variant samples the backing image; out-of-[0,1] uv returns
// black. The plain and emissive variants ignore uv and return the
// constant Color.
func (m *Material) ColorAt(uv lin.Vec2) lin.Vec3 {
	if m.texture == nil {
		return m.Color
	}
	return m.texture.Sample(uv)
}

// Texture is a decoded RGB8-equivalent image sampled with nearest
// neighbor (no bilinear or mipmap filtering). Data is row-major
// W*H*3 float32 in [0,1], produced by any decoder — see sgl/texfile
// for the convenience path-based loader.
type Texture struct {
	W, H int
	Data []float32
}

// NewTexture wraps a decoded RGB buffer. Data must have length W*H*3.
func NewTexture(w, h int, data []float32) *Texture {
	return &Texture{W: w, H: h, Data: data}
}

// Sample returns the nearest texel to uv, or black when uv falls
// outside [0,1]x[0,1].
func (tex *Texture) Sample(uv lin.Vec2) lin.Vec3 {
	if uv.X < 0 || uv.X > 1 || uv.Y < 0 || uv.Y > 1 {
		return lin.Vec3{}
	}
	x := int(uv.X * float32(tex.W-1))
	y := int(uv.Y * float32(tex.H-1))
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= tex.W {
		x = tex.W - 1
	}
	if y >= tex.H {
		y = tex.H - 1
	}
	i := (y*tex.W + x) * 3
	return lin.Vec3{X: tex.Data[i], Y: tex.Data[i+1], Z: tex.Data[i+2]}
}
