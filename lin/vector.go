// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin implements the math kernel used by the sgl rendering
// core: vectors, 4x4 matrices, and the transform builders that
// produce them. All arithmetic is single-precision (float32) and
// column-major, matching the convention GPUs and OpenGL-style APIs
// expect.
package lin

import "math"

// Vec2 is a 2-component vector. Swizzle names alias X/Y to R/G via
// the accessor methods below.
type Vec2 struct{ X, Y float32 }

// Vec3 is a 3-component vector used for positions, directions, and
// colors (X/Y/Z alias R/G/B).
type Vec3 struct{ X, Y, Z float32 }

// Vec4 is a 4-component homogeneous vector (X/Y/Z/W alias R/G/B/A).
type Vec4 struct{ X, Y, Z, W float32 }

// V3 is a convenience constructor.
func V3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

// V4 is a convenience constructor.
func V4(x, y, z, w float32) Vec4 { return Vec4{x, y, z, w} }

// R, G, B swizzle accessors for Vec3 used as a color.
func (v Vec3) R() float32 { return v.X }
func (v Vec3) G() float32 { return v.Y }
func (v Vec3) B() float32 { return v.Z }

// R, G swizzle accessors for Vec2.
func (v Vec2) R() float32 { return v.X }
func (v Vec2) G() float32 { return v.Y }

// R, G, B, A swizzle accessors for Vec4.
func (v Vec4) R() float32 { return v.X }
func (v Vec4) G() float32 { return v.Y }
func (v Vec4) B() float32 { return v.Z }
func (v Vec4) A() float32 { return v.W }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns s * v.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Mul returns the componentwise product v * w (used for color modulation).
func (v Vec3) Mul(w Vec3) Vec3 { return Vec3{v.X * w.X, v.Y * w.Y, v.Z * w.Z} }

// Dot returns v . w.
func (v Vec3) Dot(w Vec3) float32 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Len returns the length of v.
func (v Vec3) Len() float32 { return float32(math.Sqrt(float64(v.Dot(v)))) }

// Unit returns v normalized. The zero vector normalizes to itself.
func (v Vec3) Unit() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Eq returns true if v and w are componentwise exactly equal.
func (v Vec3) Eq(w Vec3) bool { return v.X == w.X && v.Y == w.Y && v.Z == w.Z }

// Clamp01 returns v with each component clamped to [0,1].
func (v Vec3) Clamp01() Vec3 {
	return Vec3{clamp01(v.X), clamp01(v.Y), clamp01(v.Z)}
}

func clamp01(f float32) float32 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// Reflect returns the reflection of incident vector i about the unit
// normal n: i - 2(i.n)n.
func Reflect(i, n Vec3) Vec3 {
	return i.Sub(n.Scale(2 * i.Dot(n)))
}

// Refract returns the refraction of incident vector i (unit) through
// the unit normal n with relative index of refraction eta. It returns
// the zero vector when the radicand is negative (total internal
// reflection).
func Refract(i, n Vec3, eta float32) Vec3 {
	cosI := i.Dot(n)
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return Vec3{}
	}
	t := i.Scale(eta).Sub(n.Scale(eta*cosI + float32(math.Sqrt(float64(k)))))
	return t.Unit()
}

// Distance returns the Euclidean distance between v and w.
func Distance(v, w Vec3) float32 { return v.Sub(w).Len() }

// Add returns v + w.
func (v Vec4) Add(w Vec4) Vec4 { return Vec4{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W} }

// Sub returns v - w.
func (v Vec4) Sub(w Vec4) Vec4 { return Vec4{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W} }

// Scale returns s * v.
func (v Vec4) Scale(s float32) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Dot returns v . w (all four lanes).
func (v Vec4) Dot(w Vec4) float32 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W }

// Eq returns true if v and w are componentwise exactly equal.
func (v Vec4) Eq(w Vec4) bool { return v.X == w.X && v.Y == w.Y && v.Z == w.Z && v.W == w.W }

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Homogeneous lifts v into a Vec4 with the given w (1 for a point, 0
// for a direction).
func (v Vec3) Homogeneous(w float32) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }

// PerspectiveDivide returns v with X, Y, Z divided by W.
func (v Vec4) PerspectiveDivide() Vec4 {
	if v.W == 0 {
		return v
	}
	inv := 1 / v.W
	return Vec4{v.X * inv, v.Y * inv, v.Z * inv, 1}
}
