// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	m := Identity4
	m.Col[3] = Vec4{x, y, z, 1}
	return m
}

// Scale returns a scale matrix.
func Scale(sx, sy, sz float32) Mat4 {
	m := Identity4
	m.Col[0].X = sx
	m.Col[1].Y = sy
	m.Col[2].Z = sz
	return m
}

// RotateZ returns a rotation matrix of angle radians about the Z axis.
func RotateZ(angle float32) Mat4 {
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	m := Identity4
	m.Col[0] = Vec4{c, s, 0, 0}
	m.Col[1] = Vec4{-s, c, 0, 0}
	return m
}

// RotateY returns a rotation matrix of angle radians about the Y axis.
func RotateY(angle float32) Mat4 {
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	m := Identity4
	m.Col[0] = Vec4{c, 0, -s, 0}
	m.Col[2] = Vec4{s, 0, c, 0}
	return m
}

// Rotate2D returns translate(cx,cy,0) * rotateZ(angle) * translate(-cx,-cy,0):
// rotate_2d's fixed convention for rotating angle radians about the
// point (cx,cy).
func Rotate2D(angle, cx, cy float32) Mat4 {
	return Translate(cx, cy, 0).Mul(RotateZ(angle)).Mul(Translate(-cx, -cy, 0))
}

// Ortho returns an orthographic projection matrix mapping the box
// [l,r]x[b,t]x[-n,-f] to the [-1,1] NDC cube.
func Ortho(l, r, b, t, n, f float32) Mat4 {
	m := Identity4
	m.Col[0].X = 2 / (r - l)
	m.Col[1].Y = 2 / (t - b)
	m.Col[2].Z = -2 / (f - n)
	m.Col[3] = Vec4{
		-(r + l) / (r - l),
		-(t + b) / (t - b),
		-(f + n) / (f - n),
		1,
	}
	return m
}

// Frustum returns a perspective projection matrix for the view
// frustum defined by the near clip-plane rectangle [l,r]x[b,t] at
// distance n, and far clip-plane distance f.
func Frustum(l, r, b, t, n, f float32) Mat4 {
	var m Mat4
	m.Col[0].X = 2 * n / (r - l)
	m.Col[1].Y = 2 * n / (t - b)
	m.Col[2] = Vec4{
		(r + l) / (r - l),
		(t + b) / (t - b),
		-(f + n) / (f - n),
		-1,
	}
	m.Col[3].Z = -2 * f * n / (f - n)
	return m
}

// Viewport returns the matrix mapping NDC [-1,1]^2 to the pixel
// rectangle [x, x+w) x [y, y+h), with row 0 at the top of the image.
func Viewport(x, y, w, h float32) Mat4 {
	m := Identity4
	halfW, halfH := w/2, h/2
	m.Col[0].X = halfW
	m.Col[1].Y = -halfH
	m.Col[2].Z = 0.5
	m.Col[3] = Vec4{x + halfW, y + halfH, 0.5, 1}
	return m
}
