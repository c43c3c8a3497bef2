// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"math"
	"testing"
)

func TestVec3DotCross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	if x.Dot(y) != 0 {
		t.Error("expected orthogonal axes to have zero dot product")
	}
	if !x.Cross(y).Eq(V3(0, 0, 1)) {
		t.Error("expected x cross y == z")
	}
}

func TestUnit(t *testing.T) {
	v := V3(3, 4, 0).Unit()
	if !Aeq(v.Len(), 1) {
		t.Errorf("expected unit length, got %f", v.Len())
	}
}

func TestReflectIsInvolution(t *testing.T) {
	n := V3(0, 1, 0)
	v := V3(1, -1, 0.5)
	r := Reflect(v, n)
	rr := Reflect(r, n)
	if !Vec3Aeq(v, rr) {
		t.Errorf("reflect(reflect(v,n),n) != v: got %v want %v", rr, v)
	}
}

func TestRefractTotalInternalReflection(t *testing.T) {
	n := V3(0, 1, 0)
	i := V3(1, -0.01, 0).Unit()
	r := Refract(i, n, 1.5)
	if r != (Vec3{}) {
		t.Errorf("expected zero vector signalling TIR, got %v", r)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	if !Mat4Aeq(m.Mul(Identity4), m) {
		t.Error("M*I != M")
	}
	if !Mat4Aeq(Identity4.Mul(m), m) {
		t.Error("I*M != M")
	}
}

func TestMat4MulVPoint(t *testing.T) {
	m := Translate(1, 2, 3)
	p := V3(0, 0, 0).Homogeneous(1)
	got := m.MulV(p)
	want := V4(1, 2, 3, 1)
	if !got.Eq(want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := Translate(2, -3, 5).Mul(Scale(2, 3, 4)).Mul(RotateZ(0.7))
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("expected invertible matrix")
	}
	prod := m.Mul(inv)
	if !Mat4Aeq(prod, Identity4) {
		t.Errorf("M * M^-1 != I, got %v", prod)
	}
}

func TestOrthoMapsCorners(t *testing.T) {
	// Ortho(l,r,b,t,n,f) maps the world-space box corners (l,b,-n) and
	// (r,t,-f) into the NDC cube; with n=-1,f=1 those corners are
	// (-1,-1,1) and (1,1,-1), which land on NDC z=-1 and z=+1
	// respectively (z flips sign, x/y don't).
	m := Ortho(-1, 1, -1, 1, -1, 1)
	lo := m.MulV(V4(-1, -1, 1, 1))
	hi := m.MulV(V4(1, 1, -1, 1))
	if !Vec3Aeq(lo.Vec3(), V3(-1, -1, -1)) {
		t.Errorf("low corner got %v", lo)
	}
	if !Vec3Aeq(hi.Vec3(), V3(1, 1, 1)) {
		t.Errorf("high corner got %v", hi)
	}
}

func TestRotate2DAboutCenterIsStationary(t *testing.T) {
	m := Rotate2D(float32(math.Pi/2), 5, 5)
	got := m.MulV(V4(5, 5, 0, 1))
	if !Vec3Aeq(got.Vec3(), V3(5, 5, 0)) {
		t.Errorf("center point should be fixed, got %v", got)
	}
}

func TestUpperLeft2x2Det(t *testing.T) {
	m := Scale(2, 2, 1)
	d := m.UpperLeft2x2Det()
	if !Aeq(d, 4) {
		t.Errorf("expected det 4, got %f", d)
	}
}
